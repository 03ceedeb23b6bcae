package mcp

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Tool arguments arrive as an untrusted map. Every extraction below is
// total: a missing, mistyped, or malformed value yields the zero value
// plus ok=false, never an error. Handlers decide whether that means
// "use the default" or "required field missing".

func stringArg(args map[string]any, key string) string {
	raw, ok := args[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func intArg(args map[string]any, key string) (int, bool) {
	raw, ok := args[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// tokenAliases are the argument keys a client might use to pass a
// bearer-token-like value to the validate tool, checked in order.
var tokenAliases = []string{"bearerToken", "token", "bearer_token", "accessToken", "access_token"}

// extractToken locates a token-like value in the argument bag using an
// ordered list of total strategies: the alias set first, then a nested
// headers/Authorization object, then any non-empty string argument.
// It always returns a value, possibly empty.
func extractToken(args map[string]any) string {
	for _, key := range tokenAliases {
		if v := stringArg(args, key); v != "" {
			return stripBearerPrefix(v)
		}
	}

	for _, key := range []string{"headers", "Headers"} {
		headers, ok := args[key].(map[string]any)
		if !ok {
			continue
		}
		for _, hk := range []string{"Authorization", "authorization"} {
			if v := stringArg(headers, hk); v != "" {
				return stripBearerPrefix(v)
			}
		}
	}

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := args[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return stripBearerPrefix(s)
			}
		}
	}
	return ""
}

func stripBearerPrefix(s string) string {
	if len(s) >= 7 && strings.EqualFold(s[:7], "Bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
