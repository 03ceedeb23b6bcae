package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shubhlabs/shubh-mcp/internal/config"
	"github.com/shubhlabs/shubh-mcp/internal/greet"
	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

func (s *Server) handleToolCall(ctx context.Context, params json.RawMessage) (map[string]any, error) {
	var p struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid tools/call params: %w", err)
	}
	args := p.Arguments
	if args == nil {
		args = map[string]any{}
	}

	if s.cfg.Toolset == config.ToolsetLite && !liteTools[p.Name] {
		return nil, fmt.Errorf("unknown tool %q", p.Name)
	}

	switch p.Name {
	case "wishify":
		in := types.WishInput{
			Occasion:     stringArg(args, "occasion"),
			Language:     stringArg(args, "language"),
			Tone:         stringArg(args, "tone"),
			VariantCount: intArgOr(args, "variant_count", greet.WishVariantDefault),
			EmojiLevel:   intArgOr(args, "emoji_level", greet.EmojiLevelDefault),
		}
		text, err := s.svc.Wishify(ctx, in)
		if err != nil {
			return nil, err
		}
		return textResult(text), nil
	case "shayari":
		in := types.ShayariInput{
			Theme:        stringArg(args, "theme"),
			Language:     stringArg(args, "language"),
			Script:       stringArg(args, "script"),
			VariantCount: intArgOr(args, "variant_count", greet.ShayariVariantDefault),
		}
		text, err := s.svc.Shayari(ctx, in)
		if err != nil {
			return nil, err
		}
		return textResult(text), nil
	case "status_pack":
		in := types.StatusInput{
			Theme:    stringArg(args, "theme"),
			Language: stringArg(args, "language"),
			Count:    intArgOr(args, "count", greet.StatusCountDefault),
		}
		text, err := s.svc.StatusPack(ctx, in)
		if err != nil {
			return nil, err
		}
		return textResult(text), nil
	case "roast_generator":
		in := types.RoastInput{
			Target:   stringArg(args, "target"),
			Language: stringArg(args, "language"),
			Count:    intArgOr(args, "count", greet.RoastCountDefault),
		}
		text, err := s.svc.Roast(ctx, in)
		if err != nil {
			return nil, err
		}
		return textResult(text), nil
	case "pickup_lines":
		in := types.PickupInput{
			Vibe:     stringArg(args, "vibe"),
			Language: stringArg(args, "language"),
			Count:    intArgOr(args, "count", greet.PickupCountDefault),
		}
		text, err := s.svc.PickupLines(ctx, in)
		if err != nil {
			return nil, err
		}
		return textResult(text), nil
	case "validate":
		// Token extraction is deliberately permissive and the result is
		// not verified. The tool's contract is to answer with the
		// configured owner identity, not to gate access.
		_ = extractToken(args)
		return textResult(s.cfg.OwnerPhone), nil
	case "create_note":
		note, err := s.notes.Create(stringArg(args, "title"), stringArg(args, "content"))
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Created note %s: %s", note.ID, note.Title)), nil
	case "about":
		return textResult(fmt.Sprintf("%s v%s: desi greetings, shayari, statuses and one-liners over MCP. Remote generation is optional and falls back to built-in templates.", s.cfg.ServerName, ServerVersion)), nil
	default:
		return nil, fmt.Errorf("unknown tool %q", p.Name)
	}
}

// intArgOr returns the coerced integer argument, or def when the
// argument is absent or not coercible. Range clamping happens in the
// service layer.
func intArgOr(args map[string]any, key string, def int) int {
	if v, ok := intArg(args, key); ok {
		return v
	}
	return def
}
