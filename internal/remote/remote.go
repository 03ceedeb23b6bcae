// Package remote implements the best-effort remote text-generation backends.
// Remote generation is an optimization, never a dependency: every failure is
// absorbed here and the caller falls back to deterministic templates.
package remote

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// SystemInstruction establishes the persona and output-format constraints sent
// to every backend. Numbered-list-only output keeps remote and template paths
// interchangeable.
const SystemInstruction = "You are a witty Desi writer who crafts short, warm Hindi and Hinglish lines. " +
	"Reply with a numbered list only. No commentary, no preamble, no explanations."

// Generator is a single remote text-generation backend.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderError describes a remote backend failure.
type ProviderError struct {
	Code       string
	Message    string
	Retryable  bool
	StatusCode int
	Cause      error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func mapStatusError(prefix string, statusCode int, message string) *ProviderError {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &ProviderError{Code: prefix + "_AUTH", Message: message, Retryable: false, StatusCode: statusCode}
	case statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError:
		return &ProviderError{Code: prefix + "_FAILED", Message: message, Retryable: true, StatusCode: statusCode}
	default:
		return &ProviderError{Code: prefix + "_FAILED", Message: message, Retryable: false, StatusCode: statusCode}
	}
}

// Chain tries backends in order and returns the first non-empty result.
// Backend errors and empty outputs are swallowed; an empty string tells the
// caller to use its deterministic fallback.
type Chain struct {
	backends []Generator
	logger   *log.Logger
}

// NewChain builds a chain over the given backends. Nil backends are skipped so
// callers can pass optional, unconfigured entries directly.
func NewChain(logger *log.Logger, backends ...Generator) *Chain {
	kept := make([]Generator, 0, len(backends))
	for _, b := range backends {
		if b != nil {
			kept = append(kept, b)
		}
	}
	return &Chain{backends: kept, logger: logger}
}

// Backends reports the configured backend names, in try order.
func (c *Chain) Backends() []string {
	names := make([]string, 0, len(c.backends))
	for _, b := range c.backends {
		names = append(names, b.Name())
	}
	return names
}

// Generate returns the first usable backend output, or "" when every backend
// is unavailable or fails. A single attempt per backend, no retries.
func (c *Chain) Generate(ctx context.Context, prompt string) string {
	for _, b := range c.backends {
		out, err := b.Generate(ctx, prompt)
		if err != nil {
			if c.logger != nil {
				c.logger.Debug("remote backend failed", "backend", b.Name(), "error", err)
			}
			continue
		}
		out = strings.TrimSpace(out)
		if out == "" {
			if c.logger != nil {
				c.logger.Debug("remote backend returned empty output", "backend", b.Name())
			}
			continue
		}
		return out
	}
	return ""
}
