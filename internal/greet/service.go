// Package greet generates templated, culturally-localized short text in
// Hindi/Hinglish, with an optional remote-LLM enhancement path. The template
// path is deterministic and authoritative; remote output is used only when a
// backend produces something usable.
package greet

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/shubhlabs/shubh-mcp/internal/remote"
	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

// Count bounds per tool, inclusive.
const (
	WishVariantMin, WishVariantMax, WishVariantDefault = 1, 5, 3
	EmojiLevelMin, EmojiLevelMax, EmojiLevelDefault    = 0, 2, 1

	ShayariVariantMin, ShayariVariantMax, ShayariVariantDefault = 1, 3, 2

	StatusCountMin, StatusCountMax, StatusCountDefault = 3, 7, 5
	PickupCountMin, PickupCountMax, PickupCountDefault = 3, 7, 5
	RoastCountMin, RoastCountMax, RoastCountDefault    = 2, 5, 3
)

// Required-field errors surfaced as failed tool invocations.
var (
	ErrOccasionRequired = errors.New("occasion is required")
	ErrThemeRequired    = errors.New("theme is required")
	ErrTargetRequired   = errors.New("target is required")
)

// Service applies the remote-first policy over the deterministic templates.
type Service struct {
	chain  *remote.Chain
	logger *log.Logger
}

// NewService constructs a generation service. chain may be nil when no remote
// backend is configured; the templates then serve every request.
func NewService(chain *remote.Chain, logger *log.Logger) *Service {
	return &Service{chain: chain, logger: logger}
}

func (s *Service) enhance(ctx context.Context, tool, prompt string) string {
	if s.chain == nil {
		return ""
	}
	out := s.chain.Generate(ctx, prompt)
	if out != "" && s.logger != nil {
		s.logger.Debug("remote generation used", "tool", tool)
	}
	return out
}

// clamp resolves v onto [min, max]; zero means unset and takes the default.
func clamp(v, def, min, max int) int {
	if v == 0 {
		v = def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampSet resolves v onto [min, max] treating every value, including zero,
// as set. Used for fields where zero is meaningful (emoji level).
func clampSet(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// NormalizeWish trims, defaults and clamps a wish input.
func NormalizeWish(in types.WishInput) types.WishInput {
	in.Occasion = strings.TrimSpace(in.Occasion)
	in.Language = languageKey(in.Language, LangHinglish)
	in.Tone = strings.ToLower(strings.TrimSpace(in.Tone))
	if in.Tone == "" {
		in.Tone = "warm"
	}
	in.VariantCount = clamp(in.VariantCount, WishVariantDefault, WishVariantMin, WishVariantMax)
	in.EmojiLevel = clampSet(in.EmojiLevel, EmojiLevelMin, EmojiLevelMax)
	return in
}

// Wishify produces occasion wishes.
func (s *Service) Wishify(ctx context.Context, in types.WishInput) (string, error) {
	in = NormalizeWish(in)
	if in.Occasion == "" {
		return "", ErrOccasionRequired
	}
	if out := s.enhance(ctx, "wishify", wishPrompt(in)); out != "" {
		return out, nil
	}
	return renderWish(in), nil
}

// NormalizeShayari trims, defaults and clamps a shayari input.
func NormalizeShayari(in types.ShayariInput) types.ShayariInput {
	in.Theme = strings.TrimSpace(in.Theme)
	in.Language = languageKey(in.Language, LangHindi)
	in.Script = strings.ToLower(strings.TrimSpace(in.Script))
	in.VariantCount = clamp(in.VariantCount, ShayariVariantDefault, ShayariVariantMin, ShayariVariantMax)
	return in
}

// Shayari produces numbered multi-line verse blocks.
func (s *Service) Shayari(ctx context.Context, in types.ShayariInput) (string, error) {
	in = NormalizeShayari(in)
	if in.Theme == "" {
		return "", ErrThemeRequired
	}
	if out := s.enhance(ctx, "shayari", shayariPrompt(in)); out != "" {
		return out, nil
	}
	return renderShayari(in), nil
}

// NormalizeStatus trims, defaults and clamps a status input.
func NormalizeStatus(in types.StatusInput) types.StatusInput {
	in.Theme = strings.TrimSpace(in.Theme)
	in.Language = languageKey(in.Language, LangHinglish)
	in.Count = clamp(in.Count, StatusCountDefault, StatusCountMin, StatusCountMax)
	return in
}

// StatusPack produces one-line social statuses.
func (s *Service) StatusPack(ctx context.Context, in types.StatusInput) (string, error) {
	in = NormalizeStatus(in)
	if in.Theme == "" {
		return "", ErrThemeRequired
	}
	if out := s.enhance(ctx, "status_pack", statusPrompt(in)); out != "" {
		return out, nil
	}
	return renderStatus(in), nil
}

// NormalizeRoast trims, defaults and clamps a roast input.
func NormalizeRoast(in types.RoastInput) types.RoastInput {
	in.Target = strings.TrimSpace(in.Target)
	in.Language = languageKey(in.Language, LangHinglish)
	in.Count = clamp(in.Count, RoastCountDefault, RoastCountMin, RoastCountMax)
	return in
}

// Roast produces light-hearted roast lines.
func (s *Service) Roast(ctx context.Context, in types.RoastInput) (string, error) {
	in = NormalizeRoast(in)
	if in.Target == "" {
		return "", ErrTargetRequired
	}
	if out := s.enhance(ctx, "roast_generator", roastPrompt(in)); out != "" {
		return out, nil
	}
	return renderRoast(in), nil
}

// NormalizePickup trims, defaults and clamps a pickup input.
func NormalizePickup(in types.PickupInput) types.PickupInput {
	in.Vibe = strings.ToLower(strings.TrimSpace(in.Vibe))
	if in.Vibe == "" {
		in.Vibe = "filmy"
	}
	in.Language = languageKey(in.Language, LangHinglish)
	in.Count = clamp(in.Count, PickupCountDefault, PickupCountMin, PickupCountMax)
	return in
}

// PickupLines produces playful pickup lines. No required fields.
func (s *Service) PickupLines(ctx context.Context, in types.PickupInput) (string, error) {
	in = NormalizePickup(in)
	if out := s.enhance(ctx, "pickup_lines", pickupPrompt(in)); out != "" {
		return out, nil
	}
	return renderPickup(in), nil
}
