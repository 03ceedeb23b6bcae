package greet

import (
	"fmt"

	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

// Prompt builders for the remote enhancement path. Each prompt restates the
// numbered-list contract so remote output drops in where template output would.

func wishPrompt(in types.WishInput) string {
	return fmt.Sprintf(
		"Write %d short %s wishes for the occasion %q in a %s tone. Emoji level %d out of 2. Number each wish on its own line.",
		in.VariantCount, languageKey(in.Language, LangHinglish), in.Occasion, in.Tone, in.EmojiLevel,
	)
}

func shayariPrompt(in types.ShayariInput) string {
	script := "Devanagari"
	if languageKey(in.Language, LangHindi) == LangHinglish || in.Script == "latin" {
		script = "Roman (Hinglish)"
	}
	return fmt.Sprintf(
		"Write %d short shayari verses about %q in %s script. Each verse is 3-4 lines. Number each verse and separate verses with a blank line.",
		in.VariantCount, in.Theme, script,
	)
}

func statusPrompt(in types.StatusInput) string {
	return fmt.Sprintf(
		"Write %d short %s one-line social statuses about %q. Number each line.",
		in.Count, languageKey(in.Language, LangHinglish), in.Theme,
	)
}

func roastPrompt(in types.RoastInput) string {
	return fmt.Sprintf(
		"Write %d light-hearted, friendly %s roast lines for %q. Joke only about habits, never about appearance, family, or identity. Number each line.",
		in.Count, languageKey(in.Language, LangHinglish), in.Target,
	)
}

func pickupPrompt(in types.PickupInput) string {
	return fmt.Sprintf(
		"Write %d playful %s pickup lines with a %s vibe. Keep them respectful. Number each line.",
		in.Count, languageKey(in.Language, LangHinglish), in.Vibe,
	)
}
