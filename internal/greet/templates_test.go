package greet

import (
	"strings"
	"testing"

	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

func TestRenderWish_DefaultDiwali(t *testing.T) {
	t.Parallel()
	in := NormalizeWish(types.WishInput{Occasion: "Diwali"})
	out := renderWish(in)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 numbered lines, got %d:\n%s", len(lines), out)
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, []string{"1. ", "2. ", "3. "}[i]) {
			t.Fatalf("line %d not numbered: %q", i+1, line)
		}
		if !strings.Contains(line, "Diwali") {
			t.Fatalf("line %d missing occasion: %q", i+1, line)
		}
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "mubarak") && !strings.Contains(lower, "shubhkamnayein") &&
			!strings.Contains(line, "शुभकामनाएँ") && !strings.Contains(line, "मुबारक") {
			t.Fatalf("line %d missing greeting phrase: %q", i+1, line)
		}
	}
}

func TestRenderWish_EmojiLevels(t *testing.T) {
	t.Parallel()
	base := types.WishInput{Occasion: "Holi", VariantCount: 2}

	none := base
	none.EmojiLevel = 0
	out := renderWish(NormalizeWish(none))
	for _, e := range emojiSingles {
		if strings.Contains(out, e) {
			t.Fatalf("emoji level 0 output contains emoji %q:\n%s", e, out)
		}
	}

	cluster := base
	cluster.EmojiLevel = 2
	out = renderWish(NormalizeWish(cluster))
	if !strings.Contains(out, emojiClusters[0]) {
		t.Fatalf("emoji level 2 output missing cluster:\n%s", out)
	}
}

func TestRenderShayari_HinglishLatinized(t *testing.T) {
	t.Parallel()
	in := NormalizeShayari(types.ShayariInput{Theme: "dosti", Language: "Hinglish"})
	out := renderShayari(in)

	blocks := strings.Split(out, "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 verse blocks, got %d:\n%s", len(blocks), out)
	}
	for i, block := range blocks {
		if lines := strings.Split(block, "\n"); len(lines) < 3 {
			t.Fatalf("verse %d has %d lines, expected multi-line block:\n%s", i+1, len(lines), block)
		}
	}
	if !strings.HasPrefix(blocks[0], "1. ") || !strings.HasPrefix(blocks[1], "2. ") {
		t.Fatalf("verses not numbered:\n%s", out)
	}
	if !strings.Contains(out, "dosti") {
		t.Fatalf("theme missing from output:\n%s", out)
	}
	for _, dev := range []string{"दिल", "चाँद", "रात", "है"} {
		if strings.Contains(out, dev) {
			t.Fatalf("expected %q to be latinized:\n%s", dev, out)
		}
	}
	if !strings.Contains(out, "dil") || !strings.Contains(out, "chaand") {
		t.Fatalf("expected roman replacements in output:\n%s", out)
	}
}

func TestRenderShayari_HindiKeepsDevanagari(t *testing.T) {
	t.Parallel()
	in := NormalizeShayari(types.ShayariInput{Theme: "मोहब्बत"})
	out := renderShayari(in)
	if !strings.Contains(out, "दिल") {
		t.Fatalf("hindi output should keep Devanagari:\n%s", out)
	}
}

func TestRenderStatus_CountClampedToSeven(t *testing.T) {
	t.Parallel()
	in := NormalizeStatus(types.StatusInput{Theme: "exam", Count: 10})
	out := renderStatus(in)

	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines after clamping, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[6], "7. ") {
		t.Fatalf("expected 1-based numbering through 7, got %q", lines[6])
	}
	for _, line := range lines {
		if !strings.Contains(line, "exam") {
			t.Fatalf("line missing theme: %q", line)
		}
	}
}

func TestRenderRoast_StaysOnTarget(t *testing.T) {
	t.Parallel()
	in := NormalizeRoast(types.RoastInput{Target: "Rohan", Count: 5})
	out := renderRoast(in)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "Rohan") {
			t.Fatalf("line missing target: %q", line)
		}
	}
}

func TestRenderPickup_UnknownVibeFallsBackToFilmy(t *testing.T) {
	t.Parallel()
	known := renderPickup(NormalizePickup(types.PickupInput{Vibe: "filmy"}))
	unknown := renderPickup(NormalizePickup(types.PickupInput{Vibe: "interpretive-dance"}))
	if known != unknown {
		t.Fatalf("unknown vibe should use filmy pool:\n%s\nvs\n%s", known, unknown)
	}
}

func TestTemplates_Deterministic(t *testing.T) {
	t.Parallel()
	wish := NormalizeWish(types.WishInput{Occasion: "Eid", Language: "hindi", VariantCount: 5, EmojiLevel: 2})
	if renderWish(wish) != renderWish(wish) {
		t.Fatal("wishify output not deterministic")
	}
	sh := NormalizeShayari(types.ShayariInput{Theme: "yaari", Language: "hinglish", VariantCount: 3})
	if renderShayari(sh) != renderShayari(sh) {
		t.Fatal("shayari output not deterministic")
	}
}

func TestClamp_Totality(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 3},
		{1, 1},
		{4, 4},
		{100, 5},
	}
	for _, tc := range cases {
		if got := clamp(tc.in, WishVariantDefault, WishVariantMin, WishVariantMax); got != tc.want {
			t.Fatalf("clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if got := clampSet(-1, EmojiLevelMin, EmojiLevelMax); got != 0 {
		t.Fatalf("clampSet(-1) = %d, want 0", got)
	}
	if got := clampSet(9, EmojiLevelMin, EmojiLevelMax); got != 2 {
		t.Fatalf("clampSet(9) = %d, want 2", got)
	}
}

func TestJoinFragments_SkipsEmpty(t *testing.T) {
	t.Parallel()
	if got := joinFragments("a", "", "  ", "b"); got != "a b" {
		t.Fatalf("joinFragments = %q, want %q", got, "a b")
	}
}

func TestLatinize_UnmappedWordsUnchanged(t *testing.T) {
	t.Parallel()
	got := Latinize("दिल और तबीयत")
	if got != "dil aur तबीयत" {
		t.Fatalf("Latinize = %q", got)
	}
}
