package greet

import (
	"fmt"
	"strings"

	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

// Language keys used by the template pools.
const (
	LangHindi    = "hindi"
	LangHinglish = "hinglish"
	LangEnglish  = "english"
)

// languageKey normalizes a free-form language argument onto a pool key.
func languageKey(language, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "hindi", "hi":
		return LangHindi
	case "hinglish", "hi-en", "hindlish":
		return LangHinglish
	case "english", "en":
		return LangEnglish
	case "":
		return fallback
	default:
		return fallback
	}
}

// joinFragments joins non-empty fragments with single spaces.
func joinFragments(fragments ...string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f) == "" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// numberedList renders 1-based "1. line" rows joined by newlines.
func numberedList(lines []string) string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, fmt.Sprintf("%d. %s", i+1, line))
	}
	return strings.Join(out, "\n")
}

// numberedBlocks renders 1-based numbered multi-line blocks separated by a
// blank line; the number prefixes the first line of each block.
func numberedBlocks(blocks [][]string) string {
	out := make([]string, 0, len(blocks))
	for i, block := range blocks {
		if len(block) == 0 {
			continue
		}
		rest := block[1:]
		body := fmt.Sprintf("%d. %s", i+1, block[0])
		if len(rest) > 0 {
			body += "\n" + strings.Join(rest, "\n")
		}
		out = append(out, body)
	}
	return strings.Join(out, "\n\n")
}

// ---- wishify ----

// Every opener contains the occasion plus a mubarak/shubhkamnayein phrase so
// each rendered line carries both.
var wishOpeners = map[string][]string{
	LangHinglish: {
		"%s Mubarak ho!",
		"Aapko aur aapke parivaar ko %s ki dher saari shubhkamnayein!",
		"%s Mubarak, dil se!",
		"Happy %s aur dher saari shubhkamnayein!",
	},
	LangHindi: {
		"%s की हार्दिक शुभकामनाएँ!",
		"आपको और आपके परिवार को %s मुबारक!",
		"%s के पावन अवसर पर ढेरों शुभकामनाएँ!",
	},
	LangEnglish: {
		"Happy %s, mubarak ho!",
		"Warm wishes and shubhkamnayein on %s!",
		"Wishing you a wonderful %s, dher saari shubhkamnayein!",
	},
}

var wishBlessings = map[string][]string{
	LangHinglish: {
		"Khushiyan hamesha aapke saath rahein.",
		"Yeh din meethi yaadon se bhara ho.",
		"Nayi umangein, nayi roshni, naya josh.",
		"Rab se dua, aapke sab sapne poore hon.",
	},
	LangHindi: {
		"खुशियाँ सदा आपके साथ रहें।",
		"यह दिन मीठी यादों से भरा हो।",
		"नई उमंगें और नई रोशनी आपके जीवन में आएँ।",
	},
	LangEnglish: {
		"May joy and laughter fill your home.",
		"Here's to sweet memories and new beginnings.",
		"May this day bring light to everything you do.",
	},
}

var wishClosers = map[string][]string{
	"warm": {
		"Dil se dher saara pyaar.",
		"Apnon ke saath khushiyan baantiye.",
	},
	"funny": {
		"Mithai zyada, diet kal se.",
		"Selfie lena mat bhoolna!",
	},
	"formal": {
		"Aapke sukh evam samriddhi ki kaamna.",
		"Is shubh din ki hardik badhai.",
	},
}

var emojiSingles = []string{"✨", "🎉", "🪔", "🌸", "🎊"}
var emojiClusters = []string{"✨🎉🪔", "🌸🎊💫", "🥳🎆✨", "🪔💛🎉"}

func wishEmoji(level, i int) string {
	switch level {
	case 1:
		return emojiSingles[i%len(emojiSingles)]
	case 2:
		return emojiClusters[i%len(emojiClusters)]
	default:
		return ""
	}
}

func renderWish(in types.WishInput) string {
	lang := languageKey(in.Language, LangHinglish)
	openers := wishOpeners[lang]
	blessings := wishBlessings[lang]
	closers, ok := wishClosers[strings.ToLower(strings.TrimSpace(in.Tone))]
	if !ok {
		closers = wishClosers["warm"]
	}

	lines := make([]string, 0, in.VariantCount)
	for i := 0; i < in.VariantCount; i++ {
		lines = append(lines, joinFragments(
			fmt.Sprintf(openers[i%len(openers)], in.Occasion),
			blessings[i%len(blessings)],
			closers[i%len(closers)],
			wishEmoji(in.EmojiLevel, i),
		))
	}
	return numberedList(lines)
}

// ---- shayari ----

// Each verse template is a multi-line block; %s carries the theme. The Hindi
// vocabulary stays inside the transliteration table so Hinglish output reads
// cleanly.
var shayariVerses = [][]string{
	{
		"%s की राहों में चाँद भी रुक जाता है,",
		"दिल से जो निकले वही लफ़्ज़ बन जाता है,",
		"ये %s का रिश्ता यूँ ही निभाते रहना,",
		"हर दर्द इसी से मिट जाता है।",
	},
	{
		"रात के सितारे भी %s की बात करते हैं,",
		"ख्वाब भी %s से मुलाकात करते हैं,",
		"दुनिया चाहे कुछ भी कहे,",
		"हम तो बस %s से शुरुआत करते हैं।",
	},
	{
		"%s है तो हर रात रोशन है,",
		"हर याद में एक कहानी है,",
		"दिल की धड़कन से पूछो,",
		"%s ही असली ज़िंदगी है।",
	},
}

func renderShayari(in types.ShayariInput) string {
	lang := languageKey(in.Language, LangHindi)
	latinize := lang == LangHinglish || strings.EqualFold(strings.TrimSpace(in.Script), "latin")

	blocks := make([][]string, 0, in.VariantCount)
	for i := 0; i < in.VariantCount; i++ {
		template := shayariVerses[i%len(shayariVerses)]
		verse := make([]string, 0, len(template))
		for _, line := range template {
			if strings.Contains(line, "%s") {
				line = strings.ReplaceAll(line, "%s", in.Theme)
			}
			if latinize {
				line = Latinize(line)
			}
			verse = append(verse, line)
		}
		blocks = append(blocks, verse)
	}
	return numberedBlocks(blocks)
}

// ---- status_pack ----

var statusTemplates = map[string][]string{
	LangHinglish: {
		"%s vibes only. ✨",
		"Focus on %s, baaki sab baad mein.",
		"%s ka season hai, dua mein yaad rakhna. 🙏",
		"Har %s ek nayi kahani likhta hai.",
		"%s se pehle ek cutting chai toh banti hai. ☕",
		"Mehnat aaj, %s ki jeet kal. 💪",
		"%s: thoda stress, zyada success.",
	},
	LangHindi: {
		"%s ही इस वक़्त की कहानी है।",
		"मेहनत का दूसरा नाम %s है।",
		"%s से पहले हौसला, बाद में जश्न।",
		"हर %s एक नई शुरुआत है।",
		"%s का जवाब सिर्फ़ मेहनत है।",
		"दिल लगाकर %s, बाकी ऊपरवाले पर।",
		"%s खत्म, पार्टी शुरू।",
	},
	LangEnglish: {
		"%s mode: on. 🔛",
		"Eyes on %s, everything else can wait.",
		"Hustle now, celebrate %s later.",
		"Every %s writes its own story.",
		"Chai first, %s second. ☕",
		"Less talk, more %s.",
		"%s season — wish me luck!",
	},
}

func renderStatus(in types.StatusInput) string {
	lang := languageKey(in.Language, LangHinglish)
	pool := statusTemplates[lang]

	lines := make([]string, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		lines = append(lines, fmt.Sprintf(pool[i%len(pool)], in.Theme))
	}
	return numberedList(lines)
}

// ---- roast_generator ----

// Light-hearted by construction: the pool jokes about habits, never about
// appearance, family, or identity.
var roastTemplates = map[string][]string{
	LangHinglish: {
		"%s, tumhara swag dekh kar WiFi bhi slow ho jata hai.",
		"%s ka 'bas 5 minute' duniya ka sabse lamba time zone hai.",
		"%s, tum gym jaate ho ya sirf membership ko motivate karte ho?",
		"%s ki playlist sun kar Spotify ne therapy join kar li.",
		"%s, tumhare excuses pe ek web series ban sakti hai.",
	},
	LangHindi: {
		"%s, तुम्हारा 'बस पाँच मिनट' कभी खत्म ही नहीं होता।",
		"%s की प्लानिंग सिर्फ़ प्लानिंग तक ही रहती है।",
		"%s, तुम्हारे बहाने सुनकर कैलेंडर भी थक गया।",
		"%s का अलार्म भी अब उम्मीद छोड़ चुका है।",
	},
	LangEnglish: {
		"%s, your 'five more minutes' has its own time zone.",
		"%s, your gym membership files a missing person report weekly.",
		"%s, your excuses deserve their own streaming series.",
		"%s, even your alarm clock gave up on you.",
	},
}

func renderRoast(in types.RoastInput) string {
	lang := languageKey(in.Language, LangHinglish)
	pool := roastTemplates[lang]

	lines := make([]string, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		lines = append(lines, fmt.Sprintf(pool[i%len(pool)], in.Target))
	}
	return numberedList(lines)
}

// ---- pickup_lines ----

var pickupTemplates = map[string][]string{
	"filmy": {
		"Kehte hain hero entry late karta hai... isliye main ab aaya hoon.",
		"Tumhe dekh kar lagta hai, interval ke baad picture hit hai.",
		"DDLJ ka Raj bhi tumse signal ka wait seekh leta.",
		"Tum haso toh background mein violin bajta hai, sach mein.",
		"Scene yeh hai: tum, main, aur ek kahani blockbuster.",
	},
	"shayar": {
		"Chaand ko bhi tumse roshni udhaar leni chahiye.",
		"Lafz kam pad jaate hain jab baat tumhari hoti hai.",
		"Dil ki diary mein sab panne tumhare naam ke hain.",
		"Shayari likhne baitha tha, tumhara khayal aa gaya.",
		"Ghazal adhoori thi, tumne mukammal kar di.",
	},
	"techie": {
		"Tum meri zindagi ka missing semicolon ho.",
		"Mere dil ka server sirf tumhare liye 200 OK deta hai.",
		"Tumse milke lagta hai, merge conflict resolve ho gaya.",
		"Tum ho toh battery 1% pe bhi dil full charge rehta hai.",
		"Dil ne tumhe bookmark kar liya hai, refresh ki zaroorat nahi.",
	},
}

func renderPickup(in types.PickupInput) string {
	pool, ok := pickupTemplates[strings.ToLower(strings.TrimSpace(in.Vibe))]
	if !ok {
		pool = pickupTemplates["filmy"]
	}

	lines := make([]string, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		lines = append(lines, pool[i%len(pool)])
	}
	return numberedList(lines)
}
