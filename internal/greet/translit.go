package greet

import "strings"

// translitPairs maps known Devanagari words to their Roman-script spelling.
// This is a fixed substitution table, not a general transliterator; words
// outside the table pass through unchanged. Longer entries come first so a
// short particle never clips a longer word ("हैं" before "है").
var translitPairs = []struct {
	dev   string
	latin string
}{
	{"मुलाकात", "mulaqat"},
	{"शुरुआत", "shuruaat"},
	{"मोहब्बत", "mohabbat"},
	{"ज़िंदगी", "zindagi"},
	{"निभाते", "nibhaate"},
	{"कहानी", "kahaani"},
	{"धड़कन", "dhadkan"},
	{"सितारे", "sitaare"},
	{"आँखें", "aankhein"},
	{"दोस्ती", "dosti"},
	{"ख्वाब", "khwaab"},
	{"दुनिया", "duniya"},
	{"रिश्ता", "rishta"},
	{"लफ़्ज़", "lafz"},
	{"राहों", "raahon"},
	{"निकले", "nikle"},
	{"करते", "karte"},
	{"चाहे", "chaahe"},
	{"रोशन", "roshan"},
	{"पूछो", "poochho"},
	{"असली", "asli"},
	{"यादें", "yaadein"},
	{"रहना", "rehna"},
	{"जाता", "jaata"},
	{"चाँद", "chaand"},
	{"प्यार", "pyaar"},
	{"वही", "wahi"},
	{"यही", "yahi"},
	{"इसी", "isi"},
	{"कुछ", "kuch"},
	{"कहे", "kahe"},
	{"रुक", "ruk"},
	{"यूँ", "yun"},
	{"दिल", "dil"},
	{"दर्द", "dard"},
	{"रात", "raat"},
	{"याद", "yaad"},
	{"साथ", "saath"},
	{"बात", "baat"},
	{"मिट", "mit"},
	{"हैं", "hain"},
	{"है", "hai"},
	{"हर", "har"},
	{"हम", "hum"},
	{"में", "mein"},
	{"की", "ki"},
	{"का", "ka"},
	{"के", "ke"},
	{"से", "se"},
	{"भी", "bhi"},
	{"और", "aur"},
	{"जो", "jo"},
	{"तो", "toh"},
	{"बस", "bas"},
	{"एक", "ek"},
	{"ही", "hi"},
	{"ये", "ye"},
	{"।", "."},
}

var translitReplacer = newTranslitReplacer()

func newTranslitReplacer() *strings.Replacer {
	args := make([]string, 0, len(translitPairs)*2)
	for _, p := range translitPairs {
		args = append(args, p.dev, p.latin)
	}
	return strings.NewReplacer(args...)
}

// Latinize substitutes known Devanagari words with their Roman spelling.
func Latinize(s string) string {
	return translitReplacer.Replace(s)
}
