package catalog

import "strings"

// ruToLatin follows the common Russian reversed-transliteration scheme, so
// catalog names survive transports that strip non-ASCII (deep links, slugs,
// callback payloads).
var ruToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "j", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ъ': "'", 'ы': "y", 'ь': "'",
	'э': "e", 'ю': "ju", 'я': "ja",
}

// Translit converts a lower-cased Russian name to its Latin slug. Runes
// outside the Cyrillic table pass through unchanged.
func Translit(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if latin, ok := ruToLatin[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
