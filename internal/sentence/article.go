package sentence

import "strings"

// articlePrefixes are determiners a noun gloss may already carry; such
// glosses pass through unchanged.
var articlePrefixes = []string{"a ", "an ", "the ", "my "}

// AddArticle prepends an English indefinite article to a noun gloss:
//
//  1. a gloss already starting with "a ", "an ", "the ", or "my " is
//     returned unchanged (checked first so nothing is double-prefixed)
//  2. a gloss ending in "person" takes "a " ("a police person")
//  3. a gloss starting with a vowel letter takes "an "
//  4. everything else takes "a "
//
// Matching is done on the lowercased gloss; the returned string keeps
// the original casing.
func AddArticle(noun string) string {
	lower := strings.ToLower(noun)

	for _, p := range articlePrefixes {
		if strings.HasPrefix(lower, p) {
			return noun
		}
	}

	if strings.HasSuffix(lower, "person") {
		return "a " + noun
	}

	if len(lower) > 0 && strings.ContainsRune("aeiou", rune(lower[0])) {
		return "an " + noun
	}

	return "a " + noun
}
