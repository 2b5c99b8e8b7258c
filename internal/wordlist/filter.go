package wordlist

// filterLowerASCII keeps non-empty words made only of a-z, so capitalization
// and length budgeting stay byte/rune agnostic.
func filterLowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
