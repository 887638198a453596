package quiz

import "strings"

// Normalize canonicalizes an answer for comparison.
//
// Normalization rules:
// - Letters are lower-cased
// - Every rune outside [a-z0-9] is dropped (spaces, punctuation, accents)
// - The result is trimmed
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}

// Matches reports whether guess and want are equal after normalization.
// Rejecting raw empty input is left to the caller.
func Matches(guess, want string) bool {
	return Normalize(guess) == Normalize(want)
}
