package text

import "strings"

// Normalize lower-cases s and keeps only ASCII letters and digits.
func Normalize(s string) string {
	lower := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		// multi-byte runes never fall in these ranges
		if c := lower[i]; ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// IsPalindrome reports whether Normalize(s) equals its reverse.
// A string that normalizes to "" is a palindrome.
func IsPalindrome(s string) bool {
	norm := Normalize(s)
	for left, right := 0, len(norm)-1; left < right; left, right = left+1, right-1 {
		if norm[left] != norm[right] {
			return false
		}
	}

	return true
}
