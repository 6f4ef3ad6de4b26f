// SPDX-License-Identifier: MIT

package text

// Reverse returns s with its runes in reverse order.
// For valid UTF-8, Reverse(Reverse(s)) == s.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

// FirstSingleChar returns the first rune of s, in scan order, that occurs
// exactly once. ok is false when every rune repeats or s is empty.
// Matching is case-sensitive. Input is expected to be valid UTF-8: every
// invalid byte decodes to utf8.RuneError, so two different invalid bytes
// count as one repeated character.
func FirstSingleChar(s string) (r rune, ok bool) {
	counts := make(map[rune]int, len(s))
	for _, ch := range s {
		counts[ch]++
	}
	for _, ch := range s {
		if counts[ch] == 1 {
			return ch, true
		}
	}

	return 0, false
}
