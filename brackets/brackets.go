// SPDX-License-Identifier: MIT

package brackets

// pairs maps every opener to its closer.
var pairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// closers maps every closer back to its opener.
var closers = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
	'>': '<',
}

// IsOpener reports whether r opens one of the four bracket pairs.
func IsOpener(r rune) bool {
	_, ok := pairs[r]

	return ok
}

// IsCloser reports whether r closes one of the four bracket pairs.
func IsCloser(r rune) bool {
	_, ok := closers[r]

	return ok
}

// Partner returns the other half of bracket r: the closer for an opener and
// the opener for a closer. ok is false for any non-bracket rune.
func Partner(r rune) (partner rune, ok bool) {
	if p, found := pairs[r]; found {
		return p, true
	}
	if p, found := closers[r]; found {
		return p, true
	}

	return 0, false
}

// Balanced reports whether every bracket in s is matched by its partner in
// proper nesting order. Non-bracket runes are ignored; "" is balanced.
func Balanced(s string) bool {
	return FirstUnbalanced(s) == -1
}

// opener is a pending open bracket and its byte offset in the input.
type opener struct {
	r   rune
	pos int
}

// FirstUnbalanced returns the byte offset of the first bracket that breaks
// balance, or -1 if s is balanced.
//
// A closer that meets an empty stack or the wrong opener reports its own
// offset. If the scan ends with openers still pending, the innermost (last
// pushed) one is reported.
func FirstUnbalanced(s string) int {
	var stack []opener
	for i, r := range s {
		if IsOpener(r) {
			stack = append(stack, opener{r: r, pos: i})

			continue
		}
		want, isCloser := closers[r]
		if !isCloser {
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1].r != want {
			return i
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) > 0 {
		return stack[len(stack)-1].pos
	}

	return -1
}
