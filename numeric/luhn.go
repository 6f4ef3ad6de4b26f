// SPDX-License-Identifier: MIT

package numeric

import "strconv"

// Luhn reports whether digits is a valid Luhn (mod 10) number.
//
// Starting from the rightmost digit, every second digit is doubled and 9 is
// subtracted when the double exceeds 9; all digits are then summed and the
// number is valid iff the total is a multiple of 10. An empty string or any
// non-digit character makes the input invalid.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return false
		}
		d := int(ch - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// LuhnNumber applies Luhn to the decimal form of n.
func LuhnNumber(n uint64) bool {
	return Luhn(strconv.FormatUint(n, 10))
}
