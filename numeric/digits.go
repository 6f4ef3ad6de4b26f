// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"strconv"
)

// Radix bounds accepted by ToRadixString.
const (
	MinRadix = 2
	MaxRadix = 10
)

// digitSum adds the decimal digits of |n|.
func digitSum(n int) int {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	sum := 0
	for ; u > 0; u /= 10 {
		sum += int(u % 10)
	}

	return sum
}

// DigitalRoot sums the decimal digits of |n|, and sums them once more when
// the first sum exceeds 9.
//
// Exactly two passes are made. The result is the true digital root only
// when the second pass already lands on one digit; otherwise two digits come
// back, e.g. 199 → 19 → 10.
func DigitalRoot(n int) int {
	sum := digitSum(n)
	if sum > 9 {
		sum = digitSum(sum)
	}

	return sum
}

// ReverseInteger reverses the characters of n's decimal representation.
// The result is returned as text and is not normalized: 120 gives "021" and
// -12 gives "21-".
func ReverseInteger(n int) string {
	b := []byte(strconv.Itoa(n))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// ToRadixString returns n written in base radix (2..10), with a leading '-'
// for negative n.
func ToRadixString(n int64, radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", fmt.Errorf("ToRadixString(%d, %d): %w", n, radix, ErrInvalidRadix)
	}

	return strconv.FormatInt(n, radix), nil
}
