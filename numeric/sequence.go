// SPDX-License-Identifier: MIT

package numeric

import "strconv"

// FizzBuzz returns "Fizz" for multiples of 3, "Buzz" for multiples of 5,
// "FizzBuzz" for multiples of both, and the decimal form of n otherwise.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Factorial returns 1·2·…·n. For n <= 0 the product is empty and the result
// is 1. Results overflow int64 beyond n = 20.
func Factorial(n int) int64 {
	f := int64(1)
	for i := 2; i <= n; i++ {
		f *= int64(i)
	}

	return f
}

// SumBetween returns the sum of all integers in [n1, n2]. An empty range
// (n1 > n2) sums to 0.
func SumBetween(n1, n2 int) int {
	if n1 > n2 {
		return 0
	}
	// Arithmetic series count*(first+last)/2. One factor is always even;
	// halve it first so the product only overflows when the sum does.
	cnt, s := n2-n1+1, n1+n2
	if cnt%2 == 0 {
		return cnt / 2 * s
	}

	return s / 2 * cnt
}
