// SPDX-License-Identifier: MIT

// Package numeric collects small integer and number-formatting routines:
//
//   - FizzBuzz, Factorial, SumBetween
//   - DigitalRoot, ReverseInteger, ToRadixString
//   - IntervalString
//   - Luhn, LuhnNumber
//
// Every function is pure and total over its documented domain. Out-of-domain
// input keeps the permissive behavior of the plain loop (e.g. Factorial of a
// negative number is 1, SumBetween of an empty range is 0) rather than being
// rejected. The one exception is ToRadixString, which returns ErrInvalidRadix
// instead of panicking on a radix outside [2, 10].
package numeric
