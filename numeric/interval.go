// SPDX-License-Identifier: MIT

package numeric

import (
	"strconv"
	"strings"
)

// IntervalString renders the interval between a and b in mathematical
// notation, smaller bound first: '[' / '(' for an included / excluded start
// and ']' / ')' for an included / excluded end.
//
//	IntervalString(0, 1, true, false) == "[0, 1)"
//	IntervalString(5, 3, true, true)  == "[3, 5]"
func IntervalString(a, b float64, startIncluded, endIncluded bool) string {
	if b < a {
		a, b = b, a
	}
	var sb strings.Builder
	if startIncluded {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(formatBound(a))
	sb.WriteString(", ")
	sb.WriteString(formatBound(b))
	if endIncluded {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}

	return sb.String()
}

// formatBound prints the shortest decimal that round-trips, so integral
// bounds carry no fractional part.
func formatBound(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
