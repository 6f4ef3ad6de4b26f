// SPDX-License-Identifier: MIT

// Package text holds rune-level string exercises: reversal and the first
// non-repeating character. Both work on Unicode code points, not bytes, so
// multi-byte characters are never split.
package text
