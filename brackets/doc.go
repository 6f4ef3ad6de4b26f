// SPDX-License-Identifier: MIT

// Package brackets checks whether the brackets in a string are balanced.
//
// 🚀 What is "balanced"?
//
//	Every opening bracket of the four pair types
//	  ()  []  {}  <>
//	is closed by its own partner, in proper nesting order, and nothing is
//	left open at the end. All other runes are transparent.
//
//	  ""              → balanced
//	  "{[(<{[]}>)]}"  → balanced
//	  "[[]"           → unclosed opener
//	  "]["            → unexpected closer
//	  "{)"            → mismatched closer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvdrills/brackets"
//
//	ok := brackets.Balanced("[[][][[]]]")         // true
//	at := brackets.FirstUnbalanced("a(b]c")       // 3, the offending ']'
//
// Performance:
//
//   - Time:   O(n), a single left-to-right pass
//   - Memory: O(d), d = maximum nesting depth (the explicit stack)
package brackets
