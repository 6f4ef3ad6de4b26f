// SPDX-License-Identifier: MIT

// Package geometry provides small planar predicates on points, circles,
// axis-aligned rectangles and triangle side lengths.
//
// Rectangles live in canvas coordinate space: the origin is the top-left
// corner and the vertical axis grows downward, so a Rect is anchored by its
// Top and Left edges and extends Width to the right and Height down.
//
//	(Left, Top)
//	    ┌──────────────┐
//	    │              │ Height
//	    └──────────────┘
//	         Width
package geometry
