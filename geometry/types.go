// SPDX-License-Identifier: MIT

package geometry

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Circle is a disc given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Rect is an axis-aligned rectangle in canvas coordinates (y grows downward).
type Rect struct {
	Top, Left     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }
