// SPDX-License-Identifier: MIT

package geometry

// IsTriangle reports whether a, b and c can be the side lengths of a
// non-degenerate triangle: each side is strictly shorter than the sum of the
// other two.
func IsTriangle(a, b, c float64) bool {
	return a+b > c && b+c > a && c+a > b
}

// overlaps1D reports whether the closed intervals [a1, a2] and [b1, b2] meet.
func overlaps1D(a1, a2, b1, b2 float64) bool {
	return a1 <= b2 && b1 <= a2
}

// Overlaps reports whether r and o share at least one point. Edges are
// inclusive, so rectangles that merely touch overlap.
func (r Rect) Overlaps(o Rect) bool {
	return overlaps1D(r.Left, r.Right(), o.Left, o.Right()) &&
		overlaps1D(r.Top, r.Bottom(), o.Top, o.Bottom())
}

// RectsOverlap reports whether r1 and r2 overlap; see Rect.Overlaps.
func RectsOverlap(r1, r2 Rect) bool {
	return r1.Overlaps(r2)
}

// Contains reports whether p lies strictly inside c; points on the circle
// itself are outside.
func (c Circle) Contains(p Point) bool {
	dx, dy := p.X-c.Center.X, p.Y-c.Center.Y

	return dx*dx+dy*dy < c.Radius*c.Radius
}

// InsideCircle reports whether p lies strictly inside c; see Circle.Contains.
func InsideCircle(c Circle, p Point) bool {
	return c.Contains(p)
}
