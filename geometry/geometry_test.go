// SPDX-License-Identifier: MIT

package geometry_test

import (
	"testing"

	"github.com/katalvlaran/lvdrills/geometry"
	"github.com/stretchr/testify/assert"
)

func TestIsTriangle(t *testing.T) {
	cases := []struct {
		a, b, c float64
		want    bool
	}{
		{1, 2, 3, false},
		{3, 4, 5, true},
		{10, 1, 1, false},
		{10, 10, 10, true},
		{5, 3, 4, true},
		{1, 1, 1.999, true},
		{0, 1, 1, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, geometry.IsTriangle(tc.a, tc.b, tc.c), "IsTriangle(%v, %v, %v)", tc.a, tc.b, tc.c)
		// Side order must not matter.
		assert.Equal(t, tc.want, geometry.IsTriangle(tc.c, tc.a, tc.b))
	}
}

func TestRectsOverlap(t *testing.T) {
	base := geometry.Rect{Top: 0, Left: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other geometry.Rect
		want  bool
	}{
		{"Partial", geometry.Rect{Top: 5, Left: 5, Width: 20, Height: 20}, true},
		{"Disjoint", geometry.Rect{Top: 20, Left: 20, Width: 20, Height: 20}, false},
		{"Contained", geometry.Rect{Top: 2, Left: 2, Width: 2, Height: 2}, true},
		{"TouchingEdge", geometry.Rect{Top: 0, Left: 10, Width: 5, Height: 5}, true},
		{"TouchingCorner", geometry.Rect{Top: 10, Left: 10, Width: 5, Height: 5}, true},
		{"BelowOnly", geometry.Rect{Top: 11, Left: 0, Width: 10, Height: 10}, false},
		{"RightOnly", geometry.Rect{Top: 0, Left: 11, Width: 10, Height: 10}, false},
		{"SameXDisjointY", geometry.Rect{Top: -30, Left: 2, Width: 3, Height: 5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.RectsOverlap(base, tc.other))
			assert.Equal(t, tc.want, geometry.RectsOverlap(tc.other, base), "overlap is symmetric")
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := geometry.Rect{Top: 5, Left: 5, Width: 20, Height: 10}
	assert.Equal(t, 25.0, r.Right())
	assert.Equal(t, 15.0, r.Bottom())
}

func TestInsideCircle(t *testing.T) {
	cases := []struct {
		name   string
		circle geometry.Circle
		point  geometry.Point
		want   bool
	}{
		{"Center", geometry.Circle{Center: geometry.Point{}, Radius: 10}, geometry.Point{}, true},
		{"FarCorner", geometry.Circle{Center: geometry.Point{}, Radius: 10}, geometry.Point{X: 10, Y: 10}, false},
		{"Inside", geometry.Circle{Center: geometry.Point{X: 5, Y: 5}, Radius: 6}, geometry.Point{X: 1, Y: 2}, true},
		{"OnBoundary", geometry.Circle{Center: geometry.Point{}, Radius: 5}, geometry.Point{X: 3, Y: 4}, false},
		{"JustOutside", geometry.Circle{Center: geometry.Point{X: 5, Y: 5}, Radius: 6}, geometry.Point{X: 10, Y: 10}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.InsideCircle(tc.circle, tc.point))
			assert.Equal(t, tc.want, tc.circle.Contains(tc.point))
		})
	}
}
