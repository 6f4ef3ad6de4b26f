// SPDX-License-Identifier: MIT

package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/lvdrills/geometry"
)

func ExampleRectsOverlap() {
	a := geometry.Rect{Top: 0, Left: 0, Width: 10, Height: 10}
	b := geometry.Rect{Top: 5, Left: 5, Width: 20, Height: 20}
	c := geometry.Rect{Top: 20, Left: 20, Width: 20, Height: 20}
	fmt.Println(geometry.RectsOverlap(a, b), geometry.RectsOverlap(a, c))
	// Output:
	// true false
}

func ExampleInsideCircle() {
	c := geometry.Circle{Center: geometry.Point{X: 0, Y: 0}, Radius: 10}
	fmt.Println(geometry.InsideCircle(c, geometry.Point{X: 0, Y: 0}))
	fmt.Println(geometry.InsideCircle(c, geometry.Point{X: 10, Y: 10}))
	// Output:
	// true
	// false
}
