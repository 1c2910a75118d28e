// seehuhn.de/go/pixels - a software rasterizer for 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"math"

	"seehuhn.de/go/pixels"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Shape:  triangle(100, 300, 200, 10, 300, 300),
		Width:  400,
		Height: 320,
		Op:     Fill{Color: pixels.Red},
	},
	{
		Name:   "small_triangle",
		Shape:  triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "star_evenodd",
		Shape:  fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "rectangle",
		Shape:  pixels.Rect(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.Green},
	},
	{
		Name:   "concave_arrow",
		Shape:  arrow(8, 32, 56, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.Blue},
	},
	{
		Name:   "subpixel_quad",
		Shape:  pixels.Polygon{pt(10.3, 12.7), pt(50.6, 9.2), pt(54.4, 48.5), pt(13.1, 51.9)},
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "partly_outside",
		Shape:  pixels.Rect(-20, 20, 84, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "offscreen",
		Shape:  pixels.Rect(100, 100, 140, 140),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
	},
}

// triangle builds a triangular polygon.
func triangle(x1, y1, x2, y2, x3, y3 float64) pixels.Polygon {
	return pixels.Polygon{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) pixels.Polygon {
	pts := make(pixels.Polygon, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	star := make(pixels.Polygon, len(order))
	for i, k := range order {
		star[i] = pts[k]
	}
	return star
}

// regularPolygon builds a convex polygon with n corners.
func regularPolygon(cx, cy, r float64, n int) pixels.Polygon {
	pts := make(pixels.Polygon, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

// arrow builds a concave arrow pointing right, with its tail at (x0, y)
// and its tip at (x1, y).
func arrow(x0, y, x1, h float64) pixels.Polygon {
	head := x1 - h
	return pixels.Polygon{
		pt(x0, y-h/3),
		pt(head, y-h/3),
		pt(head, y-h),
		pt(x1, y),
		pt(head, y+h),
		pt(head, y+h/3),
		pt(x0, y+h/3),
	}
}
