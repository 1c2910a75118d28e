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

package pixels

import "math"

// quadrants lists the sign pairs used to reflect a point into all four
// quadrants around a center.
var quadrants = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Circle draws the outline of the circle with center (xc, yc) and radius r
// using the midpoint algorithm.  Negative radii are treated as positive.
//
// The decision variable is updated from the current position before x
// advances.  The loop runs while y >= x, so the pixels on the diagonals
// are always drawn.
func Circle(dst Plotter, xc, yc, r int, c Color) {
	r = abs(r)
	x, y := 0, r
	p := 3 - 2*r
	for y >= x {
		for _, q := range quadrants {
			dst.SetPixel(xc+q[0]*x, yc+q[1]*y, c)
			dst.SetPixel(xc+q[0]*y, yc+q[1]*x, c)
		}

		if p > 0 {
			p += 4*(x-y) + 10
			y--
		} else {
			p += 4*x + 6
		}
		x++
	}
}

// Ellipse draws the outline of the axis-aligned ellipse with center
// (xc, yc) and semi-axes rx and ry using the two-region midpoint
// algorithm.  Negative semi-axes are treated as positive.
func Ellipse(dst Plotter, xc, yc, rx, ry int, c Color) {
	rx = abs(rx)
	ry = abs(ry)
	if ry == 0 {
		for x := xc - rx; x <= xc+rx; x++ {
			dst.SetPixel(x, yc, c)
		}
		return
	}

	set4 := func(x, y int) {
		for _, q := range quadrants {
			dst.SetPixel(xc+q[0]*x, yc+q[1]*y, c)
		}
	}

	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)

	x, y := 0, ry
	px := 0.0
	py := 2 * rx2 * float64(y)

	// region 1: |slope| < 1, step in x
	p := ry2 - rx2*float64(ry) + 0.25*rx2
	for px < py {
		set4(x, y)

		x++
		px += 2 * ry2
		if p < 0 {
			p += ry2 + px
		} else {
			y--
			py -= 2 * rx2
			p += ry2 + px - py
		}
	}

	// region 2: |slope| >= 1, step in y
	fx := float64(x) + 0.5
	fy := float64(y - 1)
	p = ry2*fx*fx + rx2*fy*fy - rx2*ry2
	for y >= 0 {
		set4(x, y)

		y--
		py -= 2 * rx2
		if p > 0 {
			p += rx2 - py
		} else {
			x++
			px += 2 * ry2
			p += rx2 - py + px
		}
	}
}

// Sine plots y = h/2 + amplitude·sin(frequency·x) for every column x of
// dst, where h is the height of dst.
func Sine(dst Plotter, amplitude, frequency float64, c Color) {
	b := dst.Bounds()
	mid := float64(b.Min.Y+b.Max.Y) / 2
	for x := b.Min.X; x < b.Max.X; x++ {
		plot(dst, float64(x), mid+amplitude*math.Sin(float64(x)*frequency), c)
	}
}
