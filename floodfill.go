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

import "image"

// FloodFill repaints the 4-connected region of pixels which have the same
// color as the seed pixel (x, y).  It returns the number of pixels
// painted.
//
// If the seed already has color c, or lies outside dst, nothing happens.
// The fill uses an explicit stack, so its memory use does not depend on
// the call stack.  The fill color is written opaque.
func FloodFill(dst Canvas, x, y int, c Color) int {
	bounds := dst.Bounds()
	seed := image.Point{x, y}
	if !seed.In(bounds) {
		return 0
	}
	original := dst.Pixel(x, y)
	if original.Equal(c) {
		return 0
	}
	c = c.WithAlpha(255)

	n := fill(dst, bounds, seed, c, func(cur Color) bool {
		return !cur.Equal(original)
	})
	Logger().Debug("flood fill", "x", x, "y", y, "painted", n)
	return n
}

// BoundaryFill paints the 4-connected region around (x, y) which is
// enclosed by pixels of color border.  Pixels which already have the fill
// color also stop the fill.  It returns the number of pixels painted.
func BoundaryFill(dst Canvas, x, y int, fillColor, border Color) int {
	bounds := dst.Bounds()
	seed := image.Point{x, y}
	if !seed.In(bounds) {
		return 0
	}
	fillColor = fillColor.WithAlpha(255)

	n := fill(dst, bounds, seed, fillColor, func(cur Color) bool {
		return cur.Equal(border) || cur.Equal(fillColor)
	})
	Logger().Debug("boundary fill", "x", x, "y", y, "painted", n)
	return n
}

// BoundaryFillSelf is BoundaryFill with the fill color also acting as the
// border color.
func BoundaryFillSelf(dst Canvas, x, y int, fillColor Color) int {
	return BoundaryFill(dst, x, y, fillColor, fillColor)
}

// fill runs the stack-based 4-connected fill shared by FloodFill and
// BoundaryFill.  Pixels for which stop returns true are neither painted
// nor expanded.
func fill(dst Canvas, bounds image.Rectangle, seed image.Point, c Color, stop func(Color) bool) int {
	painted := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if stop(dst.Pixel(p.X, p.Y)) {
			continue
		}
		dst.SetPixel(p.X, p.Y, c)
		painted++

		if p.X+1 < bounds.Max.X {
			stack = append(stack, image.Point{p.X + 1, p.Y})
		}
		if p.X-1 >= bounds.Min.X {
			stack = append(stack, image.Point{p.X - 1, p.Y})
		}
		if p.Y+1 < bounds.Max.Y {
			stack = append(stack, image.Point{p.X, p.Y + 1})
		}
		if p.Y-1 >= bounds.Min.Y {
			stack = append(stack, image.Point{p.X, p.Y - 1})
		}
	}
	return painted
}
