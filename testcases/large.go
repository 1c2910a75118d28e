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

import "seehuhn.de/go/pixels"

// largeCases contains test cases with large bounding boxes, which keep
// many edges active on every scanline.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Shape:  pixels.Rect(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "large_diamond",
		Shape:  diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "large_polygon",
		Shape:  regularPolygon(256, 256, 240, 64),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "large_star",
		Shape:  fivePointStar(256, 256, 240),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: pixels.White},
	},
	{
		Name:   "large_clipped",
		Shape:  pixels.Rect(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: pixels.White},
	},
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) pixels.Polygon {
	return pixels.Polygon{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}
