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

var outlineCases = []TestCase{
	{
		Name:   "hexagon_bresenham",
		Shape:  regularPolygon(32, 32, 26, 6),
		Width:  64,
		Height: 64,
		Op:     Outline{Algorithm: pixels.Bresenham, Color: pixels.White},
	},
	{
		Name:   "hexagon_slope",
		Shape:  regularPolygon(32, 32, 26, 6),
		Width:  64,
		Height: 64,
		Op:     Outline{Algorithm: pixels.Slope, Color: pixels.White},
	},
	{
		Name:   "hexagon_dda",
		Shape:  regularPolygon(32, 32, 26, 6),
		Width:  64,
		Height: 64,
		Op:     Outline{Algorithm: pixels.DDA, Color: pixels.White},
	},
	{
		Name:   "hexagon_dda_aa",
		Shape:  regularPolygon(32, 32, 26, 6),
		Width:  64,
		Height: 64,
		Op:     Outline{Algorithm: pixels.DDAAntialiased, Color: pixels.White},
	},
	{
		Name:   "star_bresenham",
		Shape:  fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Outline{Algorithm: pixels.Bresenham, Color: pixels.White},
	},
	{
		Name:   "segment",
		Shape:  pixels.Polygon{pt(5, 59), pt(58, 7)},
		Width:  64,
		Height: 64,
		Op:     Outline{Algorithm: pixels.Bresenham, Color: pixels.White},
	},
}
