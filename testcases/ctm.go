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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixels"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Shape:  pixels.Rect(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{Color: pixels.White},
		CTM:    pixels.Translate(pixels.Scale(pixels.Identity(), 2, 2), 44, 44),
	},
	{
		Name:   "scale_half",
		Shape:  pixels.Rect(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
		CTM:    pixels.Translate(pixels.Scale(pixels.Identity(), 0.5, 0.5), 12, 12),
	},
	{
		Name:   "rotate_45deg",
		Shape:  pixels.Rect(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
		CTM:    pixels.Translate(pixels.Rotate(pixels.Identity(), 45), 32, 32),
	},
	{
		Name:   "rotate_about_center",
		Shape:  pixels.Rect(17, 22, 47, 42),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
		CTM:    pixels.RotateAbout(pixels.Identity(), 90, 32, 32),
	},
	{
		Name:   "scale_about_center",
		Shape:  regularPolygon(32, 32, 20, 5),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: pixels.White},
		CTM:    pixels.ScaleAbout(pixels.Identity(), 1.5, 0.5, 32, 32),
	},
	{
		Name:   "minimap",
		Shape:  triangle(100, 300, 200, 10, 300, 300),
		Width:  128,
		Height: 128,
		Op:     Fill{Color: pixels.White},
		CTM: windowToViewport(
			rect.Rect{LLx: 0, LLy: 0, URx: 500, URy: 550},
			rect.Rect{LLx: 78, LLy: 0, URx: 128, URy: 55},
		),
	},
	{
		Name:   "minimap_outline",
		Shape:  regularPolygon(250, 275, 200, 7),
		Width:  128,
		Height: 128,
		Op:     Outline{Algorithm: pixels.Bresenham, Color: pixels.White},
		CTM: windowToViewport(
			rect.Rect{LLx: 0, LLy: 0, URx: 500, URy: 550},
			rect.Rect{LLx: 8, LLy: 8, URx: 120, URy: 120},
		),
	},
}

// windowToViewport is pixels.WindowToViewport for windows known to be
// valid.
func windowToViewport(window, viewport rect.Rect) matrix.Matrix {
	m, err := pixels.WindowToViewport(window, viewport)
	if err != nil {
		panic(err)
	}
	return m
}
