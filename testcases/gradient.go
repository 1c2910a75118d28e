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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixels"
)

var gradientCases = []TestCase{
	{
		Name: "rgb_triangle",
		Shape: pixels.GradientPolygon{
			{Pos: pt(32, 4), Color: pixels.Red},
			{Pos: pt(60, 58), Color: pixels.Green},
			{Pos: pt(4, 58), Color: pixels.Blue},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "grey_ramp",
		Shape: pixels.GradientPolygon{
			{Pos: pt(4, 4), Color: pixels.Black},
			{Pos: pt(60, 4), Color: pixels.White},
			{Pos: pt(60, 60), Color: pixels.White},
			{Pos: pt(4, 60), Color: pixels.Black},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

var textureCases = []TestCase{
	{
		Name:   "checker_quad",
		Shape:  texturedQuad(8, 8, 56, 56, Checkerboard(8, 4, pixels.White, pixels.Black)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "checker_rotated",
		Shape:  texturedQuad(-16, -16, 16, 16, Checkerboard(8, 4, pixels.White, pixels.Black)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    pixels.Translate(pixels.Rotate(pixels.Identity(), 30), 32, 32),
	},
}

// texturedQuad builds an axis-aligned rectangle which shows the whole
// texture.
func texturedQuad(x0, y0, x1, y1 float64, tex *pixels.Texture) pixels.TexturePolygon {
	return pixels.TexturePolygon{
		Vertices: []pixels.TexVertex{
			{Pos: pt(x0, y0), UV: vec.Vec2{X: 0, Y: 0}},
			{Pos: pt(x1, y0), UV: vec.Vec2{X: 1, Y: 0}},
			{Pos: pt(x1, y1), UV: vec.Vec2{X: 1, Y: 1}},
			{Pos: pt(x0, y1), UV: vec.Vec2{X: 0, Y: 1}},
		},
		Texture: tex,
	}
}

// Checkerboard returns a texture with n×n squares of size×size texels,
// alternating between colors a and b.
func Checkerboard(n, size int, a, b pixels.Color) *pixels.Texture {
	w := n * size
	texels := make([]pixels.Color, w*w)
	for y := range w {
		for x := range w {
			if (x/size+y/size)%2 == 0 {
				texels[y*w+x] = a
			} else {
				texels[y*w+x] = b
			}
		}
	}
	tex, err := pixels.NewTexture(w, w, texels)
	if err != nil {
		panic(err)
	}
	return tex
}
