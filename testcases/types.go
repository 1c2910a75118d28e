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

// Package testcases contains named scenes for testing and benchmarking the
// rasterizer, and for generating reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixels"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shape  pixels.Shape  // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or outline
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Geometry returns the shape after applying the CTM.
func (tc TestCase) Geometry() pixels.Shape {
	if tc.CTM == (matrix.Matrix{}) {
		return tc.Shape
	}
	return pixels.Transform(tc.Shape, tc.CTM)
}

// Operation is the rendering operation to apply to the shape.
type Operation interface {
	isOperation()
}

// Fill specifies a scanline fill.  Color is used for plain polygons only;
// gradient and textured polygons carry their own colors.
type Fill struct {
	Color pixels.Color
}

func (Fill) isOperation() {}

// Outline specifies drawing the closed outline with a line rasterizer.
type Outline struct {
	Algorithm pixels.LineAlgorithm
	Color     pixels.Color
}

func (Outline) isOperation() {}

// Render draws tc onto dst.
func Render(dst pixels.Plotter, tc TestCase) error {
	s := tc.Geometry()
	switch op := tc.Op.(type) {
	case Fill:
		return pixels.Fill(dst, s, op.Color)
	case Outline:
		return pixels.Outline(dst, s, op.Algorithm, op.Color)
	}
	return nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
