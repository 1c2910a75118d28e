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

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// The affine transformations in this package are [matrix.Matrix] values.
// A matrix acts on a point (x, y) as
//
//	x' = m[0]*x + m[2]*y + m[4]
//	y' = m[1]*x + m[3]*y + m[5]
//
// The compose functions below all return a matrix which first applies m
// and then the new operation.  Building a transformation step by step
// therefore lists the operations in the order they act on the geometry.

// Identity returns the identity transformation.
func Identity() matrix.Matrix {
	return matrix.Identity
}

// Translate returns m followed by a translation by (tx, ty).
func Translate(m matrix.Matrix, tx, ty float64) matrix.Matrix {
	return m.Translate(tx, ty)
}

// Scale returns m followed by a scaling by sx and sy about the origin.
func Scale(m matrix.Matrix, sx, sy float64) matrix.Matrix {
	return m.Scale(sx, sy)
}

// Rotate returns m followed by a counter-clockwise rotation by deg degrees
// about the origin.  Counter-clockwise refers to a coordinate system with
// the y axis pointing up; on a Surface, where y grows downwards, the
// rotation appears clockwise.
func Rotate(m matrix.Matrix, deg float64) matrix.Matrix {
	return m.RotateDeg(deg)
}

// ScaleAbout returns m followed by a scaling by sx and sy about the point
// (cx, cy).
func ScaleAbout(m matrix.Matrix, sx, sy, cx, cy float64) matrix.Matrix {
	m = Translate(m, -cx, -cy)
	m = Scale(m, sx, sy)
	return Translate(m, cx, cy)
}

// RotateAbout returns m followed by a rotation by deg degrees about the
// point (cx, cy).
func RotateAbout(m matrix.Matrix, deg, cx, cy float64) matrix.Matrix {
	m = Translate(m, -cx, -cy)
	m = Rotate(m, deg)
	return Translate(m, cx, cy)
}

// Transform maps every vertex of s through m and returns a new shape of
// the same kind.  Per-vertex colors and texture coordinates are kept.
func Transform(s Shape, m matrix.Matrix) Shape {
	switch s := s.(type) {
	case Polygon:
		return s.Transform(m)
	case GradientPolygon:
		return s.Transform(m)
	case TexturePolygon:
		return s.Transform(m)
	default:
		panic(fmt.Sprintf("pixels: unsupported shape type %T", s))
	}
}

// apply maps the point v through m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
