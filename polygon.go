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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is a closed polygon.  The implementations are [Polygon],
// [GradientPolygon] and [TexturePolygon]; each carries a different
// per-vertex payload.
//
// The last vertex is implicitly connected to the first one.
type Shape interface {
	// NumVertices returns the number of vertices.
	NumVertices() int

	// Vertex returns the position of vertex i.
	Vertex(i int) vec.Vec2

	isShape()
}

// Polygon is a polygon without per-vertex attributes.
type Polygon []vec.Vec2

// ColorVertex is a polygon vertex with a color.
type ColorVertex struct {
	Pos   vec.Vec2
	Color Color
}

// GradientPolygon is a polygon with a color at every vertex.  The colors
// are interpolated across the interior when filling.
type GradientPolygon []ColorVertex

// TexVertex is a polygon vertex with normalized texture coordinates.
// U and V are expected to lie in [0, 1].
type TexVertex struct {
	Pos vec.Vec2
	UV  vec.Vec2
}

// TexturePolygon is a polygon which is filled by sampling Texture.
type TexturePolygon struct {
	Vertices []TexVertex
	Texture  *Texture
}

func (Polygon) isShape()         {}
func (GradientPolygon) isShape() {}
func (TexturePolygon) isShape()  {}

// NumVertices implements the [Shape] interface.
func (p Polygon) NumVertices() int { return len(p) }

// Vertex implements the [Shape] interface.
func (p Polygon) Vertex(i int) vec.Vec2 { return p[i] }

// NumVertices implements the [Shape] interface.
func (p GradientPolygon) NumVertices() int { return len(p) }

// Vertex implements the [Shape] interface.
func (p GradientPolygon) Vertex(i int) vec.Vec2 { return p[i].Pos }

// NumVertices implements the [Shape] interface.
func (p TexturePolygon) NumVertices() int { return len(p.Vertices) }

// Vertex implements the [Shape] interface.
func (p TexturePolygon) Vertex(i int) vec.Vec2 { return p.Vertices[i].Pos }

// Transform returns a new polygon with every vertex mapped through m.
func (p Polygon) Transform(m matrix.Matrix) Polygon {
	res := make(Polygon, len(p))
	for i, v := range p {
		res[i] = apply(m, v)
	}
	return res
}

// Transform returns a new polygon with every vertex position mapped
// through m.  The vertex colors are unchanged.
func (p GradientPolygon) Transform(m matrix.Matrix) GradientPolygon {
	res := make(GradientPolygon, len(p))
	for i, v := range p {
		res[i] = ColorVertex{Pos: apply(m, v.Pos), Color: v.Color}
	}
	return res
}

// Transform returns a new polygon with every vertex position mapped
// through m.  Texture coordinates and the texture are unchanged.
func (p TexturePolygon) Transform(m matrix.Matrix) TexturePolygon {
	res := TexturePolygon{
		Vertices: make([]TexVertex, len(p.Vertices)),
		Texture:  p.Texture,
	}
	for i, v := range p.Vertices {
		res.Vertices[i] = TexVertex{Pos: apply(m, v.Pos), UV: v.UV}
	}
	return res
}

// Rect returns the axis-aligned rectangle with corners (x0, y0) and
// (x1, y1) as a Polygon.
func Rect(x0, y0, x1, y1 float64) Polygon {
	return Polygon{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

// BoundingBox returns the smallest rectangle containing all vertices of s.
// The result is the zero rectangle if s has no vertices.
func BoundingBox(s Shape) rect.Rect {
	n := s.NumVertices()
	if n == 0 {
		return rect.Rect{}
	}
	v := s.Vertex(0)
	bbox := rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
	for i := 1; i < n; i++ {
		v := s.Vertex(i)
		bbox.LLx = min(bbox.LLx, v.X)
		bbox.LLy = min(bbox.LLy, v.Y)
		bbox.URx = max(bbox.URx, v.X)
		bbox.URy = max(bbox.URy, v.Y)
	}
	return bbox
}

// Path returns the outline of s as a closed path.
func Path(s Shape) *path.Data {
	p := &path.Data{}
	n := s.NumVertices()
	if n == 0 {
		return p
	}
	p.MoveTo(s.Vertex(0))
	for i := 1; i < n; i++ {
		p.LineTo(s.Vertex(i))
	}
	return p.Close()
}

// Outline draws the edges of s, including the closing edge, with the given
// line algorithm.  Vertex positions are rounded to the nearest pixel.
// Shapes with fewer than two vertices are rejected with
// [ErrInvalidGeometry].
func Outline(dst Plotter, s Shape, alg LineAlgorithm, c Color) error {
	n := s.NumVertices()
	if err := checkVertices(n, minOutlineVertices, "outline"); err != nil {
		return err
	}
	for i := range n {
		a := s.Vertex(i)
		b := s.Vertex((i + 1) % n)
		Line(dst, alg, round(a.X), round(a.Y), round(b.X), round(b.Y), c)
	}
	return nil
}

func round(x float64) int {
	return int(math.Round(x))
}
