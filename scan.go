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
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// attr holds the interpolated per-vertex attributes of a scan conversion:
// RGBA for gradient fills, (u, v) in the first two slots for textured
// fills.
type attr [4]float64

func lerpAttr(a, b attr, t float64) attr {
	var res attr
	for i := range res {
		res[i] = a[i] + (b[i]-a[i])*t
	}
	return res
}

func colorAttr(c Color) attr {
	return attr{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

func (a attr) color() Color {
	ch := func(x float64) uint8 {
		return uint8(math.Round(min(max(x, 0), 255)))
	}
	return Color{R: ch(a[0]), G: ch(a[1]), B: ch(a[2]), A: ch(a[3])}
}

// edge is a non-horizontal polygon edge, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64 // upper endpoint
	x1, y1 float64 // lower endpoint
	a0, a1 attr    // attributes at the two endpoints
}

// crossing is the intersection of a scanline with an edge.
type crossing struct {
	x float64
	a attr
}

// ScanConverter fills polygons scanline by scanline using the even-odd
// rule.  The caller can create one instance and reuse it for many
// polygons; internal buffers grow as needed but are never shrunk.
//
// For every integer scanline y between the smallest and largest vertex y
// coordinate, the intersections with all edges are computed, sorted by x,
// and the spans between intersections 0 and 1, 2 and 3, and so on are
// painted, including both end pixels.  An edge intersects the scanline if
// y0 < y <= y1, so vertices shared by two edges are counted correctly.
// Output is clipped to the bounds of the destination.
//
// A ScanConverter is not safe for concurrent use.
type ScanConverter struct {
	edges     []edge
	active    []int
	crossings []crossing
}

// NewScanConverter returns a new ScanConverter.
func NewScanConverter() *ScanConverter {
	return &ScanConverter{}
}

// Fill fills s.  Plain polygons are filled with c, gradient polygons with
// their interpolated vertex colors, and textured polygons from their
// texture.
func (sc *ScanConverter) Fill(dst Plotter, s Shape, c Color) error {
	switch s := s.(type) {
	case Polygon:
		return sc.FillPolygon(dst, s, c)
	case GradientPolygon:
		return sc.FillGradient(dst, s)
	case TexturePolygon:
		return sc.FillTextured(dst, s)
	default:
		return errors.Errorf("unsupported shape type %T", s)
	}
}

// FillPolygon fills the interior of p with the color c.
func (sc *ScanConverter) FillPolygon(dst Plotter, p Polygon, c Color) error {
	if err := checkVertices(len(p), minFillVertices, "fill"); err != nil {
		return err
	}
	sc.scan(dst, p, nil, func(x, y int, _ attr) {
		dst.SetPixel(x, y, c)
	})
	return nil
}

// FillGradient fills the interior of p, interpolating the vertex colors
// first along the edges and then along each scanline.
func (sc *ScanConverter) FillGradient(dst Plotter, p GradientPolygon) error {
	if err := checkVertices(len(p), minFillVertices, "gradient fill"); err != nil {
		return err
	}
	vertexAttr := func(i int) attr {
		return colorAttr(p[i].Color)
	}
	sc.scan(dst, p, vertexAttr, func(x, y int, a attr) {
		dst.SetPixel(x, y, a.color())
	})
	return nil
}

// FillTextured fills the interior of p with texels from p.Texture.  The
// texture coordinates are interpolated first along the edges and then
// along each scanline, and the texture is sampled with
// [Texture.Sample].
func (sc *ScanConverter) FillTextured(dst Plotter, p TexturePolygon) error {
	if err := checkVertices(len(p.Vertices), minFillVertices, "textured fill"); err != nil {
		return err
	}
	if p.Texture == nil {
		return errors.New("textured fill: no texture")
	}
	vertexAttr := func(i int) attr {
		uv := p.Vertices[i].UV
		return attr{uv.X, uv.Y}
	}
	tex := p.Texture
	sc.scan(dst, p, vertexAttr, func(x, y int, a attr) {
		dst.SetPixel(x, y, tex.Sample(a[0], a[1]))
	})
	return nil
}

// scan runs the scanline algorithm over s and calls paint for every pixel
// inside the polygon.  If vertexAttr is nil, all attributes are zero.
func (sc *ScanConverter) scan(dst Plotter, s Shape, vertexAttr func(int) attr, paint func(x, y int, a attr)) {
	bounds := dst.Bounds()
	yMin, yMax, ok := sc.collectEdges(s, vertexAttr)
	if !ok {
		return
	}

	// clamp before converting, huge coordinates would overflow int
	top, bottom := float64(bounds.Min.Y), float64(bounds.Max.Y-1)
	yStart := int(math.Ceil(min(max(yMin, top), bottom+1)))
	yEnd := int(math.Floor(max(min(yMax, bottom), top-1)))
	if yStart > yEnd {
		return // nothing visible
	}

	slices.SortFunc(sc.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	sc.active = sc.active[:0]
	next := 0

	for y := yStart; y <= yEnd; y++ {
		yf := float64(y)

		// activate edges which start above this scanline
		for next < len(sc.edges) && sc.edges[next].y0 < yf {
			sc.active = append(sc.active, next)
			next++
		}

		sc.crossings = sc.crossings[:0]
		for i := 0; i < len(sc.active); {
			e := &sc.edges[sc.active[i]]
			if e.y1 < yf {
				// the edge ends above this scanline
				sc.active[i] = sc.active[len(sc.active)-1]
				sc.active = sc.active[:len(sc.active)-1]
				continue
			}
			i++

			t := (yf - e.y0) / (e.y1 - e.y0)
			if t <= 0 || t > 1 {
				continue
			}
			sc.crossings = append(sc.crossings, crossing{
				x: e.x0 + (e.x1-e.x0)*t,
				a: lerpAttr(e.a0, e.a1, t),
			})
		}

		slices.SortFunc(sc.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		for i := 0; i+1 < len(sc.crossings); i += 2 {
			sc.span(bounds.Min.X, bounds.Max.X, y, &sc.crossings[i], &sc.crossings[i+1], paint)
		}
	}
}

// span paints the pixels of scanline y between the crossings l and r,
// clipped to [xMin, xMax).
func (sc *ScanConverter) span(xMin, xMax, y int, l, r *crossing, paint func(x, y int, a attr)) {
	width := r.x - l.x
	if width == 0 {
		return
	}

	left, right := float64(xMin), float64(xMax-1)
	xStart := round(min(max(l.x, left), right+1))
	xEnd := round(max(min(r.x, right), left-1))
	for x := xStart; x <= xEnd; x++ {
		s := min(max((float64(x)-l.x)/width, 0), 1)
		paint(x, y, lerpAttr(l.a, r.a, s))
	}
}

// collectEdges builds the edge list for s and returns the vertical extent
// of all vertices.  It returns ok == false if no edge is usable.
func (sc *ScanConverter) collectEdges(s Shape, vertexAttr func(int) attr) (yMin, yMax float64, ok bool) {
	sc.edges = sc.edges[:0]

	n := s.NumVertices()
	for i := range n {
		j := (i + 1) % n
		p0, p1 := s.Vertex(i), s.Vertex(j)

		if i == 0 {
			yMin, yMax = p0.Y, p0.Y
		} else {
			yMin = min(yMin, p0.Y)
			yMax = max(yMax, p0.Y)
		}

		if p0.Y == p1.Y {
			continue // horizontal edges never cross a scanline
		}

		var a0, a1 attr
		if vertexAttr != nil {
			a0, a1 = vertexAttr(i), vertexAttr(j)
		}
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
			a0, a1 = a1, a0
		}
		sc.edges = append(sc.edges, edge{
			x0: p0.X, y0: p0.Y,
			x1: p1.X, y1: p1.Y,
			a0: a0, a1: a1,
		})
	}

	return yMin, yMax, len(sc.edges) > 0
}

// Fill fills s using a temporary [ScanConverter].
func Fill(dst Plotter, s Shape, c Color) error {
	return NewScanConverter().Fill(dst, s, c)
}

// FillPolygon fills p with c using a temporary [ScanConverter].
func FillPolygon(dst Plotter, p Polygon, c Color) error {
	return NewScanConverter().FillPolygon(dst, p, c)
}

// FillGradient fills p with interpolated vertex colors using a temporary
// [ScanConverter].
func FillGradient(dst Plotter, p GradientPolygon) error {
	return NewScanConverter().FillGradient(dst, p)
}

// FillTextured fills p from its texture using a temporary
// [ScanConverter].
func FillTextured(dst Plotter, p TexturePolygon) error {
	return NewScanConverter().FillTextured(dst, p)
}
