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
	"testing"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestWindowToViewportIdentity(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 500, URy: 550}
	p := Polygon{{X: 0, Y: 0}, {X: 123.25, Y: 456.5}, {X: 500, Y: 550}, {X: -20, Y: 600}}

	mapped, err := MapWindow(p, r, r)
	if err != nil {
		t.Fatal(err)
	}
	q := mapped.(Polygon)
	for i := range p {
		if !closeTo(q[i], p[i]) {
			t.Errorf("vertex %d moved from %v to %v", i, p[i], q[i])
		}
	}
}

func TestWindowToViewport(t *testing.T) {
	tests := []struct {
		window, viewport rect.Rect
		in, want         vec.Vec2
	}{
		{
			window:   rect.Rect{LLx: 0, LLy: 0, URx: 500, URy: 550},
			viewport: rect.Rect{LLx: 0, LLy: 0, URx: 250, URy: 275},
			in:       vec.Vec2{X: 500, Y: 550},
			want:     vec.Vec2{X: 250, Y: 275},
		},
		{
			window:   rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10},
			viewport: rect.Rect{LLx: 100, LLy: 50, URx: 200, URy: 150},
			in:       vec.Vec2{X: 5, Y: 5},
			want:     vec.Vec2{X: 150, Y: 100},
		},
		{
			window:   rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 60},
			viewport: rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100},
			in:       vec.Vec2{X: 10, Y: 20},
			want:     vec.Vec2{X: 0, Y: 0},
		},
		{
			window:   rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 60},
			viewport: rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100},
			in:       vec.Vec2{X: 30, Y: 60},
			want:     vec.Vec2{X: 100, Y: 100},
		},
		{
			// flipped viewport mirrors the y axis
			window:   rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1},
			viewport: rect.Rect{LLx: 0, LLy: 100, URx: 100, URy: 0},
			in:       vec.Vec2{X: 0.25, Y: 0.25},
			want:     vec.Vec2{X: 25, Y: 75},
		},
	}
	for i, test := range tests {
		m, err := WindowToViewport(test.window, test.viewport)
		if err != nil {
			t.Fatal(err)
		}
		if got := apply(m, test.in); !closeTo(got, test.want) {
			t.Errorf("%d: %v mapped to %v, want %v", i, test.in, got, test.want)
		}
	}
}

func TestWindowToViewportDegenerate(t *testing.T) {
	vp := rect.Rect{URx: 10, URy: 10}
	for _, w := range []rect.Rect{
		{LLx: 5, LLy: 0, URx: 5, URy: 10},
		{LLx: 0, LLy: 3, URx: 10, URy: 3},
	} {
		if _, err := WindowToViewport(w, vp); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("window %v: got %v", w, err)
		}
		if _, err := MapWindow(Rect(0, 0, 1, 1), w, vp); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("window %v: got %v", w, err)
		}
	}
}

func TestMapWindowKeepsKind(t *testing.T) {
	window := rect.Rect{URx: 100, URy: 100}
	viewport := rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}
	grad := GradientPolygon{
		{Pos: vec.Vec2{X: 0, Y: 0}, Color: Red},
		{Pos: vec.Vec2{X: 100, Y: 0}, Color: Green},
		{Pos: vec.Vec2{X: 50, Y: 100}, Color: Blue},
	}
	mapped, err := MapWindow(grad, window, viewport)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := mapped.(GradientPolygon)
	if !ok {
		t.Fatalf("got %T", mapped)
	}
	if !closeTo(g[2].Pos, vec.Vec2{X: 15, Y: 20}) || g[2].Color != Blue {
		t.Errorf("vertex 2: %v", g[2])
	}

	// the same scene rendered twice: full size and as a minimap
	s := NewSurface(100, 100)
	if err := Fill(s, grad, Black); err != nil {
		t.Fatal(err)
	}
	if err := Fill(s, mapped, Black); err != nil {
		t.Fatal(err)
	}
	if got := s.Pixel(15, 18); got.B == 0 {
		t.Errorf("minimap not drawn near its bottom vertex: %v", got)
	}
}
