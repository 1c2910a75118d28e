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
	"image"
	"math"
	"testing"
)

// relative returns the points of rec relative to (xc, yc).
func relative(rec *recorder, xc, yc int) map[image.Point]bool {
	res := map[image.Point]bool{}
	for p := range rec.set() {
		res[image.Point{p.X - xc, p.Y - yc}] = true
	}
	return res
}

func TestCircleSymmetry(t *testing.T) {
	for _, r := range []int{0, 1, 2, 5, 13, 50} {
		rec := newRecorder()
		Circle(rec, 250, 250, r, Green)
		pts := relative(rec, 250, 250)

		for p := range pts {
			images := []image.Point{
				{-p.Y, p.X}, // rotation by 90°
				{-p.X, p.Y}, // reflection across the vertical axis
				{p.X, -p.Y}, // reflection across the horizontal axis
			}
			for _, q := range images {
				if !pts[q] {
					t.Errorf("r=%d: %v present but %v missing", r, p, q)
				}
			}
		}
	}
}

func TestCircleRadius(t *testing.T) {
	const r = 50
	rec := newRecorder()
	Circle(rec, 250, 250, r, Green)
	pts := relative(rec, 250, 250)

	for p := range pts {
		d := math.Hypot(float64(p.X), float64(p.Y))
		if math.Abs(d-r) > 0.75 {
			t.Errorf("pixel %v at distance %.2f", p, d)
		}
	}
	for _, p := range []image.Point{{r, 0}, {-r, 0}, {0, r}, {0, -r}} {
		if !pts[p] {
			t.Errorf("extreme point %v missing", p)
		}
	}
}

// TestCircleCloseToCurve checks every radius up to 200, so that each pixel
// lies within half a pixel of the true circle.
func TestCircleCloseToCurve(t *testing.T) {
	for r := 1; r <= 200; r++ {
		rec := newRecorder()
		Circle(rec, 0, 0, r, White)
		for p := range rec.set() {
			d := math.Hypot(float64(p.X), float64(p.Y))
			if math.Abs(d-float64(r)) > 0.5 {
				t.Errorf("r=%d: pixel %v at distance %.3f", r, p, d)
			}
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	a := newRecorder()
	Circle(a, 0, 0, 7, White)
	b := newRecorder()
	Circle(b, 0, 0, -7, White)
	if len(a.set()) != len(b.set()) {
		t.Errorf("%d pixels for r=7, %d for r=-7", len(a.set()), len(b.set()))
	}
}

func TestEllipse(t *testing.T) {
	tests := []struct {
		rx, ry int
	}{
		{100, 100},
		{-100, 100},
		{40, 10},
		{10, 40},
		{1, 1},
		{0, 5},
		{5, 0},
		{0, 0},
	}
	for _, test := range tests {
		rec := newRecorder()
		Ellipse(rec, 250, 250, test.rx, test.ry, Blue)
		pts := relative(rec, 250, 250)

		rx, ry := abs(test.rx), abs(test.ry)
		for p := range pts {
			if !pts[image.Point{-p.X, p.Y}] || !pts[image.Point{p.X, -p.Y}] {
				t.Errorf("rx=%d ry=%d: %v has no mirror image", test.rx, test.ry, p)
			}
			if abs(p.X) > rx || abs(p.Y) > ry {
				t.Errorf("rx=%d ry=%d: %v outside the bounding box", test.rx, test.ry, p)
			}
		}
		for _, p := range []image.Point{{rx, 0}, {0, ry}} {
			if !pts[p] {
				t.Errorf("rx=%d ry=%d: extreme point %v missing", test.rx, test.ry, p)
			}
		}
	}
}

func TestEllipseCloseToCurve(t *testing.T) {
	const rx, ry = 60, 25
	rec := newRecorder()
	Ellipse(rec, 0, 0, rx, ry, Blue)
	for p := range rec.set() {
		// distance to the curve, measured along the ray from the center
		phi := math.Atan2(float64(p.Y)/ry, float64(p.X)/rx)
		cx, cy := rx*math.Cos(phi), ry*math.Sin(phi)
		if d := math.Hypot(float64(p.X)-cx, float64(p.Y)-cy); d > 1.5 {
			t.Errorf("pixel %v is %.2f away from the ellipse", p, d)
		}
	}
}

func TestSine(t *testing.T) {
	s := NewSurface(200, 100)
	Sine(s, 25, 0.05, Red)
	for x := range 200 {
		n := 0
		for y := range 100 {
			if s.Pixel(x, y).Equal(Red) {
				n++
				want := 50 + 25*math.Sin(float64(x)*0.05)
				if math.Abs(float64(y)-want) > 0.5 {
					t.Errorf("column %d: pixel at %d, want %.2f", x, y, want)
				}
			}
		}
		if n != 1 {
			t.Errorf("column %d: %d pixels", x, n)
		}
	}
}
