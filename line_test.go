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
	"image"
	"math"
	"slices"
	"testing"
)

// segments returns a grid of test segments covering all octants, plus
// some degenerate and near-degenerate cases.
func segments() [][4]int {
	res := [][4]int{
		{0, 0, 0, 0},
		{5, 5, 5, 5},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 1},
		{0, 0, 2, 1},
		{0, 0, 100, 1},
		{0, 0, 1, 100},
		{-7, 3, 40, -25},
	}
	for _, dx := range []int{-13, -8, -5, -1, 0, 1, 3, 8, 13} {
		for _, dy := range []int{-13, -6, -1, 0, 1, 4, 7, 13} {
			res = append(res, [4]int{3, -2, 3 + dx, -2 + dy})
		}
	}
	return res
}

func TestBresenhamNoDuplicates(t *testing.T) {
	for _, s := range segments() {
		rec := newRecorder()
		LineBresenham(rec, s[0], s[1], s[2], s[3], White)

		seen := map[image.Point]bool{}
		for _, p := range rec.pts {
			if seen[p] {
				t.Errorf("%v: pixel %v drawn twice", s, p)
			}
			seen[p] = true
		}

		want := max(abs(s[2]-s[0]), abs(s[3]-s[1])) + 1
		if len(rec.pts) != want {
			t.Errorf("%v: %d pixels, want %d", s, len(rec.pts), want)
		}
	}
}

func TestBresenhamSymmetric(t *testing.T) {
	for _, s := range segments() {
		fwd := newRecorder()
		LineBresenham(fwd, s[0], s[1], s[2], s[3], White)
		rev := newRecorder()
		LineBresenham(rev, s[2], s[3], s[0], s[1], White)

		a, b := fwd.set(), rev.set()
		if len(a) != len(b) {
			t.Errorf("%v: %d pixels forward, %d reversed", s, len(a), len(b))
			continue
		}
		for p := range a {
			if !b[p] {
				t.Errorf("%v: reversed line misses %v (reversed: %v)", s, p, sortedPoints(b))
				break
			}
		}
	}
}

func TestBresenhamCloseToIdealLine(t *testing.T) {
	for _, s := range segments() {
		x0, y0, x1, y1 := s[0], s[1], s[2], s[3]
		dx, dy := x1-x0, y1-y0
		if dx == 0 && dy == 0 {
			continue
		}

		rec := newRecorder()
		LineBresenham(rec, x0, y0, x1, y1, White)
		for _, p := range rec.pts {
			var dev float64
			if abs(dx) > abs(dy) {
				ideal := float64(y0) + float64(p.X-x0)*float64(dy)/float64(dx)
				dev = math.Abs(float64(p.Y) - ideal)
			} else {
				ideal := float64(x0) + float64(p.Y-y0)*float64(dx)/float64(dy)
				dev = math.Abs(float64(p.X) - ideal)
			}
			if dev > 0.5+1e-9 {
				t.Errorf("%v: pixel %v is %.3f away from the line", s, p, dev)
			}
		}
	}
}

func TestBresenhamDiagonalIsExact(t *testing.T) {
	rec := newRecorder()
	LineBresenham(rec, 10, 10, 0, 0, White)
	for _, p := range rec.pts {
		if p.X != p.Y {
			t.Errorf("pixel %v off the diagonal", p)
		}
	}
}

func TestLinesDrawEndpoints(t *testing.T) {
	algs := []LineAlgorithm{Bresenham, Slope, DDA}
	for _, alg := range algs {
		for _, s := range segments() {
			rec := newRecorder()
			Line(rec, alg, s[0], s[1], s[2], s[3], White)
			set := rec.set()
			for _, p := range []image.Point{{s[0], s[1]}, {s[2], s[3]}} {
				if !set[p] {
					t.Errorf("%s %v: endpoint %v missing", alg, s, p)
				}
			}
		}
	}
}

// TestLinesConnected checks that consecutive pixels of the non-antialiased
// rasterizers are 8-neighbours, so that lines have no gaps.
func TestLinesConnected(t *testing.T) {
	algs := []LineAlgorithm{Bresenham, Slope, DDA}
	for _, alg := range algs {
		for _, s := range segments() {
			rec := newRecorder()
			Line(rec, alg, s[0], s[1], s[2], s[3], White)
			for i := 1; i < len(rec.pts); i++ {
				a, b := rec.pts[i-1], rec.pts[i]
				if abs(a.X-b.X) > 1 || abs(a.Y-b.Y) > 1 {
					t.Errorf("%s %v: gap between %v and %v", alg, s, a, b)
					break
				}
			}
		}
	}
}

func TestLineDegenerate(t *testing.T) {
	for _, alg := range []LineAlgorithm{Bresenham, Slope, DDA, DDAAntialiased} {
		t.Run(alg.String(), func(t *testing.T) {
			rec := newRecorder()
			Line(rec, alg, 7, -4, 7, -4, Red)
			if len(rec.pts) != 1 || rec.pts[0] != (image.Point{7, -4}) {
				t.Errorf("got %v", rec.pts)
			}
			if rec.colors[0] != Red {
				t.Errorf("color %v", rec.colors[0])
			}
		})
	}
}

func TestLineDDAAntialiased(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		rec := newRecorder()
		LineDDAAntialiased(rec, 0, 3, 10, 3, White)
		if len(rec.pts) != 11 {
			t.Fatalf("%d writes, want 11", len(rec.pts))
		}
		for i, p := range rec.pts {
			if p.Y != 3 || rec.colors[i].A != 255 {
				t.Errorf("write %d: %v with alpha %d", i, p, rec.colors[i].A)
			}
		}
	})

	t.Run("shallow", func(t *testing.T) {
		rec := newRecorder()
		LineDDAAntialiased(rec, 0, 0, 10, 5, White)

		// every column receives between 255 and 256 units of intensity
		total := map[int]int{}
		for i, p := range rec.pts {
			total[p.X] += int(rec.colors[i].A)
		}
		for x := 0; x <= 10; x++ {
			if total[x] < 255 || total[x] > 256 {
				t.Errorf("column %d: total alpha %d", x, total[x])
			}
		}
	})

	t.Run("steep", func(t *testing.T) {
		rec := newRecorder()
		LineDDAAntialiased(rec, 0, 0, 3, 9, White)
		rows := map[int]bool{}
		for _, p := range rec.pts {
			rows[p.Y] = true
			if p.X < 0 || p.X > 4 {
				t.Errorf("pixel %v too far from the line", p)
			}
		}
		if len(rows) != 10 {
			t.Errorf("%d rows touched, want 10", len(rows))
		}
	})

	t.Run("surface", func(t *testing.T) {
		s := NewSurface(20, 20)
		LineDDAAntialiased(s, 0, 0, 19, 7, White)
		if got := s.Pixel(0, 0); got != White {
			t.Errorf("start pixel %v", got)
		}
		if got := s.Pixel(19, 7); got != White {
			t.Errorf("end pixel %v", got)
		}
	})
}

func TestLineSlopeSteep(t *testing.T) {
	rec := newRecorder()
	LineSlope(rec, 2, 0, 4, 8, White)
	if len(rec.pts) != 9 {
		t.Fatalf("%d pixels, want 9", len(rec.pts))
	}
	for i, p := range rec.pts {
		if p.Y != i {
			t.Errorf("pixel %d at row %d", i, p.Y)
		}
		ideal := 2 + float64(i)/4
		if math.Abs(float64(p.X)-ideal) > 0.5 {
			t.Errorf("pixel %v is off the line", p)
		}
	}
}

func TestParseLineAlgorithm(t *testing.T) {
	for _, alg := range []LineAlgorithm{Bresenham, Slope, DDA, DDAAntialiased} {
		got, err := ParseLineAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseLineAlgorithm(%q) = %v, %v", alg, got, err)
		}
	}
	if _, err := ParseLineAlgorithm("wu"); err == nil {
		t.Error("unknown algorithm accepted")
	}
	if s := LineAlgorithm(42).String(); s != fmt.Sprintf("LineAlgorithm(%d)", 42) {
		t.Errorf("String() = %q", s)
	}
}

func TestLineDispatch(t *testing.T) {
	for _, seg := range segments() {
		want := newRecorder()
		LineBresenham(want, seg[0], seg[1], seg[2], seg[3], White)

		for _, alg := range []LineAlgorithm{Bresenham, LineAlgorithm(7), LineAlgorithm(-1)} {
			got := newRecorder()
			Line(got, alg, seg[0], seg[1], seg[2], seg[3], White)
			if !slices.Equal(got.pts, want.pts) {
				t.Errorf("%v %v: got %v, want %v", alg, seg, got.pts, want.pts)
			}
		}
	}
}
