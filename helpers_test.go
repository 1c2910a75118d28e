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
	"maps"
	"slices"
)

// recorder is a Plotter which remembers every pixel written to it.
type recorder struct {
	bounds image.Rectangle
	pts    []image.Point
	colors []Color
}

func newRecorder() *recorder {
	return &recorder{bounds: image.Rect(-1000, -1000, 1000, 1000)}
}

func (r *recorder) SetPixel(x, y int, c Color) {
	r.pts = append(r.pts, image.Point{x, y})
	r.colors = append(r.colors, c)
}

func (r *recorder) Bounds() image.Rectangle {
	return r.bounds
}

// set returns the distinct points written.
func (r *recorder) set() map[image.Point]bool {
	res := make(map[image.Point]bool, len(r.pts))
	for _, p := range r.pts {
		res[p] = true
	}
	return res
}

// sortedPoints returns the keys of s in a deterministic order, for use in
// error messages.
func sortedPoints(s map[image.Point]bool) []image.Point {
	return slices.SortedFunc(maps.Keys(s), func(a, b image.Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
}

// countColor returns the number of pixels of s which equal c.
func countColor(s *Surface, c Color) int {
	n := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Pixel(x, y).Equal(c) {
				n++
			}
		}
	}
	return n
}
