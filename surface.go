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
	"image/color"
	"image/png"
	"io"
	"math"
)

// Plotter is the write side of a pixel grid.  All rasterizers in this
// package emit their output through this interface.
type Plotter interface {
	// SetPixel writes c at (x, y).
	SetPixel(x, y int, c Color)

	// Bounds returns the addressable area.  Scan conversion clips to it.
	Bounds() image.Rectangle
}

// Canvas is a Plotter which can also read back pixels.  The region
// fillers need this.
type Canvas interface {
	Plotter

	// Pixel returns the color stored at (x, y), which must lie inside
	// Bounds.
	Pixel(x, y int) Color
}

// Surface is a fixed-size grid of RGBA pixels with (0, 0) at the top left.
//
// Writes through SetPixel clamp the coordinates into the grid instead of
// failing.  A Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	pix    []uint8 // non-premultiplied RGBA, 4 bytes per pixel
}

var (
	_ Canvas      = (*Surface)(nil)
	_ image.Image = (*Surface)(nil)
)

// NewSurface allocates a width×height surface, cleared to opaque black.
// It panics if either dimension is not positive.
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		panic("pixels: non-positive surface size")
	}
	s := &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	s.Clear(Black)
	return s
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.height }

// Bounds implements the [image.Image] interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// SetPixel writes c at (x, y) after clamping x into [0, width-1] and y into
// [0, height-1].  If c is not opaque it is blended onto the stored pixel
// with [Color.Over].
func (s *Surface) SetPixel(x, y int, c Color) {
	x = min(max(x, 0), s.width-1)
	y = min(max(y, 0), s.height-1)
	i := (y*s.width + x) * 4
	if c.A != 255 {
		c = c.Over(s.load(i))
	}
	s.store(i, c)
}

// Pixel returns the color at (x, y).  The caller must pass in-bounds
// coordinates.
func (s *Surface) Pixel(x, y int) Color {
	return s.load((y*s.width + x) * 4)
}

// Clear overwrites every pixel with c, without blending.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.pix); i += 4 {
		s.store(i, c)
	}
}

func (s *Surface) load(i int) Color {
	p := s.pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (s *Surface) store(i int, c Color) {
	p := s.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Pix returns the underlying pixel buffer: non-premultiplied RGBA, four
// bytes per pixel, rows stored top to bottom without padding.  The slice
// aliases the surface.
func (s *Surface) Pix() []uint8 {
	return s.pix
}

// At implements the [image.Image] interface.
func (s *Surface) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(s.Bounds()) {
		return Color{}
	}
	return s.Pixel(x, y)
}

// Set implements the [image/draw.Image] interface.  Unlike SetPixel, it
// follows the image package conventions: out-of-range writes are ignored
// and the color replaces the stored value.
func (s *Surface) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(s.Bounds()) {
		return
	}
	s.store((y*s.width+x)*4, toColor(c))
}

// ColorModel implements the [image.Image] interface.
func (s *Surface) ColorModel() color.Model {
	return ColorModel
}

// ColorModel converts arbitrary colors to [Color].
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return toColor(c)
})

func toColor(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Image returns a copy of the surface as an [image.NRGBA].
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	copy(img.Pix, s.pix)
	return img
}

// WritePNG encodes the surface as a PNG image.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// plot writes c at the pixel nearest to (x, y).  Halfway cases round away
// from zero.
func plot(dst Plotter, x, y float64, c Color) {
	dst.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
}
