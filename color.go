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

import "math"

// Color is an 8-bit RGBA color.
//
// Comparisons only look at the R, G and B channels.  The alpha channel is
// carried along for blending when a color is written to a [Surface].
type Color struct {
	R, G, B, A uint8
}

// Some frequently used opaque colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
	Red   = Color{255, 0, 0, 255}
	Green = Color{0, 255, 0, 255}
	Blue  = Color{0, 0, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Equal reports whether c and other have the same red, green and blue
// components.  Alpha is ignored.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
// All four channels are interpolated; t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = min(max(t, 0), 1)
	return Color{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(v))
}

// Over composites c onto dst using the source-over rule with c's alpha as
// coverage.  The result is opaque whenever dst is.
func (c Color) Over(dst Color) Color {
	switch c.A {
	case 255:
		return c
	case 0:
		return dst
	}
	a := uint32(c.A)
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return Color{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: uint8(a + (uint32(dst.A)*(255-a)+127)/255),
	}
}

// RGBA implements the image/color.Color interface.  The returned values
// are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 255
	g = uint32(c.G) * a / 255
	b = uint32(c.B) * a / 255
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}
