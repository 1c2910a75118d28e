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

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Texture is an immutable grid of opaque texels used by textured polygon
// fills.
type Texture struct {
	width  int
	height int
	texels []Color
}

// NewTexture creates a width×height texture from texels, which are stored
// row by row.  The slice is copied and alpha is forced to opaque.
func NewTexture(width, height int, texels []Color) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid texture size %dx%d", width, height)
	}
	if len(texels) != width*height {
		return nil, errors.Errorf("texture %dx%d needs %d texels, got %d",
			width, height, width*height, len(texels))
	}
	t := &Texture{
		width:  width,
		height: height,
		texels: make([]Color, len(texels)),
	}
	for i, c := range texels {
		t.texels[i] = c.WithAlpha(255)
	}
	return t, nil
}

// TextureFromImage converts img into a texture.  If width and height are
// positive, the image is rescaled to that size using nearest-neighbour
// sampling; otherwise the size of img is kept.
func TextureFromImage(img image.Image, width, height int) (*Texture, error) {
	src := img.Bounds()
	if src.Empty() {
		return nil, errors.New("empty texture image")
	}
	if width <= 0 || height <= 0 {
		width, height = src.Dx(), src.Dy()
	}

	buf := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == src.Dx() && height == src.Dy() {
		draw.Draw(buf, buf.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(buf, buf.Bounds(), img, src, draw.Src, nil)
	}

	t := &Texture{
		width:  width,
		height: height,
		texels: make([]Color, width*height),
	}
	for i := range t.texels {
		p := buf.Pix[4*i : 4*i+4 : 4*i+4]
		t.texels[i] = Color{R: p[0], G: p[1], B: p[2], A: 255}
	}
	return t, nil
}

// Size returns the number of texels in each direction.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Texel returns the texel at integer position (x, y).  The coordinates are
// clamped to the texture.
func (t *Texture) Texel(x, y int) Color {
	x = min(max(x, 0), t.width-1)
	y = min(max(y, 0), t.height-1)
	return t.texels[y*t.width+x]
}

// Sample returns the texel nearest to the normalized coordinates (u, v).
// Coordinates outside [0, 1] are clamped first, so sampling never leaves
// the texture.
func (t *Texture) Sample(u, v float64) Color {
	u = clamp01(u)
	v = clamp01(v)
	x := int(math.Round(u * float64(t.width-1)))
	y := int(math.Round(v * float64(t.height-1)))
	return t.texels[y*t.width+x]
}

// clamp01 clamps x to [0, 1].  NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return min(x, 1)
}
