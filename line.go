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
	"math"

	"github.com/pkg/errors"
)

// LineAlgorithm selects one of the line rasterizers.
type LineAlgorithm int

// These are the supported line rasterizers.
const (
	// Bresenham is the integer midpoint algorithm.  It is the only
	// variant which is pixel-exact and symmetric in its endpoints.
	Bresenham LineAlgorithm = iota

	// Slope steps along the dominant axis and evaluates the line
	// equation for the other coordinate.
	Slope

	// DDA accumulates fixed floating point increments per step.
	DDA

	// DDAAntialiased is DDA which splits each step between the two
	// pixels straddling the line along the minor axis.
	DDAAntialiased
)

var lineAlgorithmNames = map[LineAlgorithm]string{
	Bresenham:      "bresenham",
	Slope:          "slope",
	DDA:            "dda",
	DDAAntialiased: "dda-aa",
}

func (a LineAlgorithm) String() string {
	if name, ok := lineAlgorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("LineAlgorithm(%d)", int(a))
}

// ParseLineAlgorithm converts the name returned by
// [LineAlgorithm.String] back into a LineAlgorithm.
func ParseLineAlgorithm(name string) (LineAlgorithm, error) {
	for a, n := range lineAlgorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown line algorithm %q", name)
}

// Line draws the segment from (xi, yi) to (xf, yf) using the given
// algorithm.  Both endpoints are drawn.  Values of alg which are not one of
// the constants above select [Bresenham].
func Line(dst Plotter, alg LineAlgorithm, xi, yi, xf, yf int, c Color) {
	switch alg {
	case Bresenham:
		LineBresenham(dst, xi, yi, xf, yf, c)
	case Slope:
		LineSlope(dst, xi, yi, xf, yf, c)
	case DDA:
		LineDDA(dst, xi, yi, xf, yf, c)
	case DDAAntialiased:
		LineDDAAntialiased(dst, xi, yi, xf, yf, c)
	default:
		// unknown values fall back to the exact algorithm
		LineBresenham(dst, xi, yi, xf, yf, c)
	}
}

// LineSlope draws a segment by stepping one pixel at a time along the
// dominant axis and computing the other coordinate from the slope.
func LineSlope(dst Plotter, xi, yi, xf, yf int, c Color) {
	dx := xf - xi
	dy := yf - yi
	if dx == 0 && dy == 0 {
		dst.SetPixel(xi, yi, c)
		return
	}

	// For steep lines the loop runs in a frame with x and y exchanged.
	steep := abs(dy) > abs(dx)
	if steep {
		dx, dy = dy, dx
		xi, yi = yi, xi
	}

	slope := float64(dy) / float64(dx)
	step := 1
	if dx < 0 {
		step = -1
	}
	for v := 0; v != dx+step; v += step {
		major := float64(xi + v)
		minor := float64(yi) + slope*float64(v)
		if steep {
			plot(dst, minor, major, c)
		} else {
			plot(dst, major, minor, c)
		}
	}
}

// LineDDA draws a segment with the digital differential analyzer.
func LineDDA(dst Plotter, xi, yi, xf, yf int, c Color) {
	dx := xf - xi
	dy := yf - yi
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		dst.SetPixel(xi, yi, c)
		return
	}

	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)
	for i := 0; i <= steps; i++ {
		plot(dst, float64(xi)+float64(i)*incX, float64(yi)+float64(i)*incY, c)
	}
}

// LineDDAAntialiased draws a segment with the digital differential
// analyzer, distributing the intensity of every step over the two pixels
// which straddle the exact position along the minor axis.
//
// The intensity is passed on as the alpha channel of c, so the target
// must blend (a [Surface] does).
func LineDDAAntialiased(dst Plotter, xi, yi, xf, yf int, c Color) {
	dx := xf - xi
	dy := yf - yi
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		dst.SetPixel(xi, yi, c)
		return
	}

	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)
	xMajor := math.Abs(math.Round(incX)) == 1

	for i := 0; i <= steps; i++ {
		x := float64(xi) + float64(i)*incX
		y := float64(yi) + float64(i)*incY

		if xMajor {
			base := math.Floor(y)
			near, far := splitIntensity(y - base)
			px := int(math.Round(x))
			setAlpha(dst, px, int(base), c, near)
			setAlpha(dst, px, int(base)+1, c, far)
		} else {
			base := math.Floor(x)
			near, far := splitIntensity(x - base)
			py := int(math.Round(y))
			setAlpha(dst, int(base), py, c, near)
			setAlpha(dst, int(base)+1, py, c, far)
		}
	}
}

// splitIntensity returns the alpha values for the pixel below and above a
// fractional position.
func splitIntensity(frac float64) (near, far uint8) {
	near = uint8(math.Ceil((1 - frac) * 255))
	far = uint8(math.Ceil(frac * 255))
	return near, far
}

func setAlpha(dst Plotter, x, y int, c Color, alpha uint8) {
	if alpha == 0 {
		return
	}
	dst.SetPixel(x, y, c.WithAlpha(alpha))
}

// LineBresenham draws a segment with Bresenham's integer algorithm.
//
// The endpoints are put into a canonical order first, so that swapping
// them yields exactly the same set of pixels.  No pixel is emitted twice.
func LineBresenham(dst Plotter, xi, yi, xf, yf int, c Color) {
	if xf < xi || xf == xi && yf < yi {
		xi, yi, xf, yf = xf, yf, xi, yi
	}

	dx := xf - xi
	dy := yf - yi
	xSign := 1
	if dx < 0 {
		xSign = -1
	}
	ySign := 1
	if dy < 0 {
		ySign = -1
	}
	dx = abs(dx)
	dy = abs(dy)

	// (xx, xy) is the pixel step along the major axis, (yx, yy) the
	// step along the minor axis.
	var xx, xy, yx, yy int
	if dx > dy {
		xx, yy = xSign, ySign
	} else {
		dx, dy = dy, dx
		xy, yx = ySign, xSign
	}

	p := 2*dy - dx
	y := 0
	for x := 0; x <= dx; x++ {
		dst.SetPixel(xi+x*xx+y*yx, yi+x*xy+y*yy, c)
		if p >= 0 {
			y++
			p -= 2 * dx
		}
		p += 2 * dy
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
