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
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// WindowToViewport returns the affine transformation which maps the window
// rectangle linearly onto the viewport rectangle: the corner (LLx, LLy) of
// window goes to (LLx, LLy) of viewport, and (URx, URy) to (URx, URy).
//
// The x and y directions are scaled independently.  A window with zero
// width or height is rejected with [ErrInvalidGeometry].
func WindowToViewport(window, viewport rect.Rect) (matrix.Matrix, error) {
	ww := window.URx - window.LLx
	wh := window.URy - window.LLy
	if ww == 0 || wh == 0 {
		Logger().Debug("degenerate window", "window", window)
		return matrix.Matrix{}, errors.Wrapf(ErrInvalidGeometry,
			"window %gx%g has zero extent", ww, wh)
	}

	a := (viewport.URx - viewport.LLx) / ww
	b := (viewport.URy - viewport.LLy) / wh

	m := Translate(Identity(), -window.LLx, -window.LLy)
	m = Scale(m, a, b)
	return Translate(m, viewport.LLx, viewport.LLy), nil
}

// MapWindow maps s from the window rectangle into the viewport rectangle,
// see [WindowToViewport].  The result has the same kind as s.
func MapWindow(s Shape, window, viewport rect.Rect) (Shape, error) {
	m, err := WindowToViewport(window, viewport)
	if err != nil {
		return nil, err
	}
	return Transform(s, m), nil
}
