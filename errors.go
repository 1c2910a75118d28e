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

import "github.com/pkg/errors"

// ErrInvalidGeometry is returned when a shape has too few vertices for the
// requested operation, or when a mapping window has zero extent.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Minimum vertex counts for the polygon operations.
const (
	minOutlineVertices = 2
	minFillVertices    = 3
)

func checkVertices(n, need int, op string) error {
	if n >= need {
		return nil
	}
	Logger().Debug("rejected geometry", "op", op, "vertices", n, "need", need)
	return errors.Wrapf(ErrInvalidGeometry, "%s: %d vertices, need at least %d", op, n, need)
}
