// seehuhn.de/go/shape - rectangle shapes for PDF annotation overlays
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package coord converts points between PDF space and image space.
//
// PDF space has its origin at the bottom-left corner of a page, with y
// increasing upwards.  Image space has its origin at the top-left corner of
// the rendered page image, with y increasing downwards.  Both spaces use the
// same unit, so a conversion only needs the page height.
//
// Rectangles are represented by their four corners in the fixed order
// [TopLeft], [TopRight], [BottomRight], [BottomLeft].
package coord

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Indices of the corners of a rectangle.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// ErrInvalidGeometry indicates a polygon with the wrong number of corners or
// with coordinates which are not finite.
var ErrInvalidGeometry = errors.New("invalid geometry")

// FlipY converts a point between PDF space and image space.
// The conversion is its own inverse.
func FlipY(p vec.Vec2, pageHeight float64) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: pageHeight - p.Y}
}

// FlipAll applies [FlipY] to all four corners of a rectangle.
func FlipAll(pts [4]vec.Vec2, pageHeight float64) [4]vec.Vec2 {
	var res [4]vec.Vec2
	for i, p := range pts {
		res[i] = FlipY(p, pageHeight)
	}
	return res
}

// RectangleFromDiagonal computes the four corners of a rectangle from two
// diagonal corners.
//
// The input is not checked: if topRight is not above and to the right of
// bottomLeft, the resulting corners describe an inverted rectangle.
func RectangleFromDiagonal(bottomLeft, topRight vec.Vec2) [4]vec.Vec2 {
	return [4]vec.Vec2{
		TopLeft:     {X: bottomLeft.X, Y: topRight.Y},
		TopRight:    topRight,
		BottomRight: {X: topRight.X, Y: bottomLeft.Y},
		BottomLeft:  bottomLeft,
	}
}

// RectangleFromRect is like [RectangleFromDiagonal], but takes the corners
// from a PDF rectangle.  The rectangle is used as given, without normalising
// the corner coordinates.
func RectangleFromRect(r rect.Rect) [4]vec.Vec2 {
	return RectangleFromDiagonal(
		vec.Vec2{X: r.LLx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.URy})
}

// Diagonal returns the PDF rectangle spanned by the bottom-left and the
// top-right corner of pts.  The remaining two corners are ignored.
func Diagonal(pts [4]vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: pts[BottomLeft].X,
		LLy: pts[BottomLeft].Y,
		URx: pts[TopRight].X,
		URy: pts[TopRight].Y,
	}
}

// IsFinite reports whether all coordinates of all points are finite.
func IsFinite(pts ...vec.Vec2) bool {
	for _, p := range pts {
		if math.IsInf(p.X, 0) || math.IsNaN(p.X) || math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
			return false
		}
	}
	return true
}

// ToArray checks that pts has exactly four elements and copies them
// into an array.
func ToArray(pts []vec.Vec2) ([4]vec.Vec2, error) {
	var res [4]vec.Vec2
	if len(pts) != len(res) {
		return res, fmt.Errorf("%w: expected 4 points, got %d", ErrInvalidGeometry, len(pts))
	}
	copy(res[:], pts)
	return res, nil
}
