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

package coord

import "seehuhn.de/go/geom/vec"

// Edge is one side of a polygon.
type Edge struct {
	Start, End vec.Vec2
}

// Indices of the edges of a rectangle.
const (
	TopEdge = iota
	RightEdge
	BottomEdge
	LeftEdge
)

// Edges returns the sides of the polygon with corners pts.
// Edge i connects pts[i] to pts[(i+1)%4].
func Edges(pts [4]vec.Vec2) [4]Edge {
	var res [4]Edge
	for i := range pts {
		res[i] = Edge{Start: pts[i], End: pts[(i+1)%len(pts)]}
	}
	return res
}

// EdgesFromPoints is like [Edges], but takes a slice.
// If pts does not have exactly four elements, an error wrapping
// [ErrInvalidGeometry] is returned.
func EdgesFromPoints(pts []vec.Vec2) ([4]Edge, error) {
	a, err := ToArray(pts)
	if err != nil {
		return [4]Edge{}, err
	}
	return Edges(a), nil
}
