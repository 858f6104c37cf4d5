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

package shape

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape/coord"
)

// Contains reports whether p lies inside the annotation.  Both p and the
// annotation must be given in PDF space.
//
// The x coordinate is checked against both the bottom and the top edge, and
// the y coordinate against both the left and the right edge.  Points on the
// boundary count as inside.  For a skewed quadrilateral this accepts a
// slightly larger region than the quadrilateral itself.
func Contains(a Annotation, p vec.Vec2) bool {
	c := a.Corners()
	tl, tr := c[coord.TopLeft], c[coord.TopRight]
	br, bl := c[coord.BottomRight], c[coord.BottomLeft]

	return p.X >= bl.X && p.X <= br.X &&
		p.X >= tl.X && p.X <= tr.X &&
		p.Y >= bl.Y && p.Y <= tl.Y &&
		p.Y >= br.Y && p.Y <= tr.Y
}

// Find returns the first annotation in annots which contains p.
func Find(annots []Annotation, p vec.Vec2) (Annotation, bool) {
	for _, a := range annots {
		if Contains(a, p) {
			return a, true
		}
	}
	return nil, false
}
