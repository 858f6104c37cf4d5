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
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape/coord"
)

// Type is the type tag of a shape.
type Type string

// Rectangle is the type tag of rectangular shapes.
// This is the only shape type currently implemented.
const Rectangle Type = "RECTANGLE"

// Shape is a polygon in image space, as used by an overlay UI.
//
// Edges normally are the sides of the polygon, as computed by [coord.Edges].
// Shapes decoded from the wire format keep the edges which were transmitted,
// and these are not checked against Points.
type Shape struct {
	Type Type

	// Points are the corners, in the order top-left, top-right,
	// bottom-right, bottom-left.
	Points [4]vec.Vec2

	// Edges are the sides, in the order top, right, bottom, left.
	Edges [4]coord.Edge

	// Relations (optional) lists the linked documentation records.
	Relations *Relations

	// ColorHex (optional) is the colour in the form "#AARRGGBB".
	ColorHex string
}

// NewRectangle creates a rectangular shape from its four corners.
// The edges are computed from the corners.
func NewRectangle(points []vec.Vec2, rel *Relations, colorHex string) (*Shape, error) {
	pts, err := coord.ToArray(points)
	if err != nil {
		return nil, err
	}
	if !coord.IsFinite(pts[:]...) {
		return nil, fmt.Errorf("%w: non-finite coordinates", coord.ErrInvalidGeometry)
	}
	return &Shape{
		Type:      Rectangle,
		Points:    pts,
		Edges:     coord.Edges(pts),
		Relations: rel,
		ColorHex:  colorHex,
	}, nil
}

// FromAnnotation converts an annotation to image space.
// Only [*Square] annotations can be converted; for other annotation types an
// error wrapping [ErrUnsupportedAnnotationType] is returned.
func FromAnnotation(a Annotation, pageHeight float64) (*Shape, error) {
	switch a := a.(type) {
	case *Square:
		pts := coord.FlipAll(a.Points, pageHeight)
		return &Shape{
			Type:      Rectangle,
			Points:    pts,
			Edges:     coord.Edges(pts),
			Relations: a.Relations,
			ColorHex:  a.ColorHex,
		}, nil
	case *Link:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAnnotationType, a.AnnotationType())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedAnnotationType, a)
	}
}

// ToAnnotation converts the shape back to PDF space.
// The edges of the shape are discarded.
func (s *Shape) ToAnnotation(pageHeight float64) (*Square, error) {
	if s.Type != Rectangle {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedShapeType, s.Type)
	}
	return &Square{
		Points:    coord.FlipAll(s.Points, pageHeight),
		Relations: s.Relations,
		ColorHex:  s.ColorHex,
	}, nil
}
