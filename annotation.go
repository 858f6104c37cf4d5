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

// AnnotationType identifies the kind of an annotation.
type AnnotationType string

// These are the supported annotation types.
const (
	AnnotationSquare AnnotationType = "SQUARE"
	AnnotationLink   AnnotationType = "LINK"
)

// Annotation is a marked region of a page, in PDF space.
//
// The only implementations are [*Square] and [*Link].
type Annotation interface {
	// AnnotationType returns the kind of annotation.
	AnnotationType() AnnotationType

	// Corners returns the corners of the annotation rectangle, in the
	// order top-left, top-right, bottom-right, bottom-left.
	Corners() [4]vec.Vec2

	isAnnotation()
}

var (
	_ Annotation = (*Square)(nil)
	_ Annotation = (*Link)(nil)
)

// Square is a rectangle annotation which links a region of the page to
// external documentation.
type Square struct {
	// Points are the corners of the rectangle in PDF space, in the order
	// top-left, top-right, bottom-right, bottom-left.
	Points [4]vec.Vec2

	// Relations (optional) lists the linked documentation records.
	Relations *Relations

	// ColorHex (optional) is the border colour in the form "#AARRGGBB".
	// If this is empty, the default colour of the PDF writer is used.
	ColorHex string
}

// NewSquare creates a square annotation from two diagonal corners.
// The corners are not checked, see [coord.RectangleFromDiagonal].
func NewSquare(bottomLeft, topRight vec.Vec2, rel *Relations, colorHex string) *Square {
	return &Square{
		Points:    coord.RectangleFromDiagonal(bottomLeft, topRight),
		Relations: rel,
		ColorHex:  colorHex,
	}
}

// AnnotationType returns [AnnotationSquare].
// This implements the [Annotation] interface.
func (s *Square) AnnotationType() AnnotationType {
	return AnnotationSquare
}

// Corners implements the [Annotation] interface.
func (s *Square) Corners() [4]vec.Vec2 {
	return s.Points
}

func (s *Square) isAnnotation() {}

// Link is a hypertext link annotation.
type Link struct {
	// Points are the corners of the link area in PDF space, in the order
	// top-left, top-right, bottom-right, bottom-left.
	Points [4]vec.Vec2

	// URI is the target of the link.
	URI string
}

// NewLink creates a link annotation from two diagonal corners.
func NewLink(bottomLeft, topRight vec.Vec2, uri string) *Link {
	return &Link{
		Points: coord.RectangleFromDiagonal(bottomLeft, topRight),
		URI:    uri,
	}
}

// AnnotationType returns [AnnotationLink].
// This implements the [Annotation] interface.
func (l *Link) AnnotationType() AnnotationType {
	return AnnotationLink
}

// Corners implements the [Annotation] interface.
func (l *Link) Corners() [4]vec.Vec2 {
	return l.Points
}

func (l *Link) isAnnotation() {}
