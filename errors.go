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

import "errors"

var (
	// ErrUnsupportedAnnotationType is returned when an annotation without a
	// shape representation, for example a [Link], is converted to a shape.
	ErrUnsupportedAnnotationType = errors.New("unsupported annotation type")

	// ErrUnrecognizedShapeType is returned for shapes with a type tag other
	// than [Rectangle].
	ErrUnrecognizedShapeType = errors.New("unrecognized shape type")

	// ErrInvalidColorFormat is returned for malformed colour strings.
	ErrInvalidColorFormat = errors.New("invalid color format")
)
