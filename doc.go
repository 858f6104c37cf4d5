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

// Package shape implements rectangular shapes which mark regions of a
// rendered PDF page and link them to external documentation.
//
// There are two representations of the same region:
//
//   - An [Annotation] lives in PDF space.  This is either a [Square], which
//     carries a colour and [Relations], or a [Link], which carries a URI.
//   - A [Shape] lives in image space and is what an overlay UI works with.
//     Shapes store their corners and their edges explicitly.
//
// [FromAnnotation] and [Shape.ToAnnotation] convert between the two, given
// the height of the page.  The JSON wire format for shapes is implemented
// in the sub-package seehuhn.de/go/shape/wire, and the PDF annotation
// dictionaries in seehuhn.de/go/shape/pdfdict.
//
// All values in this package are immutable once constructed, and all
// functions are safe for concurrent use.
package shape
