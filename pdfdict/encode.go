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

package pdfdict

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/coord"
)

// EncodeOptions control the dictionaries generated by [EncodeSquare].
// A nil *EncodeOptions is the same as the zero value.
type EncodeOptions struct {
	// DefaultColor is the border colour for squares without an explicit
	// colour.  If this is nil, red is used.
	DefaultColor color.Color

	// NamePrefix is prepended to the random annotation name stored in the
	// /NM entry.  If this is empty, [DefaultNamePrefix] is used.
	NamePrefix string
}

// DefaultNamePrefix is the /NM prefix used when [EncodeOptions.NamePrefix]
// is empty.
const DefaultNamePrefix = "shape-"

// EncodeSquare converts a square annotation to a PDF annotation dictionary.
//
// The annotation rectangle is spanned by the bottom-left and the top-right
// corner of the square.  Each call assigns a new, unique /NM entry, which
// the PDF writer can use to refer to the annotation, for example as the name
// of an optional content group.
func EncodeSquare(sq *shape.Square, opt *EncodeOptions) (Dict, error) {
	if opt == nil {
		opt = &EncodeOptions{}
	}
	if !coord.IsFinite(sq.Points[:]...) {
		return nil, fmt.Errorf("%w: non-finite coordinates", coord.ErrInvalidGeometry)
	}

	var c colorful.Color
	if sq.ColorHex != "" {
		var err error
		c, err = shape.ParseColorHex(sq.ColorHex)
		if err != nil {
			return nil, err
		}
	} else {
		var def color.Color = colornames.Red
		if opt.DefaultColor != nil {
			def = opt.DefaultColor
		}
		var ok bool
		c, ok = colorful.MakeColor(def)
		if !ok {
			return nil, errors.New("default color is fully transparent")
		}
	}

	prefix := opt.NamePrefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}

	dict := Dict{
		"Type":    Name("Annot"),
		"Subtype": Name("Square"),
		"Rect":    encodeRect(sq.Points),
		"C":       encodeColor(c),
		"NM":      TextString(prefix + uuid.NewString()),
	}
	if sq.Relations != nil {
		dict[keyRelations] = encodeRelations(sq.Relations)
	}
	return dict, nil
}

// EncodeLink converts a link annotation to a PDF annotation dictionary
// with a URI action.  The link is drawn without a border.
func EncodeLink(l *shape.Link) (Dict, error) {
	if !coord.IsFinite(l.Points[:]...) {
		return nil, fmt.Errorf("%w: non-finite coordinates", coord.ErrInvalidGeometry)
	}
	if l.URI == "" {
		return nil, ErrNoURI
	}

	dict := Dict{
		"Type":    Name("Annot"),
		"Subtype": Name("Link"),
		"Rect":    encodeRect(l.Points),
		"Border":  Array{Integer(0), Integer(0), Integer(0)},
		"A": Dict{
			"S":   Name("URI"),
			"URI": String(l.URI),
		},
	}
	return dict, nil
}

func encodeRect(pts [4]vec.Vec2) Array {
	r := coord.Diagonal(pts)
	return Array{Number(r.LLx), Number(r.LLy), Number(r.URx), Number(r.URy)}
}

func encodeColor(c colorful.Color) Array {
	c = c.Clamped()
	return Array{
		Number(Round(c.R, 4)),
		Number(Round(c.G, 4)),
		Number(Round(c.B, 4)),
	}
}

func encodeRelations(rel *shape.Relations) Array {
	res := make(Array, len(rel.Documentation))
	for i, doc := range rel.Documentation {
		res[i] = Dict{
			"Type":        Name("documentation"),
			keySchemaID:   Integer(doc.SchemaID),
			keyDocumentID: TextString(doc.DocumentID),
		}
	}
	return res
}
