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
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/coord"
)

var (
	// ErrUnsupportedSubtype is returned by [Extract] for annotations other
	// than square and link annotations.
	ErrUnsupportedSubtype = errors.New("unsupported annotation subtype")

	// ErrNoURI is returned by [Extract] for link annotations without a URI
	// action.
	ErrNoURI = errors.New("link annotation without URI")
)

// Keys of the custom entries used to store relations.
const (
	keyRelations  Name = "relations"
	keySchemaID   Name = "schemaId"
	keyDocumentID Name = "documentId"
)

// Extract converts an annotation dictionary to an annotation.
//
// Square annotations give a [*shape.Square], link annotations with a URI
// action give a [*shape.Link].  The /Rect entry is used without
// normalisation: the first two numbers give the bottom-left corner, the
// last two numbers give the top-right corner.
func Extract(dict Dict) (shape.Annotation, error) {
	subtype, err := GetName(dict["Subtype"])
	if err != nil {
		return nil, withKey(err, "Subtype")
	}

	switch subtype {
	case "Square":
		return extractSquare(dict)
	case "Link":
		return extractLink(dict)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSubtype, subtype)
	}
}

func extractSquare(dict Dict) (*shape.Square, error) {
	pts, err := extractCorners(dict)
	if err != nil {
		return nil, err
	}

	square := &shape.Square{Points: pts}

	if rel, err := extractRelations(dict[keyRelations]); err != nil {
		return nil, withKey(err, keyRelations)
	} else {
		square.Relations = rel
	}

	if c, err := extractColor(dict["C"]); err != nil {
		return nil, withKey(err, "C")
	} else if c != nil {
		square.ColorHex = shape.ColorHex(*c)
	}

	return square, nil
}

func extractLink(dict Dict) (*shape.Link, error) {
	pts, err := extractCorners(dict)
	if err != nil {
		return nil, err
	}

	action, err := GetDict(dict["A"])
	if err != nil {
		return nil, withKey(err, "A")
	}
	uri, err := GetString(action["URI"])
	if err != nil {
		return nil, withKey(err, "URI")
	}
	if uri == nil {
		return nil, ErrNoURI
	}

	return &shape.Link{Points: pts, URI: string(uri)}, nil
}

func extractCorners(dict Dict) ([4]vec.Vec2, error) {
	r, err := getFloats(dict["Rect"])
	if err != nil {
		return [4]vec.Vec2{}, withKey(err, "Rect")
	}
	if len(r) != 4 {
		return [4]vec.Vec2{}, &MalformedError{
			Key: "Rect",
			Err: fmt.Errorf("expected 4 numbers, got %d", len(r)),
		}
	}
	for _, x := range r {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return [4]vec.Vec2{}, &MalformedError{Key: "Rect", Err: coord.ErrInvalidGeometry}
		}
	}
	return coord.RectangleFromRect(rect.Rect{LLx: r[0], LLy: r[1], URx: r[2], URy: r[3]}), nil
}

// extractRelations reads the custom relations array.  Entries without an
// integer schema ID or without a document ID are skipped.
func extractRelations(obj Object) (*shape.Relations, error) {
	a, err := GetArray(obj)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	rel := &shape.Relations{}
	for _, elem := range a {
		doc, err := GetDict(elem)
		if err != nil {
			return nil, err
		}
		schemaID, err := GetInteger(doc[keySchemaID])
		if err != nil {
			continue
		}
		documentID, err := GetString(doc[keyDocumentID])
		if err != nil || documentID == nil {
			continue
		}
		rel.Documentation = append(rel.Documentation, shape.Documentation{
			SchemaID:   schemaID,
			DocumentID: documentID.AsTextString(),
		})
	}
	return rel, nil
}

// extractColor reads a colour array with 0, 1, 3 or 4 components.
// An empty array (transparent) and a missing entry both give nil.
func extractColor(obj Object) (*colorful.Color, error) {
	c, err := getFloats(obj)
	if err != nil {
		return nil, err
	}

	var res colorful.Color
	switch len(c) {
	case 0:
		return nil, nil
	case 1:
		res = colorful.Color{R: c[0], G: c[0], B: c[0]}
	case 3:
		res = colorful.Color{R: c[0], G: c[1], B: c[2]}
	case 4:
		k := 1 - c[3]
		res = colorful.Color{R: (1 - c[0]) * k, G: (1 - c[1]) * k, B: (1 - c[2]) * k}
	default:
		return nil, fmt.Errorf("invalid color array length: %d", len(c))
	}
	return &res, nil
}

func withKey(err error, key Name) error {
	var m *MalformedError
	if errors.As(err, &m) && m.Key == "" {
		return &MalformedError{Key: key, Err: m.Err}
	}
	return &MalformedError{Key: key, Err: err}
}
