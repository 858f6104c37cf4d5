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

package wire

import (
	"encoding/json"
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/coord"
)

// Encode converts a list of shapes to a JSON array.
//
// Shapes with non-finite coordinates give an error wrapping
// [coord.ErrInvalidGeometry], shapes with a type other than
// [shape.Rectangle] give an error wrapping [shape.ErrUnrecognizedShapeType].
func Encode(shapes []*shape.Shape, opt *Options) ([]byte, error) {
	if opt == nil {
		opt = &Options{}
	}

	out := make([]outShape, len(shapes))
	for i, s := range shapes {
		if s == nil {
			return nil, &ElementError{Index: i, Err: fmt.Errorf("%w: nil shape", ErrMalformedWireData)}
		}
		if s.Type != shape.Rectangle {
			return nil, &ElementError{
				Index: i,
				Err:   fmt.Errorf("%w: %q", shape.ErrUnrecognizedShapeType, s.Type),
			}
		}
		if !coord.IsFinite(s.Points[:]...) || !edgesFinite(s.Edges) {
			return nil, &ElementError{
				Index: i,
				Err:   fmt.Errorf("%w: non-finite coordinates", coord.ErrInvalidGeometry),
			}
		}
		out[i] = encodeShape(s, opt)
	}

	if opt.Indent != "" {
		return json.MarshalIndent(out, "", opt.Indent)
	}
	return json.Marshal(out)
}

func encodeShape(s *shape.Shape, opt *Options) outShape {
	res := outShape{
		Type:      string(s.Type),
		Points:    make([]outPoint, len(s.Points)),
		Edges:     make([]outEdge, len(s.Edges)),
		Relations: encodeRelations(s.Relations),
	}
	for i, p := range s.Points {
		res.Points[i] = encodePoint(p, opt.Numbers)
	}
	for i, e := range s.Edges {
		res.Edges[i] = outEdge{
			Start: encodePoint(e.Start, opt.Numbers),
			End:   encodePoint(e.End, opt.Numbers),
			Value: edgeValue,
			Unit:  edgeUnit,
			Name:  edgeName,
		}
		if !opt.Legacy {
			res.Edges[i].ColorCode = new(string)
		}
	}
	if !opt.Legacy {
		color := s.ColorHex
		res.Color = &color
	}
	return res
}

func encodePoint(p vec.Vec2, enc NumberEncoding) outPoint {
	return outPoint{
		X: encodeFloat(p.X, enc),
		Y: encodeFloat(p.Y, enc),
	}
}

func encodeRelations(rel *shape.Relations) *jsonRelations {
	if rel == nil {
		return nil
	}
	res := &jsonRelations{
		Documentation: make([]jsonDocumentation, len(rel.Documentation)),
	}
	for i, doc := range rel.Documentation {
		res.Documentation[i] = jsonDocumentation{
			SchemaID:   doc.SchemaID,
			DocumentID: doc.DocumentID,
		}
	}
	return res
}

func edgesFinite(edges [4]coord.Edge) bool {
	for _, e := range edges {
		if !coord.IsFinite(e.Start, e.End) {
			return false
		}
	}
	return true
}
