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

// Decode reads a JSON array of shapes.
//
// Coordinates may be given either as strings or as numbers.  If a shape has
// no "edges" member, the edges are computed from the points.  Otherwise the
// transmitted edges are used as they are, even if they do not match the
// points.  A missing "color" member gives an empty ColorHex.
//
// Decoding is all or nothing: if any element is invalid, no shapes are
// returned.  Problems with an individual element are reported as an
// [*ElementError], which wraps one of [ErrMalformedWireData],
// [shape.ErrUnrecognizedShapeType] or [coord.ErrInvalidGeometry].
func Decode(data []byte) ([]*shape.Shape, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWireData, err)
	}

	res := make([]*shape.Shape, len(elems))
	for i, elem := range elems {
		s, err := decodeShape(elem)
		if err != nil {
			return nil, &ElementError{Index: i, Err: err}
		}
		res[i] = s
	}
	return res, nil
}

func decodeShape(data json.RawMessage) (*shape.Shape, error) {
	var in *inShape
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWireData, err)
	}
	if in == nil {
		return nil, fmt.Errorf("%w: null shape", ErrMalformedWireData)
	}

	if in.Type == nil {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedWireData)
	}
	tp := shape.Type(*in.Type)
	if tp != shape.Rectangle {
		return nil, fmt.Errorf("%w: %q", shape.ErrUnrecognizedShapeType, tp)
	}

	if in.Points == nil {
		return nil, fmt.Errorf("%w: missing points", ErrMalformedWireData)
	}
	pts := make([]vec.Vec2, len(in.Points))
	for i, p := range in.Points {
		v, err := p.decode()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts[i] = v
	}
	points, err := coord.ToArray(pts)
	if err != nil {
		return nil, err
	}

	var edges [4]coord.Edge
	if in.Edges == nil {
		edges = coord.Edges(points)
	} else {
		if len(in.Edges) != len(edges) {
			return nil, fmt.Errorf("%w: expected 4 edges, got %d",
				coord.ErrInvalidGeometry, len(in.Edges))
		}
		for i, e := range in.Edges {
			if e == nil {
				return nil, fmt.Errorf("edge %d: %w: null edge", i, ErrMalformedWireData)
			}
			start, err := e.Start.decode()
			if err != nil {
				return nil, fmt.Errorf("edge %d start: %w", i, err)
			}
			end, err := e.End.decode()
			if err != nil {
				return nil, fmt.Errorf("edge %d end: %w", i, err)
			}
			edges[i] = coord.Edge{Start: start, End: end}
		}
	}

	res := &shape.Shape{
		Type:      tp,
		Points:    points,
		Edges:     edges,
		Relations: decodeRelations(in.Relations),
	}
	if in.Color != nil {
		res.ColorHex = *in.Color
	}
	return res, nil
}

func (p *inPoint) decode() (vec.Vec2, error) {
	if p == nil || p.X == nil || p.Y == nil {
		return vec.Vec2{}, fmt.Errorf("%w: incomplete point", ErrMalformedWireData)
	}
	return vec.Vec2{X: float64(*p.X), Y: float64(*p.Y)}, nil
}

func decodeRelations(in *jsonRelations) *shape.Relations {
	if in == nil {
		return nil
	}
	res := &shape.Relations{}
	if len(in.Documentation) > 0 {
		res.Documentation = make([]shape.Documentation, len(in.Documentation))
		for i, doc := range in.Documentation {
			res.Documentation[i] = shape.Documentation{
				SchemaID:   doc.SchemaID,
				DocumentID: doc.DocumentID,
			}
		}
	}
	return res
}
