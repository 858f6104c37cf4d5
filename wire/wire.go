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

// Package wire implements the JSON format used to exchange shapes with an
// overlay UI.
//
// A message is a JSON array of shape objects:
//
//	[{
//	  "type": "RECTANGLE",
//	  "points": [{"x": "30.5", "y": "22.0", "z": null}, ...],
//	  "edges": [{"start": {...}, "end": {...}, "value": "0.0", "unit": "",
//	             "distance": null, "name": "", "colorCode": ""}, ...],
//	  "relations": {"documentation": [{"schemaId": 16, "documentId": "583"}]},
//	  "color": "#FF0000FF"
//	}, ...]
//
// By default, coordinates are sent as strings.  The members "value",
// "unit", "distance" and "name" of edges are placeholders which are
// always sent with the values shown above.
package wire

import (
	"encoding/json"
	"errors"
	"strconv"
)

// NumberEncoding selects how coordinates are written.
type NumberEncoding int

// These are the supported number encodings.
const (
	// NumbersAsStrings writes coordinates as JSON strings, e.g. "12.5".
	NumbersAsStrings NumberEncoding = iota

	// NumbersAsJSON writes coordinates as JSON numbers, e.g. 12.5.
	NumbersAsJSON
)

// Options control the output of [Encode].
// A nil *Options is the same as the zero value.
type Options struct {
	// Numbers selects the representation of coordinates.
	Numbers NumberEncoding

	// Legacy selects the earlier version of the format, which has no
	// "color" member on shapes and no "colorCode" member on edges.
	Legacy bool

	// Indent, if non-empty, is used to indent the output.
	Indent string
}

// ErrMalformedWireData indicates input which is not valid JSON, or which
// lacks a required member.
var ErrMalformedWireData = errors.New("malformed wire data")

// ElementError describes a problem with one element of a shape list.
type ElementError struct {
	Index int
	Err   error
}

func (err *ElementError) Error() string {
	return "shape " + strconv.Itoa(err.Index) + ": " + err.Err.Error()
}

func (err *ElementError) Unwrap() error {
	return err.Err
}

// Placeholder values for the measurement members of edges.
const (
	edgeValue = "0.0"
	edgeUnit  = ""
	edgeName  = ""
)

type jsonRelations struct {
	Documentation []jsonDocumentation `json:"documentation"`
}

type jsonDocumentation struct {
	SchemaID   int64  `json:"schemaId"`
	DocumentID string `json:"documentId"`
}

// outShape is the form of a shape written by Encode.
type outShape struct {
	Type      string         `json:"type"`
	Points    []outPoint     `json:"points"`
	Edges     []outEdge      `json:"edges"`
	Relations *jsonRelations `json:"relations"`
	Color     *string        `json:"color,omitempty"`
}

type outPoint struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
	Z json.RawMessage `json:"z"`
}

type outEdge struct {
	Start     outPoint        `json:"start"`
	End       outPoint        `json:"end"`
	Value     string          `json:"value"`
	Unit      string          `json:"unit"`
	Distance  json.RawMessage `json:"distance"`
	Name      string          `json:"name"`
	ColorCode *string         `json:"colorCode,omitempty"`
}

// inShape is the form of a shape read by Decode.  Pointers distinguish
// absent members from zero values.
type inShape struct {
	Type      *string        `json:"type"`
	Points    []*inPoint     `json:"points"`
	Edges     []*inEdge      `json:"edges"`
	Relations *jsonRelations `json:"relations"`
	Color     *string        `json:"color"`
}

type inPoint struct {
	X *coordinate `json:"x"`
	Y *coordinate `json:"y"`
}

type inEdge struct {
	Start *inPoint `json:"start"`
	End   *inPoint `json:"end"`
}
