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
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape/coord"
)

var testRelations = &Relations{
	Documentation: []Documentation{
		{SchemaID: 16, DocumentID: "583"},
		{SchemaID: 2, DocumentID: "a-b-c"},
	},
}

func TestFromAnnotation(t *testing.T) {
	sq := NewSquare(vec.Vec2{X: 30, Y: 22}, vec.Vec2{X: 60, Y: 62}, testRelations, "#FF00FF00")

	s, err := FromAnnotation(sq, 100)
	if err != nil {
		t.Fatal(err)
	}

	wantPoints := [4]vec.Vec2{
		{X: 30, Y: 38}, // top-left
		{X: 60, Y: 38}, // top-right
		{X: 60, Y: 78}, // bottom-right
		{X: 30, Y: 78}, // bottom-left
	}
	if d := cmp.Diff(wantPoints, s.Points); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
	if d := cmp.Diff(coord.Edges(wantPoints), s.Edges); d != "" {
		t.Errorf("edges differ (-want +got):\n%s", d)
	}
	if s.Type != Rectangle {
		t.Errorf("type = %q", s.Type)
	}
	if s.Relations != testRelations {
		t.Error("relations not carried over")
	}
	if s.ColorHex != "#FF00FF00" {
		t.Errorf("color = %q", s.ColorHex)
	}
}

func TestFromAnnotationLink(t *testing.T) {
	l := NewLink(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}, "https://example.com/")
	_, err := FromAnnotation(l, 100)
	if !errors.Is(err, ErrUnsupportedAnnotationType) {
		t.Errorf("got error %v, want ErrUnsupportedAnnotationType", err)
	}
}

func TestAnnotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 500; i++ {
		h := float64(rng.IntN(3000))
		bl := vec.Vec2{X: float64(rng.IntN(600*64)) / 64, Y: float64(rng.IntN(800*64)) / 64}
		tr := vec.Vec2{X: float64(rng.IntN(600*64)) / 64, Y: float64(rng.IntN(800*64)) / 64}
		a1 := NewSquare(bl, tr, testRelations, "")

		s, err := FromAnnotation(a1, h)
		if err != nil {
			t.Fatal(err)
		}
		a2, err := s.ToAnnotation(h)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(a1, a2); d != "" {
			t.Fatalf("round trip failed (-want +got):\n%s", d)
		}
	}
}

func TestToAnnotationUnknownType(t *testing.T) {
	s := &Shape{Type: "CIRCLE"}
	_, err := s.ToAnnotation(100)
	if !errors.Is(err, ErrUnrecognizedShapeType) {
		t.Errorf("got error %v, want ErrUnrecognizedShapeType", err)
	}
}

func TestNewRectangle(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}}
	s, err := NewRectangle(pts, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Edges[coord.RightEdge] != (coord.Edge{Start: pts[1], End: pts[2]}) {
		t.Errorf("wrong right edge %v", s.Edges[coord.RightEdge])
	}

	_, err = NewRectangle(pts[:3], nil, "")
	if !errors.Is(err, coord.ErrInvalidGeometry) {
		t.Errorf("3 points: got error %v", err)
	}

	bad := []vec.Vec2{{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}}
	_, err = NewRectangle(bad, nil, "")
	if !errors.Is(err, coord.ErrInvalidGeometry) {
		t.Errorf("infinite point: got error %v", err)
	}
}

func TestRelationsFirst(t *testing.T) {
	var nilRel *Relations
	if _, ok := nilRel.First(); ok {
		t.Error("nil relations have a first entry")
	}
	if _, ok := (&Relations{}).First(); ok {
		t.Error("empty relations have a first entry")
	}
	doc, ok := testRelations.First()
	if !ok || doc != (Documentation{SchemaID: 16, DocumentID: "583"}) {
		t.Errorf("First() = %v, %t", doc, ok)
	}
	if n := nilRel.Len(); n != 0 {
		t.Errorf("nil Len() = %d", n)
	}
}
