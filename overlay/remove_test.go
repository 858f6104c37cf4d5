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

package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pdfdict"
)

func annotName(t *testing.T, obj pdfdict.Object) string {
	t.Helper()
	nm, err := pdfdict.GetString(obj.(pdfdict.Dict)["NM"])
	if err != nil {
		t.Fatal(err)
	}
	return nm.AsTextString()
}

func TestRemoveAnnotations(t *testing.T) {
	squares := []*shape.Square{
		shape.NewSquare(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, nil, ""),
		shape.NewSquare(vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 4, Y: 4}, nil, ""),
		shape.NewSquare(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 6, Y: 6}, nil, ""),
	}
	dicts, err := SquareDicts(squares, nil)
	if err != nil {
		t.Fatal(err)
	}

	annots := testAnnots(t)
	for _, dict := range dicts {
		annots = append(annots, dict)
	}
	n := len(annots)
	target := annotName(t, dicts[1])

	res, removed := RemoveAnnotations(annots, target, "no-such-name")
	if removed != 1 || len(res) != n-1 {
		t.Fatalf("removed %d of %d annotations, %d left", removed, n, len(res))
	}
	for _, obj := range res {
		if dict, ok := obj.(pdfdict.Dict); ok && dict["NM"] != nil && annotName(t, dict) == target {
			t.Errorf("annotation %q was not removed", target)
		}
	}
	if len(annots) != n {
		t.Error("input array was modified")
	}

	// removing again is a no-op
	res2, removed := RemoveAnnotations(res, target)
	if removed != 0 {
		t.Errorf("removed %d annotations, want 0", removed)
	}
	if d := cmp.Diff(res, res2); d != "" {
		t.Errorf("array changed (-want +got):\n%s", d)
	}
}

func TestRemoveGenerated(t *testing.T) {
	sq := shape.NewSquare(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, nil, "")
	mine, err := SquareDicts([]*shape.Square{sq, sq}, nil)
	if err != nil {
		t.Fatal(err)
	}
	other, err := SquareDicts([]*shape.Square{sq}, &pdfdict.EncodeOptions{NamePrefix: "other-"})
	if err != nil {
		t.Fatal(err)
	}

	// a link carrying a matching name is not a generated square
	link, err := pdfdict.EncodeLink(shape.NewLink(vec.Vec2{}, vec.Vec2{X: 1, Y: 1}, "https://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	link["NM"] = pdfdict.TextString(pdfdict.DefaultNamePrefix + "link")

	annots := pdfdict.Array{mine[0], link, other[0], nil, mine[1]}

	res, removed := RemoveGenerated(annots, "")
	if removed != 2 {
		t.Errorf("removed %d annotations, want 2", removed)
	}
	want := pdfdict.Array{link, other[0], nil}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("remaining annotations (-want +got):\n%s", d)
	}

	res, removed = RemoveGenerated(annots, "other-")
	if removed != 1 || len(res) != 4 {
		t.Errorf("removed %d annotations, %d left", removed, len(res))
	}
}
