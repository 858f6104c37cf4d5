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

package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pdfdict"
	"seehuhn.de/go/shape/wire"
)

const input = `[
  {"type": "RECTANGLE",
   "points": [{"x": "10.0", "y": "20.0"}, {"x": "110.0", "y": "20.0"},
              {"x": "110.0", "y": "220.0"}, {"x": "10.0", "y": "220.0"}],
   "relations": {"documentation": [{"schemaId": 3, "documentId": "d-1"}]},
   "color": "#FF00FF00"},
  {"type": "RECTANGLE",
   "points": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}],
   "relations": null}
]`

func TestCheck(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := check(buf, []byte(input)); err != nil {
		t.Fatal(err)
	}
	want := "2 shapes, 1 with relations, 1 with colour\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	err := check(buf, []byte(`[{"type":"CIRCLE"}]`))
	if !errors.Is(err, shape.ErrUnrecognizedShapeType) {
		t.Errorf("expected ErrUnrecognizedShapeType, got %v", err)
	}
}

func TestConvert(t *testing.T) {
	buf := &bytes.Buffer{}
	err := convert(buf, []byte(input), &wire.Options{Numbers: wire.NumbersAsJSON, Legacy: true})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, `"color"`) || strings.Contains(out, `"colorCode"`) {
		t.Error("legacy output contains colours")
	}
	if !strings.Contains(out, `"x":110`) {
		t.Errorf("numeric coordinates missing in %s", out)
	}

	// the output can be read back
	shapes, err := wire.Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 2 {
		t.Errorf("got %d shapes, want 2", len(shapes))
	}
}

func TestToPDF(t *testing.T) {
	buf := &bytes.Buffer{}
	err := toPDF(buf, []byte(input), 842, &pdfdict.EncodeOptions{NamePrefix: "x-"})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"/Subtype /Square",
		"/Rect [10 622 110 822]",
		"/C [0 1 0]",
		"/C [1 0 0]",
		"/NM (x-",
		"/documentId (d-1)",
		"/schemaId 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestCheckHeight(t *testing.T) {
	cases := []struct {
		height float64
		given  bool
		ok     bool
	}{
		{842, true, true},
		{0, true, true},
		{0, false, false},
		{-1, true, false},
		{math.NaN(), true, false},
		{math.Inf(1), true, false},
	}
	for _, c := range cases {
		err := checkHeight(c.height, c.given)
		if (err == nil) != c.ok {
			t.Errorf("checkHeight(%g, %t): unexpected result %v", c.height, c.given, err)
		}
		if err != nil && !errors.Is(err, errUsage) {
			t.Errorf("checkHeight(%g, %t): got %v, want usage error", c.height, c.given, err)
		}
	}
}

func TestToPDFZeroHeight(t *testing.T) {
	buf := &bytes.Buffer{}
	err := toPDF(buf, []byte(input), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "/Rect [10 -220 110 -20]") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
