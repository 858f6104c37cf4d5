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
	"net/url"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
)

// TargetKind describes what was hit by a tap.
type TargetKind int

// These are the possible values of [Target.Kind].
const (
	TargetNone TargetKind = iota
	TargetLink
	TargetSquare
)

func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetLink:
		return "link"
	case TargetSquare:
		return "square"
	default:
		return "TargetKind(?)"
	}
}

// Target is the result of [Page.Tap].
type Target struct {
	Kind TargetKind

	// Annotation is the annotation which was hit, or nil.
	Annotation shape.Annotation

	// URI and IsWebLink are set for links.  IsWebLink is true for http and
	// https URIs, which can be opened in a browser.
	URI       string
	IsWebLink bool

	// Documentation is the first related documentation record of a square.
	// HasDocumentation tells whether the square has such a record.
	Documentation    shape.Documentation
	HasDocumentation bool
}

// Tap finds the annotation under the point pt, given in PDF space.
// If annotations overlap, the first one in /Annots order wins.
func (p *Page) Tap(pt vec.Vec2) Target {
	a, ok := shape.Find(p.Annotations, pt)
	if !ok {
		return Target{Kind: TargetNone}
	}

	switch a := a.(type) {
	case *shape.Link:
		return Target{
			Kind:       TargetLink,
			Annotation: a,
			URI:        a.URI,
			IsWebLink:  isWebLink(a.URI),
		}
	case *shape.Square:
		t := Target{Kind: TargetSquare, Annotation: a}
		t.Documentation, t.HasDocumentation = a.Relations.First()
		return t
	default:
		return Target{Kind: TargetNone}
	}
}

func isWebLink(uri string) bool {
	u, err := url.Parse(uri)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	default:
		return false
	}
}
