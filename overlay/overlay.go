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

// Package overlay connects the annotations of a PDF page to the shapes
// shown in an image overlay.
//
// The typical data flow is:
//
//	/Annots array --ExtractPage--> Page --ExportJSON--> overlay editor
//	overlay editor --ImportJSON--> squares --SquareDicts--> PDF writer
//
// Annotations on a [Page] use PDF space, the JSON data uses image space.
// The page height is used to convert between the two.
package overlay

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pdfdict"
	"seehuhn.de/go/shape/wire"
)

// Options control how annotations are read from a page.
// A nil *Options is the same as the zero value.
type Options struct {
	// Logger receives a debug message for every annotation which is
	// skipped.  If this is nil, no messages are logged.
	Logger logrus.FieldLogger
}

func (opt *Options) logger() logrus.FieldLogger {
	if opt != nil && opt.Logger != nil {
		return opt.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Page holds the supported annotations of one PDF page.
type Page struct {
	// Height is the page height in PDF units.
	Height float64

	// Annotations are the square and link annotations of the page, in the
	// order in which they appear in the /Annots array.
	Annotations []shape.Annotation
}

// ExtractPage reads the annotations from the /Annots array of a page.
//
// Annotation types other than squares and links, as well as links without
// a URI, are skipped.  A malformed square or link annotation is an error.
func ExtractPage(annots pdfdict.Array, height float64, opt *Options) (*Page, error) {
	log := opt.logger()

	page := &Page{Height: height}
	for i, obj := range annots {
		dict, err := pdfdict.GetDict(obj)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		if dict == nil {
			log.WithField("index", i).Debug("skipping null annotation")
			continue
		}

		a, err := pdfdict.Extract(dict)
		switch {
		case errors.Is(err, pdfdict.ErrUnsupportedSubtype):
			subtype, _ := pdfdict.GetName(dict["Subtype"])
			log.WithFields(logrus.Fields{
				"index":   i,
				"subtype": string(subtype),
			}).Debug("skipping unsupported annotation")
			continue
		case errors.Is(err, pdfdict.ErrNoURI):
			log.WithField("index", i).Debug("skipping link without URI")
			continue
		case err != nil:
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		page.Annotations = append(page.Annotations, a)
	}

	log.WithField("count", len(page.Annotations)).Debug("page annotations extracted")
	return page, nil
}

// Shapes converts the square annotations of the page to image space.
// Links have no shape representation and are left out.
func (p *Page) Shapes() ([]*shape.Shape, error) {
	var res []*shape.Shape
	for _, a := range p.Annotations {
		if _, isSquare := a.(*shape.Square); !isSquare {
			continue
		}
		s, err := shape.FromAnnotation(a, p.Height)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

// ExportJSON encodes the square annotations of the page in the overlay
// JSON format.
func (p *Page) ExportJSON(opt *wire.Options) ([]byte, error) {
	shapes, err := p.Shapes()
	if err != nil {
		return nil, err
	}
	return wire.Encode(shapes, opt)
}

// ImportJSON decodes overlay JSON data and converts the shapes to square
// annotations in PDF space.  If any of the shapes is invalid, no squares are
// returned.
func ImportJSON(data []byte, height float64) ([]*shape.Square, error) {
	shapes, err := wire.Decode(data)
	if err != nil {
		return nil, err
	}

	res := make([]*shape.Square, len(shapes))
	for i, s := range shapes {
		sq, err := s.ToAnnotation(height)
		if err != nil {
			return nil, &wire.ElementError{Index: i, Err: err}
		}
		res[i] = sq
	}
	return res, nil
}

// SquareDicts builds the annotation dictionaries for the given squares.
func SquareDicts(squares []*shape.Square, opt *pdfdict.EncodeOptions) ([]pdfdict.Dict, error) {
	res := make([]pdfdict.Dict, len(squares))
	for i, sq := range squares {
		dict, err := pdfdict.EncodeSquare(sq, opt)
		if err != nil {
			return nil, fmt.Errorf("square %d: %w", i, err)
		}
		res[i] = dict
	}
	return res, nil
}
