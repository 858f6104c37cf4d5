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

// Package pdfdict converts between annotations and PDF annotation
// dictionaries.
//
// The package contains a small, in-memory model of the PDF objects which
// occur in annotation dictionaries.  Reading and writing PDF files is left
// to the caller: annotation dictionaries are passed in after they have been
// read from a page's /Annots array, and the dictionaries produced by
// [EncodeSquare] and [EncodeLink] are handed to a PDF writer.
package pdfdict

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Object is a PDF object.
// The implementations in this package are [Integer], [Real], [Number],
// [Name], [String], [Array] and [Dict].
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Integer is an integer PDF object.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real is a real number PDF object.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// Number is written as an [Integer] if it has no fractional part, and as a
// [Real] otherwise.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	if i := Integer(x); Number(i) == x {
		return i.PDF(w)
	}
	return Real(x).PDF(w)
}

// Round rounds x to the given number of decimal digits.
func Round(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}

// Name is a PDF name object.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if c < 0x21 || c > 0x7e || c == '#' || strings.IndexByte("()<>[]{}/%", c) >= 0 {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// String is a PDF string object.  The character encoding depends on the
// context, see [String.AsTextString].
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range x {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if c < 32 || c > 126 {
				fmt.Fprintf(buf, `\%03o`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// Array is a PDF array object.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := writeObject(w, val); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Dict is a PDF dictionary object.
// Entries with a nil value are treated as absent.
type Dict map[Name]Object

// PDF implements the [Object] interface.
// The keys are written in sorted order.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val != nil {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	for _, key := range keys {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := x[key].PDF(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n>>")
	return err
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Format returns the PDF representation of obj.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	_ = writeObject(buf, obj)
	return buf.String()
}
