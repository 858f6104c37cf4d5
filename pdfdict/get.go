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
	"fmt"
	"math"
)

// MalformedError indicates an annotation dictionary which does not have the
// expected structure.
type MalformedError struct {
	Key Name
	Err error
}

func (err *MalformedError) Error() string {
	msg := "malformed annotation dictionary"
	if err.Key != "" {
		msg += " (/" + string(err.Key) + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

func typeError(want string, obj Object) error {
	return &MalformedError{Err: fmt.Errorf("expected %s but got %T", want, obj)}
}

// GetNumber makes sure that obj is an [Integer], a [Real] or a [Number],
// and returns its value.
func GetNumber(obj Object) (float64, error) {
	switch x := obj.(type) {
	case Integer:
		return float64(x), nil
	case Real:
		return float64(x), nil
	case Number:
		return float64(x), nil
	default:
		return 0, typeError("number", obj)
	}
}

// GetInteger makes sure that obj is an integer and returns its value.
// [Integer] objects are returned exactly.  [Real] and [Number] objects are
// accepted if they have no fractional part and fit into an int64.
func GetInteger(obj Object) (int64, error) {
	var x float64
	switch obj := obj.(type) {
	case Integer:
		return int64(obj), nil
	case Real:
		x = float64(obj)
	case Number:
		x = float64(obj)
	default:
		return 0, typeError("integer", obj)
	}
	if x != math.Trunc(x) || x < -(1<<63) || x >= 1<<63 {
		return 0, &MalformedError{Err: fmt.Errorf("%g is not an integer", x)}
	}
	return int64(x), nil
}

// GetName makes sure that obj is a [Name].
// If obj is nil, the empty name is returned without an error.
func GetName(obj Object) (Name, error) {
	switch x := obj.(type) {
	case nil:
		return "", nil
	case Name:
		return x, nil
	default:
		return "", typeError("name", obj)
	}
}

// GetString makes sure that obj is a [String].
// If obj is nil, nil is returned without an error.
func GetString(obj Object) (String, error) {
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case String:
		return x, nil
	default:
		return nil, typeError("string", obj)
	}
}

// GetArray makes sure that obj is an [Array].
// If obj is nil, nil is returned without an error.
func GetArray(obj Object) (Array, error) {
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case Array:
		return x, nil
	default:
		return nil, typeError("array", obj)
	}
}

// GetDict makes sure that obj is a [Dict].
// If obj is nil, nil is returned without an error.
func GetDict(obj Object) (Dict, error) {
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case Dict:
		return x, nil
	default:
		return nil, typeError("dictionary", obj)
	}
}

// getFloats reads an array of numbers.
func getFloats(obj Object) ([]float64, error) {
	a, err := GetArray(obj)
	if a == nil {
		return nil, err
	}
	res := make([]float64, len(a))
	for i, elem := range a {
		x, err := GetNumber(elem)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}
