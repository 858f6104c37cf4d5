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
	"slices"
	"strings"

	"seehuhn.de/go/shape/pdfdict"
)

// RemoveAnnotations returns a copy of annots without the annotations whose
// /NM entry is one of the given names.  The second return value is the
// number of annotations removed.
//
// The names are the ones assigned by [SquareDicts].  Entries which are not
// dictionaries, or which have no /NM entry, are kept.
func RemoveAnnotations(annots pdfdict.Array, names ...string) (pdfdict.Array, int) {
	remove := make(map[string]bool, len(names))
	for _, name := range names {
		remove[name] = true
	}
	return filterAnnots(annots, func(nm string) bool {
		return remove[nm]
	})
}

// RemoveGenerated returns a copy of annots without all square annotations
// created by [SquareDicts] with the given name prefix.  If prefix is empty,
// [pdfdict.DefaultNamePrefix] is used.  The second return value is the
// number of annotations removed.
func RemoveGenerated(annots pdfdict.Array, prefix string) (pdfdict.Array, int) {
	if prefix == "" {
		prefix = pdfdict.DefaultNamePrefix
	}
	return filterAnnots(annots, func(nm string) bool {
		return strings.HasPrefix(nm, prefix)
	}, "Square")
}

// filterAnnots removes the annotations for which drop returns true.  If
// subtypes are given, only annotations of these subtypes are considered.
func filterAnnots(annots pdfdict.Array, drop func(nm string) bool, subtypes ...pdfdict.Name) (pdfdict.Array, int) {
	res := make(pdfdict.Array, 0, len(annots))
	removed := 0
	for _, obj := range annots {
		if dict, ok := obj.(pdfdict.Dict); ok && matches(dict, drop, subtypes) {
			removed++
			continue
		}
		res = append(res, obj)
	}
	return res, removed
}

func matches(dict pdfdict.Dict, drop func(nm string) bool, subtypes []pdfdict.Name) bool {
	if len(subtypes) > 0 {
		subtype, err := pdfdict.GetName(dict["Subtype"])
		if err != nil || !slices.Contains(subtypes, subtype) {
			return false
		}
	}

	nm, err := pdfdict.GetString(dict["NM"])
	if err != nil || nm == nil {
		return false
	}
	return drop(nm.AsTextString())
}
