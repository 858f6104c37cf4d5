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

// Documentation refers to a record in an external documentation system.
type Documentation struct {
	SchemaID   int64
	DocumentID string
}

// Relations lists the documentation records linked to a shape or an
// annotation.
//
// A nil *Relations means that no relations have been recorded, which is
// different from an empty list.  Relations values are shared between
// shapes and annotations and must not be modified.
type Relations struct {
	Documentation []Documentation
}

// First returns the first documentation record.
// The second return value is false, if there are no records.
func (r *Relations) First() (Documentation, bool) {
	if r == nil || len(r.Documentation) == 0 {
		return Documentation{}, false
	}
	return r.Documentation[0], true
}

// Len returns the number of documentation records.
func (r *Relations) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Documentation)
}
