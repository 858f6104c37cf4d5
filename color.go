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
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColorHex decodes a colour given in the form "#AARRGGBB".
// The leading "#" is optional.  The alpha component is checked for
// syntax, but otherwise ignored.
//
// Strings of any other form give an error wrapping [ErrInvalidColorFormat].
func ParseColorHex(s string) (colorful.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 8 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
	}

	// [0:2] is alpha
	c, err := colorful.Hex("#" + hex[2:4] + hex[4:6] + hex[6:8])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
	}
	return c, nil
}

// ColorHex formats c as an opaque colour in the form "#FFRRGGBB".
// Components outside the range [0, 1] are clamped.
func ColorHex(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("#FF%02X%02X%02X", r, g, b)
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
