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

package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatFloat returns the shortest decimal representation of x which
// parses back to x.  The result always contains a decimal point.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func encodeFloat(x float64, enc NumberEncoding) json.RawMessage {
	s := formatFloat(x)
	if enc == NumbersAsJSON {
		return json.RawMessage(s)
	}
	return json.RawMessage(strconv.Quote(s))
}

// coordinate is a coordinate read from the wire.  Both JSON strings and
// JSON numbers are accepted.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s", data)
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return fmt.Errorf("non-finite coordinate %s", data)
	}
	*c = coordinate(x)
	return nil
}
