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

package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "seehuhn.de/go/shape", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	want := Info{
		Path:     "seehuhn.de/go/shape",
		Revision: "01234567",
		Dirty:    true,
	}
	if d := cmp.Diff(want, fromBuildInfo(bi)); d != "" {
		t.Errorf("unexpected info (-want +got):\n%s", d)
	}
}

func TestShort(t *testing.T) {
	cases := []struct {
		info Info
		want string
	}{
		{Info{}, "tool"},
		{Info{Path: "m", Version: "v1.2.3", Revision: "abc"}, "tool (m v1.2.3)"},
		{Info{Path: "m", Revision: "abc"}, "tool (m abc)"},
		{Info{Path: "m", Revision: "abc", Dirty: true}, "tool (m abc+dirty)"},
	}
	for _, c := range cases {
		if got := c.info.short("tool"); got != c.want {
			t.Errorf("%+v: got %q, want %q", c.info, got, c.want)
		}
	}
}
