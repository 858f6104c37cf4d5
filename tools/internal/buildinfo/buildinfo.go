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

// Package buildinfo describes the version of the running command line tool.
package buildinfo

import (
	"runtime/debug"
)

// Info identifies a build of the module.
type Info struct {
	Path     string // module path
	Version  string // module version, empty for development builds
	Revision string // abbreviated VCS revision, if known
	Dirty    bool   // the working tree had local modifications
}

// Read collects the build information embedded in the binary.
// The second return value is false if no information is available.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	info := fromBuildInfo(bi)
	return info, true
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
			if len(info.Revision) > 8 {
				info.Revision = info.Revision[:8]
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Label returns the version label of the build: the module version if
// there is one, and the VCS revision otherwise.  The empty string is
// returned if neither is known.
func (info Info) Label() string {
	if info.Version != "" {
		return info.Version
	}
	if info.Revision == "" {
		return ""
	}
	if info.Dirty {
		return info.Revision + "+dirty"
	}
	return info.Revision
}

// Short returns a short version string for a command line tool, for
// example "shape-convert (seehuhn.de/go/shape v0.1.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	return info.short(toolName)
}

func (info Info) short(toolName string) string {
	label := info.Label()
	if label == "" {
		return toolName
	}
	return toolName + " (" + info.Path + " " + label + ")"
}
