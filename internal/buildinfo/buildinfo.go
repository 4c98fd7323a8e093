// seehuhn.de/go/qualpal - qualitative colour palettes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the module a binary was built from.
type Info struct {
	Path     string // module path
	Version  string // module version, or a VCS revision
	Modified bool   // the working tree had local changes
}

// Read returns the build information of the running binary.
// The boolean is false if no information is available.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	info := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
		return info, true
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Version = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	if len(info.Version) > 8 {
		info.Version = info.Version[:8]
	}
	return info, info.Version != ""
}

// Short returns a one-line version string for a command line tool,
// e.g. "qualpal (seehuhn.de/go/qualpal v0.2.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	v := info.Version
	if info.Modified {
		v += "+dirty"
	}
	return toolName + " (" + info.Path + " " + v + ")"
}
