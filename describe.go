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

package qualpal

import "seehuhn.de/go/qualpal/color"

// Swatch collects different representations of a palette colour.
type Swatch struct {
	RGB    color.RGB
	Hex    string
	HSL    color.HSL
	DIN99d color.DIN99d
}

// Describe returns the representations of c which are commonly used to
// present a palette.
func Describe(c color.RGB, wp color.WhitePoint) Swatch {
	return Swatch{
		RGB:    c,
		Hex:    c.Hex(),
		HSL:    c.HSL(),
		DIN99d: c.XYZ().DIN99d(wp),
	}
}

// ParseColors converts hex literals ("#RGB", "#RRGGBB") and colour names
// into RGB colours.
func ParseColors(specs []string) ([]color.RGB, error) {
	res := make([]color.RGB, len(specs))
	for i, s := range specs {
		c, err := color.Parse(s)
		if err != nil {
			return nil, wrapArgError("colors", err)
		}
		res[i] = c
	}
	return res, nil
}
