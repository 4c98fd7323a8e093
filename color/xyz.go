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

package color

// XYZ is a colour in the CIE 1931 XYZ colour space, normalised so that
// the reference white has Y=1.
type XYZ struct {
	X, Y, Z float64
}

// ToXYZ implements the [Color] interface.
func (c XYZ) ToXYZ(WhitePoint) XYZ {
	return c
}

// RGB converts the colour to sRGB.  Colours outside the sRGB gamut are
// clamped to [0, 1].
func (c XYZ) RGB() RGB {
	r, g, b := xyzToRGB.Apply(c.X, c.Y, c.Z)
	return FromLinear(r, g, b)
}
