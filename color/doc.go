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

// Package color implements the colour representations used for palette
// generation, and exact conversions between them.
//
// The following representations are supported:
//   - [RGB]: gamma-encoded sRGB, components in [0, 1]
//   - [HSL]: hue in [0, 360), saturation and lightness in [0, 1]
//   - [XYZ]: CIE 1931 tristimulus values, relative to the sRGB (D65) primaries
//   - [Lab]: CIE 1976 L*a*b*
//   - [LCHab]: polar form of L*a*b*
//   - [DIN99d]: the DIN99d colour space, designed so that Euclidean distances
//     approximate perceived colour differences
//
// All types implement the [Color] interface, which converts to [XYZ].  XYZ is
// the hub for all conversions, except that RGB<->HSL and Lab<->LCHab use
// their closed forms.  Conversions to and from Lab, LCHab and DIN99d take a
// reference [WhitePoint].
//
// Colours are plain values.  Conversions never modify their receiver.
package color
