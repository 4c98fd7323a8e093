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

import "math"

// HSL is a colour given by hue, saturation and lightness.
// The hue is in degrees, saturation and lightness are in [0, 1].
type HSL struct {
	H, S, L float64
}

// ToXYZ implements the [Color] interface.
func (c HSL) ToXYZ(wp WhitePoint) XYZ {
	return c.RGB().XYZ()
}

// HSL converts the colour to hue, saturation and lightness.
// The hue of a grey is 0.
func (c RGB) HSL() HSL {
	maxV := max(c.R, c.G, c.B)
	minV := min(c.R, c.G, c.B)
	chroma := maxV - minV
	l := (maxV + minV) / 2

	if chroma == 0 || l <= 0 || l >= 1 {
		return HSL{H: 0, S: 0, L: l}
	}

	var h float64
	switch maxV {
	case c.R:
		h = math.Mod((c.G-c.B)/chroma, 6)
	case c.G:
		h = (c.B-c.R)/chroma + 2
	default:
		h = (c.R-c.G)/chroma + 4
	}
	s := chroma / (1 - math.Abs(2*l-1))

	return HSL{H: normHue(60 * h), S: s, L: l}
}

// RGB converts the colour to sRGB.
// Hue values outside [0, 360) are wrapped around.
func (c HSL) RGB() RGB {
	h := normHue(c.H)
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := c.L - chroma/2
	return RGB{clamp01(r + m), clamp01(g + m), clamp01(b + m)}
}
