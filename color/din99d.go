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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// DIN99d is a colour in the DIN99d colour space (Cui et al., 2002).
// Euclidean distances in this space approximate perceived colour
// differences.
type DIN99d struct {
	L, A, B float64
}

// ToXYZ implements the [Color] interface.
func (c DIN99d) ToXYZ(wp WhitePoint) XYZ {
	return c.XYZ(wp)
}

const (
	din99dHueRotation = 50.0 // degrees
	din99dFScale      = 1.14
)

var (
	din99dFwd = matrix.RotateDeg(-din99dHueRotation)
	din99dInv = matrix.RotateDeg(din99dHueRotation)
)

// din99dWhite applies the X correction of DIN99d to the white point.
func din99dWhite(wp WhitePoint) WhitePoint {
	return WhitePoint{X: 1.12*wp.X - 0.12*wp.Z, Y: wp.Y, Z: wp.Z}
}

// DIN99d converts the colour to DIN99d, relative to the white point wp.
func (c XYZ) DIN99d(wp WhitePoint) DIN99d {
	corrected := XYZ{X: 1.12*c.X - 0.12*c.Z, Y: c.Y, Z: c.Z}
	lab := corrected.Lab(din99dWhite(wp))

	var p vec.Vec2
	p.X, p.Y = din99dFwd.Apply(lab.A, lab.B)
	p.Y *= din99dFScale
	g := p.Length()
	if g == 0 {
		return DIN99d{L: din99dLightness(lab.L)}
	}

	chroma := 22.5 * math.Log1p(0.06*g)
	h := math.Atan2(p.Y, p.X) + din99dHueRotation*math.Pi/180
	return DIN99d{
		L: din99dLightness(lab.L),
		A: chroma * math.Cos(h),
		B: chroma * math.Sin(h),
	}
}

func din99dLightness(l float64) float64 {
	return 325.22 * math.Log1p(0.0036*l)
}

// XYZ converts the colour to CIE XYZ, relative to the white point wp.
func (c DIN99d) XYZ(wp WhitePoint) XYZ {
	lab := Lab{L: math.Expm1(c.L/325.22) / 0.0036}

	chroma := math.Hypot(c.A, c.B)
	if chroma > 0 {
		g := math.Expm1(chroma/22.5) / 0.06
		h := math.Atan2(c.B, c.A) - din99dHueRotation*math.Pi/180
		lab.A, lab.B = din99dInv.Apply(g*math.Cos(h), g*math.Sin(h)/din99dFScale)
	}

	corrected := lab.XYZ(din99dWhite(wp))
	return XYZ{
		X: (corrected.X + 0.12*corrected.Z) / 1.12,
		Y: corrected.Y,
		Z: corrected.Z,
	}
}
