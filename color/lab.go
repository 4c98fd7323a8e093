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

// CIE constants for the XYZ <-> Lab conversion.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Lab is a colour in the CIE 1976 L*a*b* colour space.
type Lab struct {
	L, A, B float64
}

// ToXYZ implements the [Color] interface.
func (c Lab) ToXYZ(wp WhitePoint) XYZ {
	return c.XYZ(wp)
}

// Lab converts the colour to CIE L*a*b*, relative to the white point wp.
func (c XYZ) Lab(wp WhitePoint) Lab {
	fx := labF(c.X / wp.X)
	fy := labF(c.Y / wp.Y)
	fz := labF(c.Z / wp.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// XYZ converts the colour to CIE XYZ, relative to the white point wp.
func (c Lab) XYZ(wp WhitePoint) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	var yr float64
	if c.L > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = c.L / labKappa
	}
	return XYZ{
		X: labFInv(fx) * wp.X,
		Y: yr * wp.Y,
		Z: labFInv(fz) * wp.Z,
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	f3 := f * f * f
	if f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// LCHab is the cylindrical form of [Lab]: lightness, chroma and hue
// (in degrees).
type LCHab struct {
	L, C, H float64
}

// ToXYZ implements the [Color] interface.
func (c LCHab) ToXYZ(wp WhitePoint) XYZ {
	return c.Lab().XYZ(wp)
}

// LCHab converts the colour to cylindrical coordinates.
func (c Lab) LCHab() LCHab {
	return LCHab{
		L: c.L,
		C: math.Hypot(c.A, c.B),
		H: atan2d(c.B, c.A),
	}
}

// Lab converts the colour to rectangular coordinates.
func (c LCHab) Lab() Lab {
	h := normHue(c.H) * math.Pi / 180
	return Lab{
		L: c.L,
		A: c.C * math.Cos(h),
		B: c.C * math.Sin(h),
	}
}
