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
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toUint32 converts a float64 in [0,1] to uint32 in [0,0xffff].
func toUint32(v float64) uint32 {
	return uint32(clamp01(v)*0xffff + 0.5)
}

// normHue maps an angle in degrees to the range [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 { // -tiny + 360 can round up
		h = 0
	}
	return h
}

// atan2d returns the angle of (x, y) in degrees, in the range [0, 360).
// The angle of the origin is 0.
func atan2d(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return normHue(math.Atan2(y, x) * 180 / math.Pi)
}

func isPosFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
