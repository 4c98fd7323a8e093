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

package metric

import (
	"math"

	"seehuhn.de/go/qualpal/color"
)

// DIN99d is the Euclidean distance in the DIN99d colour space.
//
// If PowerTransform is set, the distance d is replaced by Scale*d^Power.
type DIN99d struct {
	PowerTransform bool
	Power          float64
	Scale          float64
	WhitePoint     color.WhitePoint
}

// NewDIN99d returns the DIN99d metric with the power transform
// parameters recommended by Huang et al. (2015).
func NewDIN99d() *DIN99d {
	return &DIN99d{
		PowerTransform: true,
		Power:          0.74,
		Scale:          1.28,
		WhitePoint:     color.WhitePointD65,
	}
}

// Difference implements the [Metric] interface.
func (m *DIN99d) Difference(a, b color.Color) float64 {
	return m.Delta(color.ToDIN99d(a, m.WhitePoint), color.ToDIN99d(b, m.WhitePoint))
}

// Delta computes the difference between two colours which are already
// given in DIN99d coordinates.
func (m *DIN99d) Delta(x, y color.DIN99d) float64 {
	dL := x.L - y.L
	dA := x.A - y.A
	dB := x.B - y.B
	d := math.Sqrt(dL*dL + dA*dA + dB*dB)
	if m.PowerTransform {
		d = m.Scale * math.Pow(d, m.Power)
	}
	return d
}

// CIE76 is the Euclidean distance in CIE L*a*b*.
type CIE76 struct {
	WhitePoint color.WhitePoint
}

// Difference implements the [Metric] interface.
func (m *CIE76) Difference(a, b color.Color) float64 {
	return m.Delta(color.ToLab(a, m.WhitePoint), color.ToLab(b, m.WhitePoint))
}

// Delta computes the CIE76 difference of two Lab colours.
func (m *CIE76) Delta(x, y color.Lab) float64 {
	dL := x.L - y.L
	dA := x.A - y.A
	dB := x.B - y.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}
