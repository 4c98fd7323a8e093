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
	"fmt"
	"math"

	"seehuhn.de/go/qualpal/color"
)

// CIEDE2000 implements the CIE 2000 colour difference formula, in the form
// given by Sharma, Wu and Dalal (2005).
//
// KL, KC and KH are the parametric weighting factors for lightness, chroma
// and hue.  They are 1 for reference conditions.
type CIEDE2000 struct {
	KL, KC, KH float64
	WhitePoint color.WhitePoint
}

// NewCIEDE2000 returns the CIEDE2000 metric with the given weighting
// factors.  All factors must be positive and finite.
func NewCIEDE2000(kl, kc, kh float64) (*CIEDE2000, error) {
	for _, k := range []struct {
		name string
		val  float64
	}{{"kL", kl}, {"kC", kc}, {"kH", kh}} {
		if !(k.val > 0) || math.IsInf(k.val, 1) {
			return nil, fmt.Errorf("CIEDE2000: %s=%g, expected a positive number", k.name, k.val)
		}
	}
	return &CIEDE2000{KL: kl, KC: kc, KH: kh, WhitePoint: color.WhitePointD65}, nil
}

// NewCIEDE2000Default returns the CIEDE2000 metric for reference conditions.
func NewCIEDE2000Default() *CIEDE2000 {
	return &CIEDE2000{KL: 1, KC: 1, KH: 1, WhitePoint: color.WhitePointD65}
}

// Difference implements the [Metric] interface.
func (m *CIEDE2000) Difference(a, b color.Color) float64 {
	return m.Delta(color.ToLab(a, m.WhitePoint), color.ToLab(b, m.WhitePoint))
}

const pow25to7 = 6103515625 // 25^7

// Delta computes the CIEDE2000 difference of two Lab colours.
func (m *CIEDE2000) Delta(x, y color.Lab) float64 {
	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	cBar := (c1 + c2) / 2
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1 := (1 + g) * x.A
	a2 := (1 + g) * y.A
	c1p := math.Hypot(a1, x.B)
	c2p := math.Hypot(a2, y.B)
	h1p := hueDeg(x.B, a1)
	h2p := hueDeg(y.B, a2)

	dLp := y.L - x.L
	dCp := c2p - c1p

	var dhp float64
	zeroChroma := c1p*c2p == 0
	if !zeroChroma {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(deg2rad(dhp/2))

	lBarP := (x.L + y.L) / 2
	cBarP := (c1p + c2p) / 2

	var hBarP float64
	switch {
	case zeroChroma:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(deg2rad(hBarP-30)) +
		0.24*math.Cos(deg2rad(2*hBarP)) +
		0.32*math.Cos(deg2rad(3*hBarP+6)) -
		0.20*math.Cos(deg2rad(4*hBarP-63))

	dTheta := 30 * math.Exp(-sqr((hBarP-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	lTerm := sqr(lBarP - 50)
	sL := 1 + 0.015*lTerm/math.Sqrt(20+lTerm)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t
	rT := -math.Sin(deg2rad(2*dTheta)) * rC

	fL := dLp / (m.KL * sL)
	fC := dCp / (m.KC * sC)
	fH := dHp / (m.KH * sH)

	return math.Sqrt(max(0, fL*fL+fC*fC+fH*fH+rT*fC*fH))
}

// hueDeg returns the angle of (a, b) in degrees, in the range [0, 360).
// The hue of a neutral colour is 0.
func hueDeg(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func deg2rad(x float64) float64 {
	return x * math.Pi / 180
}

func sqr(x float64) float64 {
	return x * x
}
