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
	"fmt"
	"strings"
)

// Color is implemented by all colour representations in this package.
type Color interface {
	// ToXYZ converts the colour to CIE XYZ.  The white point is used by
	// representations which are defined relative to a reference white.
	ToXYZ(wp WhitePoint) XYZ
}

// The following types implement the Color interface:
var (
	_ Color = RGB{}
	_ Color = HSL{}
	_ Color = XYZ{}
	_ Color = Lab{}
	_ Color = LCHab{}
	_ Color = DIN99d{}
)

// WhitePoint gives the XYZ tristimulus values of a reference white,
// normalised to Y=1.
type WhitePoint struct {
	X, Y, Z float64
}

// Standard illuminants, for the CIE 1931 2° observer.
var (
	WhitePointD65 = WhitePoint{0.95047, 1.0, 1.08883}
	WhitePointD50 = WhitePoint{0.964212, 1.0, 0.8251883}
	WhitePointD55 = WhitePoint{0.95682, 1.0, 0.92149}
	WhitePointA   = WhitePoint{1.09850, 1.0, 0.35585}
	WhitePointE   = WhitePoint{1.0, 1.0, 1.0}
)

var whitePoints = map[string]WhitePoint{
	"D65": WhitePointD65,
	"D50": WhitePointD50,
	"D55": WhitePointD55,
	"A":   WhitePointA,
	"E":   WhitePointE,
}

// ParseWhitePoint returns the white point for one of the illuminant names
// "D65", "D50", "D55", "A" or "E".  Names are not case sensitive.
func ParseWhitePoint(name string) (WhitePoint, error) {
	wp, ok := whitePoints[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return WhitePoint{}, fmt.Errorf("unknown white point %q (expected D65, D50, D55, A or E)", name)
	}
	return wp, nil
}

// IsValid reports whether all components are positive and finite.
func (wp WhitePoint) IsValid() bool {
	return isPosFinite(wp.X) && isPosFinite(wp.Y) && isPosFinite(wp.Z)
}

// ToRGB converts any colour to RGB.
func ToRGB(c Color, wp WhitePoint) RGB {
	switch c := c.(type) {
	case RGB:
		return c
	case HSL:
		return c.RGB()
	}
	return c.ToXYZ(wp).RGB()
}

// ToHSL converts any colour to HSL.
func ToHSL(c Color, wp WhitePoint) HSL {
	if c, ok := c.(HSL); ok {
		return c
	}
	return ToRGB(c, wp).HSL()
}

// ToXYZ converts any colour to XYZ.
func ToXYZ(c Color, wp WhitePoint) XYZ {
	return c.ToXYZ(wp)
}

// ToLab converts any colour to Lab.
func ToLab(c Color, wp WhitePoint) Lab {
	switch c := c.(type) {
	case Lab:
		return c
	case LCHab:
		return c.Lab()
	}
	return c.ToXYZ(wp).Lab(wp)
}

// ToLCHab converts any colour to LCHab.
func ToLCHab(c Color, wp WhitePoint) LCHab {
	if c, ok := c.(LCHab); ok {
		return c
	}
	return ToLab(c, wp).LCHab()
}

// ToDIN99d converts any colour to DIN99d.
func ToDIN99d(c Color, wp WhitePoint) DIN99d {
	if c, ok := c.(DIN99d); ok {
		return c
	}
	return c.ToXYZ(wp).DIN99d(wp)
}
