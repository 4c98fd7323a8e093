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
	"math"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/qualpal/internal/mat3"
)

// RGB is a colour in the sRGB colour space.  The components are
// gamma-encoded and should be in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// ToXYZ implements the [Color] interface.
// The white point is not used, since sRGB is defined relative to D65.
func (c RGB) ToXYZ(WhitePoint) XYZ {
	return c.XYZ()
}

// XYZ converts the colour to CIE XYZ.
func (c RGB) XYZ() XYZ {
	x, y, z := rgbToXYZ.Apply(
		srgbGammaInv(c.R), srgbGammaInv(c.G), srgbGammaInv(c.B))
	return XYZ{x, y, z}
}

// IsValid reports whether all components are in the range [0, 1].
func (c RGB) IsValid() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// Clamp returns the colour with all components clamped to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA implements the [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return toUint32(c.R), toUint32(c.G), toUint32(c.B), 0xffff
}

// Hex returns the colour as a string of the form "#rrggbb".
// Components are rounded to the nearest 8-bit value.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8bit(c.R), to8bit(c.G), to8bit(c.B))
}

func (c RGB) String() string {
	return c.Hex()
}

func to8bit(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

// ParseHex parses a colour given as "#RGB" or "#RRGGBB".
// Hex digits may be upper or lower case.
func ParseHex(s string) (RGB, error) {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return RGB{}, &FormatError{Input: s}
	}

	digits := make([]int, 0, 6)
	for i := 1; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			return RGB{}, &FormatError{Input: s}
		}
		digits = append(digits, d)
	}

	var v [3]int
	if len(digits) == 3 {
		for i, d := range digits {
			v[i] = 17 * d
		}
	} else {
		for i := range v {
			v[i] = 16*digits[2*i] + digits[2*i+1]
		}
	}
	return RGB{float64(v[0]) / 255, float64(v[1]) / 255, float64(v[2]) / 255}, nil
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// Parse parses a colour given either as a hex literal (see [ParseHex]), or as
// one of the SVG 1.1 colour keywords, for example "steelblue".
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}, nil
	}
	return RGB{}, &FormatError{Input: s, Named: true}
}

// FormatError is returned when a colour literal cannot be parsed.
type FormatError struct {
	Input string
	Named bool
}

func (err *FormatError) Error() string {
	if err.Named {
		return fmt.Sprintf("invalid colour %q: expected #RGB, #RRGGBB or a colour name", err.Input)
	}
	return fmt.Sprintf("invalid colour %q: expected #RGB or #RRGGBB", err.Input)
}

// rgbToXYZ maps linear sRGB to XYZ (D65).
var rgbToXYZ = mat3.Matrix{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
}

// xyzToRGB is the exact inverse of rgbToXYZ, so that conversions round-trip.
var xyzToRGB = rgbToXYZ.Inv()

// srgbGamma converts a linear value to sRGB gamma encoding.
func srgbGamma(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// srgbGammaInv converts an sRGB gamma-encoded value to linear.
func srgbGammaInv(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Linear returns the linear (gamma-expanded) components of c.
func (c RGB) Linear() (r, g, b float64) {
	return srgbGammaInv(c.R), srgbGammaInv(c.G), srgbGammaInv(c.B)
}

// FromLinear returns the sRGB colour with the given linear components.
// The result is clamped to [0, 1].
func FromLinear(r, g, b float64) RGB {
	return RGB{
		clamp01(srgbGamma(clamp01(r))),
		clamp01(srgbGamma(clamp01(g))),
		clamp01(srgbGamma(clamp01(b))),
	}
}
