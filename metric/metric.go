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

// Package metric implements perceptual colour difference formulas.
//
// Three metrics are provided: Euclidean distance in DIN99d (optionally with
// the power transform of Huang et al.), CIE76 and CIEDE2000.  All metrics
// accept colours in any representation and convert them to their native
// colour space first.
//
// CIEDE2000 is not a metric in the mathematical sense; it may violate the
// triangle inequality.
package metric

import (
	"fmt"
	"strings"

	"seehuhn.de/go/qualpal/color"
)

// Metric computes the perceptual difference between two colours.
// The result is non-negative, symmetric and zero for identical colours.
type Metric interface {
	Difference(a, b color.Color) float64
}

// Kind identifies one of the available metrics.
type Kind int

// These are the supported metrics.
const (
	KindCIEDE2000 Kind = iota
	KindDIN99d
	KindCIE76
)

func (k Kind) String() string {
	switch k {
	case KindCIEDE2000:
		return "ciede2000"
	case KindDIN99d:
		return "din99d"
	case KindCIE76:
		return "cie76"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a metric name to a Kind.  Names are not case
// sensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ciede2000":
		return KindCIEDE2000, nil
	case "din99d":
		return KindDIN99d, nil
	case "cie76":
		return KindCIE76, nil
	}
	return 0, fmt.Errorf("unknown metric %q (expected din99d, cie76 or ciede2000)", name)
}

// New returns a metric of the given kind with default parameters,
// using the white point wp.
func New(kind Kind, wp color.WhitePoint) (Metric, error) {
	switch kind {
	case KindCIEDE2000:
		m := NewCIEDE2000Default()
		m.WhitePoint = wp
		return m, nil
	case KindDIN99d:
		m := NewDIN99d()
		m.WhitePoint = wp
		return m, nil
	case KindCIE76:
		return &CIE76{WhitePoint: wp}, nil
	}
	return nil, fmt.Errorf("invalid metric kind %d", int(kind))
}
