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
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/qualpal/color"
)

// sharmaData is the CIEDE2000 test data from Sharma, Wu and Dalal (2005),
// Table 1.
var sharmaData = []struct {
	x, y [3]float64
	dE   float64
}{
	{[3]float64{50, 2.6772, -79.7751}, [3]float64{50, 0, -82.7485}, 2.0425},
	{[3]float64{50, 3.1571, -77.2803}, [3]float64{50, 0, -82.7485}, 2.8615},
	{[3]float64{50, 2.8361, -74.0200}, [3]float64{50, 0, -82.7485}, 3.4412},
	{[3]float64{50, -1.3802, -84.2814}, [3]float64{50, 0, -82.7485}, 1.0000},
	{[3]float64{50, -1.1848, -84.8006}, [3]float64{50, 0, -82.7485}, 1.0000},
	{[3]float64{50, -0.9009, -85.5211}, [3]float64{50, 0, -82.7485}, 1.0000},
	{[3]float64{50, 0, 0}, [3]float64{50, -1, 2}, 2.3669},
	{[3]float64{50, -1, 2}, [3]float64{50, 0, 0}, 2.3669},
	{[3]float64{50, 2.49, -0.001}, [3]float64{50, -2.49, 0.0009}, 7.1792},
	{[3]float64{50, 2.49, -0.001}, [3]float64{50, -2.49, 0.001}, 7.1792},
	{[3]float64{50, 2.49, -0.001}, [3]float64{50, -2.49, 0.0011}, 7.2195},
	{[3]float64{50, 2.49, -0.001}, [3]float64{50, -2.49, 0.0012}, 7.2195},
	{[3]float64{50, -0.001, 2.49}, [3]float64{50, 0.0009, -2.49}, 4.8045},
	{[3]float64{50, -0.001, 2.49}, [3]float64{50, 0.001, -2.49}, 4.8045},
	{[3]float64{50, -0.001, 2.49}, [3]float64{50, 0.0011, -2.49}, 4.7461},
	{[3]float64{50, 2.5, 0}, [3]float64{50, 0, -2.5}, 4.3065},
	{[3]float64{50, 2.5, 0}, [3]float64{73, 25, -18}, 27.1492},
	{[3]float64{50, 2.5, 0}, [3]float64{61, -5, 29}, 22.8977},
	{[3]float64{50, 2.5, 0}, [3]float64{56, -27, -3}, 31.9030},
	{[3]float64{50, 2.5, 0}, [3]float64{58, 24, 15}, 19.4535},
	{[3]float64{50, 2.5, 0}, [3]float64{50, 3.1736, 0.5854}, 1.0000},
	{[3]float64{50, 2.5, 0}, [3]float64{50, 3.2972, 0}, 1.0000},
	{[3]float64{50, 2.5, 0}, [3]float64{50, 1.8634, 0.5757}, 1.0000},
	{[3]float64{50, 2.5, 0}, [3]float64{50, 3.2592, 0.3350}, 1.0000},
	{[3]float64{60.2574, -34.0099, 36.2677}, [3]float64{60.4626, -34.1751, 39.4387}, 1.2644},
	{[3]float64{63.0109, -31.0961, -5.8663}, [3]float64{62.8187, -29.7946, -4.0864}, 1.2630},
	{[3]float64{61.2901, 3.7196, -5.3901}, [3]float64{61.4292, 2.2480, -4.9620}, 1.8731},
	{[3]float64{35.0831, -44.1164, 3.7933}, [3]float64{35.0232, -40.0716, 1.5901}, 1.8645},
	{[3]float64{22.7233, 20.0904, -46.6940}, [3]float64{23.0331, 14.9730, -42.5619}, 2.0373},
	{[3]float64{36.4612, 47.8580, 18.3852}, [3]float64{36.2715, 50.5065, 21.2231}, 1.4146},
	{[3]float64{90.8027, -2.0831, 1.4410}, [3]float64{91.1528, -1.6435, 0.0447}, 1.4441},
	{[3]float64{90.9257, -0.5406, -0.9208}, [3]float64{88.6381, -0.8985, -0.7239}, 1.5381},
	{[3]float64{6.7747, -0.2908, -2.4247}, [3]float64{5.8714, -0.0985, -2.2286}, 0.6377},
	{[3]float64{2.0776, 0.0795, -1.1350}, [3]float64{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestCIEDE2000Sharma(t *testing.T) {
	m := NewCIEDE2000Default()
	for i, c := range sharmaData {
		t.Run(fmt.Sprintf("%02d", i+1), func(t *testing.T) {
			x := color.Lab{L: c.x[0], A: c.x[1], B: c.x[2]}
			y := color.Lab{L: c.y[0], A: c.y[1], B: c.y[2]}
			got := m.Delta(x, y)
			if math.Abs(got-c.dE) > 1e-4 {
				t.Errorf("got %.6f, want %.4f", got, c.dE)
			}
			back := m.Delta(y, x)
			if back != got {
				t.Errorf("not symmetric: %g != %g", got, back)
			}
		})
	}
}

func TestNewCIEDE2000(t *testing.T) {
	if _, err := NewCIEDE2000(1, 1, 1); err != nil {
		t.Fatal(err)
	}
	bad := [][3]float64{{0, 1, 1}, {1, -1, 1}, {1, 1, math.NaN()}, {1, math.Inf(1), 1}}
	for _, k := range bad {
		if _, err := NewCIEDE2000(k[0], k[1], k[2]); err == nil {
			t.Errorf("%v: expected error", k)
		}
	}

	// doubling kL halves the lightness contribution
	m, _ := NewCIEDE2000(2, 1, 1)
	x := color.Lab{L: 50}
	y := color.Lab{L: 60}
	d1 := NewCIEDE2000Default().Delta(x, y)
	d2 := m.Delta(x, y)
	if math.Abs(d1-2*d2) > 1e-12 {
		t.Errorf("got %g and %g", d1, d2)
	}
}

func TestEuclidean(t *testing.T) {
	black := color.RGB{}
	white := color.RGB{R: 1, G: 1, B: 1}
	darkRed := color.RGB{R: 0.5}
	red := color.RGB{R: 1}
	green := color.RGB{G: 1}

	cie76 := &CIE76{WhitePoint: color.WhitePointD65}
	din := NewDIN99d()
	raw := NewDIN99d()
	raw.PowerTransform = false

	cases := []struct {
		m    Metric
		a, b color.Color
		want float64
	}{
		{cie76, black, white, 100.0000038667},
		{cie76, darkRed, white, 96.4085124275},
		{cie76, black, darkRed, 66.1687340402},
		{din, black, white, 38.655432760869},
		{din, red, green, 32.773501311},
		{raw, red, green, 80.00654237},
	}
	for i, c := range cases {
		got := c.m.Difference(c.a, c.b)
		if math.Abs(got-c.want) > 1e-6 {
			t.Errorf("%d: got %.10f, want %.10f", i, got, c.want)
		}
	}
}

func TestProperties(t *testing.T) {
	wp := color.WhitePointD65
	metrics := map[string]Metric{}
	for _, k := range []Kind{KindCIEDE2000, KindDIN99d, KindCIE76} {
		m, err := New(k, wp)
		if err != nil {
			t.Fatal(err)
		}
		metrics[k.String()] = m
	}

	rng := rand.New(rand.NewSource(0))
	randRGB := func() color.RGB {
		return color.RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	for range 500 {
		x := randRGB()
		y := randRGB()
		for name, m := range metrics {
			dxy := m.Difference(x, y)
			dyx := m.Difference(y, x)
			if dxy != dyx {
				t.Errorf("%s: not symmetric for %v, %v: %g != %g", name, x, y, dxy, dyx)
			}
			if !(dxy >= 0) || math.IsInf(dxy, 0) {
				t.Errorf("%s: invalid distance %g", name, dxy)
			}
			if dxx := m.Difference(x, x); dxx != 0 {
				t.Errorf("%s: distance of %v to itself is %g", name, x, dxx)
			}
		}
	}
}

// TestMixedRepresentations checks that metrics convert their arguments.
func TestMixedRepresentations(t *testing.T) {
	wp := color.WhitePointD65
	a := color.RGB{R: 0.3, G: 0.6, B: 0.9}
	b := color.RGB{R: 0.8, G: 0.1, B: 0.2}
	for _, k := range []Kind{KindCIEDE2000, KindDIN99d, KindCIE76} {
		m, _ := New(k, wp)
		want := m.Difference(a, b)
		got := m.Difference(a.HSL(), color.ToLCHab(b, wp))
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: got %g, want %g", k, got, want)
		}
	}
}

func TestCIE76Colorful(t *testing.T) {
	m := &CIE76{WhitePoint: color.WhitePointD65}
	rng := rand.New(rand.NewSource(1))
	for range 100 {
		l1, a1, b1 := 100*rng.Float64(), 200*rng.Float64()-100, 200*rng.Float64()-100
		l2, a2, b2 := 100*rng.Float64(), 200*rng.Float64()-100, 200*rng.Float64()-100
		x := colorful.Lab(l1/100, a1/100, b1/100)
		y := colorful.Lab(l2/100, a2/100, b2/100)
		want := 100 * x.DistanceLab(y)
		got := m.Delta(color.Lab{L: l1, A: a1, B: b1}, color.Lab{L: l2, A: a2, B: b2})
		if math.Abs(got-want) > 1e-3*want+1e-6 {
			t.Errorf("got %g, colorful %g", got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindCIEDE2000, KindDIN99d, KindCIE76} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("got %v, want %v", got, k)
		}
	}
	if k, err := ParseKind("DIN99D"); err != nil || k != KindDIN99d {
		t.Errorf("got %v, %v", k, err)
	}
	if _, err := ParseKind("cie94"); err == nil {
		t.Error("expected error")
	}
	if _, err := New(Kind(17), color.WhitePointD65); err == nil {
		t.Error("expected error")
	}
}
