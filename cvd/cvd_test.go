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

package cvd

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/qualpal/color"
)

func TestTableRowSums(t *testing.T) {
	for typ := range machado {
		for i, m := range machado[typ] {
			for row := range 3 {
				sum := m[3*row] + m[3*row+1] + m[3*row+2]
				if math.Abs(sum-1) > 1e-5 {
					t.Errorf("%s[%d] row %d sums to %g", Type(typ), i, row, sum)
				}
			}
		}
	}
}

func TestZeroSeverity(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for _, typ := range All {
		for range 100 {
			c := color.RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
			got, err := Simulate(c, typ, 0)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Errorf("%s: (-want +got):\n%s", typ, d)
			}
		}
	}
}

func TestClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		typ := All[rng.Intn(len(All))]
		severity := rng.Float64()
		c := color.RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
		got, err := Simulate(c, typ, severity)
		if err != nil {
			t.Fatal(err)
		}
		if !got.IsValid() {
			t.Errorf("%s %g: %v maps to %v", typ, severity, c, got)
		}
	}
}

func TestGreysPreserved(t *testing.T) {
	for _, typ := range All {
		for _, severity := range []float64{0.25, 0.5, 1} {
			s, err := NewSimulator(typ, severity)
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range []float64{0.2, 0.5, 0.8} {
				c := color.RGB{R: v, G: v, B: v}
				got := s.Apply(c)
				if d := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-5)); d != "" {
					t.Errorf("%s %g: (-want +got):\n%s", typ, severity, d)
				}
			}
		}
	}
}

func TestProtanopeRed(t *testing.T) {
	got, err := Simulate(color.RGB{R: 1}, Protan, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGB{R: 0.4266084717107862, G: 0.37265427742344537, B: 0}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestInterpolation(t *testing.T) {
	m := matrixFor(Deutan, 0.55)
	for i := range m {
		want := (machado[Deutan][5][i] + machado[Deutan][6][i]) / 2
		if math.Abs(m[i]-want) > 1e-12 {
			t.Errorf("entry %d: got %g, want %g", i, m[i], want)
		}
	}

	if matrixFor(Tritan, 1) != machado[Tritan][10] {
		t.Error("severity 1 does not use the last table entry")
	}
	if matrixFor(Protan, 0.5) != machado[Protan][5] {
		t.Error("severity 0.5 does not use the table entry")
	}
}

func TestInvalid(t *testing.T) {
	for _, severity := range []float64{-0.1, 1.01, math.NaN()} {
		_, err := NewSimulator(Protan, severity)
		var se *SeverityError
		if !errors.As(err, &se) {
			t.Errorf("severity %g: expected SeverityError, got %v", severity, err)
		}
	}
	if _, err := NewSimulator(Type(3), 0.5); err == nil {
		t.Error("invalid type accepted")
	}
	if _, err := ParseType("achromat"); err == nil {
		t.Error("invalid name accepted")
	}
}

func TestParseParams(t *testing.T) {
	p, err := ParseParams(map[string]float64{"tritan": 0.2, "Protan": 1})
	if err != nil {
		t.Fatal(err)
	}
	want := Params{Protan: 1, Tritan: 0.2}
	if d := cmp.Diff(want, p); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if d := cmp.Diff([]Type{Protan, Tritan}, p.Types()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	bad := []map[string]float64{
		{"protan": 1.5},
		{"deutan": -1},
		{"red": 0.5},
		{"protan": 0.5, "PROTAN": 0.5},
	}
	for _, m := range bad {
		if _, err := ParseParams(m); err == nil {
			t.Errorf("%v: expected error", m)
		}
	}
}

func TestChain(t *testing.T) {
	p := Params{Tritan: 0.7, Protan: 0.4, Deutan: 0}
	f, err := p.Chain()
	if err != nil {
		t.Fatal(err)
	}
	c := color.RGB{R: 0.9, G: 0.3, B: 0.6}

	sp, _ := NewSimulator(Protan, 0.4)
	st, _ := NewSimulator(Tritan, 0.7)
	want := st.Apply(sp.Apply(c))
	if got := f(c); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if !(Params{Deutan: 0}).IsZero() || p.IsZero() {
		t.Error("IsZero is wrong")
	}
	if _, err := (Params{Deutan: 2}).Chain(); err == nil {
		t.Error("invalid params accepted")
	}
}
