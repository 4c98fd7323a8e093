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

package qualpal

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/metric"
)

var (
	black   = color.RGB{}
	white   = color.RGB{R: 1, G: 1, B: 1}
	darkRed = color.RGB{R: 0.5}
	red     = color.RGB{R: 1}
	green   = color.RGB{G: 1}
	blue    = color.RGB{B: 1}
)

func randomColors(rng *rand.Rand, n int) []color.RGB {
	res := make([]color.RGB, n)
	for i := range res {
		res[i] = color.RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	return res
}

func TestExtremes(t *testing.T) {
	got, err := SelectPalette(2, []color.RGB{black, white, darkRed}, &Options{Metric: "cie76"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]color.RGB{black, white}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestFixedInCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	candidates := randomColors(rng, 30)
	c0 := candidates[7]

	got, err := SelectPalette(3, candidates, &Options{Fixed: []color.RGB{c0}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d colours, want 3", len(got))
	}
	if got[0] != c0 {
		t.Errorf("got %v first, want %v", got[0], c0)
	}
	if slices.Contains(got[1:], c0) {
		t.Errorf("fixed colour %v is duplicated: %v", c0, got)
	}
}

func TestCardinality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	candidates := randomColors(rng, 60)
	for _, metricName := range []string{"ciede2000", "din99d", "cie76"} {
		for nFixed := range 3 {
			fixed := randomColors(rng, nFixed)
			for _, n := range []int{nFixed, nFixed + 1, 8} {
				got, err := SelectPalette(n, candidates, &Options{
					Metric: metricName,
					Fixed:  fixed,
					CVD:    map[string]float64{"deutan": 0.5},
				})
				if err != nil {
					t.Fatal(err)
				}
				if len(got) != n {
					t.Fatalf("%s: got %d colours, want %d", metricName, len(got), n)
				}
				if d := cmp.Diff(fixed, got[:nFixed]); d != "" {
					t.Errorf("%s: fixed colours (-want +got):\n%s", metricName, d)
				}
				for _, c := range got[nFixed:] {
					if !slices.Contains(candidates, c) {
						t.Errorf("%s: %v is not a candidate", metricName, c)
					}
				}
			}
		}
	}
}

func TestBackground(t *testing.T) {
	candidates := []color.RGB{white, black, red, blue, {R: 0.95, G: 0.95, B: 0.95}}
	got, err := SelectPalette(3, candidates, &Options{Background: &white})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range got {
		if c == white || c == candidates[4] {
			t.Errorf("colour %v too close to the background was selected", c)
		}
	}
}

func TestExtend(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	candidates := randomColors(rng, 40)
	palette := []color.RGB{red, blue}

	got, err := Extend(palette, 5, candidates, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d colours", len(got))
	}
	if d := cmp.Diff(palette, got[:2]); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	got, err = Extend(palette, 2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(palette, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSelectErrors(t *testing.T) {
	candidates := []color.RGB{black, white, red, green}
	type testCase struct {
		n    int
		cand []color.RGB
		opts *Options
	}
	cases := []testCase{
		{1, candidates, &Options{Fixed: []color.RGB{red, green}}},
		{5, candidates, nil},
		{-1, candidates, nil},
		{2, candidates, &Options{CVD: map[string]float64{"protan": 1.5}}},
		{2, candidates, &Options{CVD: map[string]float64{"protan": -0.1}}},
		{2, candidates, &Options{CVD: map[string]float64{"monochrome": 1}}},
		{2, candidates, &Options{Metric: "cie94"}},
		{2, candidates, &Options{WhitePoint: "F11"}},
		{2, candidates, &Options{MaxMemoryGB: -1}},
		{2, candidates, &Options{Workers: -2}},
		{2, []color.RGB{black, {R: 1.5}}, nil},
		{2, candidates, &Options{Background: &color.RGB{G: -1}}},
	}
	for i, c := range cases {
		_, err := SelectPalette(c.n, c.cand, c.opts)
		if err == nil {
			t.Errorf("%d: expected error", i)
			continue
		}
		if !IsInvalidArgument(err) {
			t.Errorf("%d: expected argument error, got %v", i, err)
		}
		if IsResourceLimit(err) {
			t.Errorf("%d: unexpected resource limit error", i)
		}
	}
}

func TestMemoryGuard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	candidates := randomColors(rng, 2000)
	_, err := SelectPalette(4, candidates, &Options{MaxMemoryGB: 0.01})
	if !IsResourceLimit(err) {
		t.Fatalf("expected resource limit error, got %v", err)
	}
	if IsInvalidArgument(err) {
		t.Error("resource limit reported as invalid argument")
	}
	if !strings.Contains(err.Error(), "GiB") {
		t.Errorf("error message %q does not report the size", err)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := SelectPalette(2, []color.RGB{black, white, red, blue}, &Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"selecting palette", "local search pass", "palette selected"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log output lacks %q", msg)
		}
	}
}

func TestAnalyze(t *testing.T) {
	colors := []color.RGB{red, green, blue}
	res, err := Analyze(colors, nil)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for k := range res {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if d := cmp.Diff([]string{"deutan", "normal", "protan", "tritan"}, keys); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	m := metric.NewCIEDE2000Default()
	normal := res[Normal]
	for i := range colors {
		for j := range colors {
			want := m.Difference(colors[i], colors[j])
			if got := normal.Matrix.At(i, j); math.Abs(got-want) > 1e-12 {
				t.Errorf("(%d, %d): got %g, want %g", i, j, got, want)
			}
		}
	}
	wantMin := math.Min(m.Difference(red, green), m.Difference(red, blue))
	if math.Abs(normal.MinDistances[0]-wantMin) > 1e-12 {
		t.Errorf("got %g, want %g", normal.MinDistances[0], wantMin)
	}
	if !math.IsNaN(normal.BackgroundMinDistance) {
		t.Errorf("got background distance %g", normal.BackgroundMinDistance)
	}

	// red and green are harder to distinguish for deuteranopes
	if res["deutan"].Matrix.At(0, 1) >= normal.Matrix.At(0, 1) {
		t.Errorf("deutan red/green difference %g is not smaller than %g",
			res["deutan"].Matrix.At(0, 1), normal.Matrix.At(0, 1))
	}
}

func TestAnalyzeOptions(t *testing.T) {
	res, err := Analyze([]color.RGB{red, black}, &AnalyzeOptions{
		CVD:        map[string]float64{"tritan": 0},
		Background: &white,
		Metric:     "cie76",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res["tritan"] == nil {
		t.Fatalf("got %d entries", len(res))
	}
	m := &metric.CIE76{WhitePoint: color.WhitePointD65}
	want := min(m.Difference(red, white), m.Difference(black, white))
	if got := res[Normal].BackgroundMinDistance; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %g, want %g", got, want)
	}
	if d := cmp.Diff(res[Normal].MinDistances, res["tritan"].MinDistances, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("severity 0 changed the distances (-normal +tritan):\n%s", d)
	}

	single, err := Analyze([]color.RGB{red}, &AnalyzeOptions{CVD: map[string]float64{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(single) != 1 || !math.IsNaN(single[Normal].MinDistances[0]) {
		t.Errorf("unexpected result for a single colour: %+v", single[Normal])
	}

	if _, err := Analyze(nil, nil); !IsInvalidArgument(err) {
		t.Errorf("expected argument error, got %v", err)
	}
	if _, err := Analyze([]color.RGB{red}, &AnalyzeOptions{CVD: map[string]float64{"protan": 2}}); !IsInvalidArgument(err) {
		t.Errorf("expected argument error, got %v", err)
	}
}

func TestPreset(t *testing.T) {
	set1, err := Preset("ColorBrewer:Set1")
	if err != nil {
		t.Fatal(err)
	}
	if len(set1) != 9 || set1[0].Hex() != "#e41a1c" {
		t.Errorf("got %v", set1)
	}

	for _, name := range PresetNames() {
		pal, err := Preset(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if len(pal) < 8 {
			t.Errorf("%s: only %d colours", name, len(pal))
		}
	}

	for _, name := range []string{"Set1", "ColorBrewer:Set9", "Viridis:Set1"} {
		if _, err := Preset(name); !IsInvalidArgument(err) {
			t.Errorf("%s: expected argument error, got %v", name, err)
		}
	}

	pal, err := SelectPalette(4, set1, &Options{Metric: "din99d"})
	if err != nil {
		t.Fatal(err)
	}
	if len(pal) != 4 {
		t.Errorf("got %d colours", len(pal))
	}
}

func TestParseColors(t *testing.T) {
	got, err := ParseColors([]string{"#f00", "#00FF00", "blue"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]color.RGB{red, green, blue}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if _, err := ParseColors([]string{"#12345"}); !IsInvalidArgument(err) {
		t.Errorf("expected argument error, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe(red, color.WhitePointD65)
	if s.Hex != "#ff0000" {
		t.Errorf("got %q", s.Hex)
	}
	if s.HSL != (color.HSL{H: 0, S: 1, L: 0.5}) {
		t.Errorf("got %v", s.HSL)
	}
	if math.Abs(s.DIN99d.L-57.0283185307) > 1e-6 {
		t.Errorf("got %v", s.DIN99d)
	}
}
