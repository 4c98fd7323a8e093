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
	"math"

	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/cvd"
	"seehuhn.de/go/qualpal/distance"
	"seehuhn.de/go/qualpal/metric"
)

// Normal is the key of the [Analyze] result for normal colour vision.
const Normal = "normal"

// Analysis describes how distinct the colours of a palette are, for one
// type of colour vision.
type Analysis struct {
	// Matrix contains the pairwise differences of the palette colours.
	Matrix *distance.Matrix

	// MinDistances gives, for each colour, the smallest difference to any
	// other colour of the palette.  For palettes with a single colour
	// the value is NaN.
	MinDistances []float64

	// BackgroundMinDistance is the smallest difference between a palette
	// colour and the background, or NaN if no background was given.
	BackgroundMinDistance float64
}

// defaultAnalyzeCVD lists the deficiencies analysed when none are
// specified.
var defaultAnalyzeCVD = map[string]float64{
	"protan": 1,
	"deutan": 1,
	"tritan": 1,
}

// Analyze computes colour differences within a palette.  The result
// contains one entry for normal vision, keyed [Normal], and one entry for
// each deficiency listed in opts.CVD, keyed by the deficiency name.
func Analyze(colors []color.RGB, opts *AnalyzeOptions) (map[string]*Analysis, error) {
	if opts == nil {
		opts = &AnalyzeOptions{}
	}
	cvdParams := opts.CVD
	if cvdParams == nil {
		cvdParams = defaultAnalyzeCVD
	}
	s, err := resolve(opts.Metric, opts.WhitePoint, cvdParams, opts.MaxMemoryGB, opts.Workers)
	if err != nil {
		return nil, err
	}

	if len(colors) == 0 {
		return nil, argErrorf("colors", "at least one colour is required")
	}
	if err := checkColors("colors", colors); err != nil {
		return nil, err
	}
	if opts.Background != nil {
		if err := checkColors("background", []color.RGB{*opts.Background}); err != nil {
			return nil, err
		}
	}
	if err := s.matrix.Check(len(colors)); err != nil {
		return nil, err
	}

	m, err := metric.New(s.kind, s.wp)
	if err != nil {
		return nil, err
	}

	res := make(map[string]*Analysis, len(s.cvd)+1)
	res[Normal], err = s.analyze(colors, opts.Background, m, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range s.cvd.Types() {
		sim, err := cvd.NewSimulator(t, s.cvd[t])
		if err != nil {
			return nil, wrapArgError("cvd", err)
		}
		res[t.String()], err = s.analyze(colors, opts.Background, m, sim)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *settings) analyze(colors []color.RGB, bg *color.RGB, m metric.Metric, sim *cvd.Simulator) (*Analysis, error) {
	seen := make([]color.RGB, len(colors))
	for i, c := range colors {
		if sim != nil {
			c = sim.Apply(c)
		}
		seen[i] = c
	}

	dist, err := buildMatrix(s.kind, s.wp, seen, s.matrix)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Matrix:                dist,
		MinDistances:          make([]float64, len(colors)),
		BackgroundMinDistance: math.NaN(),
	}
	for i := range colors {
		if len(colors) > 1 {
			a.MinDistances[i] = dist.RowMin(i)
		} else {
			a.MinDistances[i] = math.NaN()
		}
	}

	if bg != nil {
		b := *bg
		if sim != nil {
			b = sim.Apply(b)
		}
		bgMin := math.Inf(1)
		for _, c := range seen {
			bgMin = min(bgMin, m.Difference(c, b))
		}
		a.BackgroundMinDistance = bgMin
	}
	return a, nil
}
