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
	"log/slog"
	"math"

	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/cvd"
	"seehuhn.de/go/qualpal/distance"
	"seehuhn.de/go/qualpal/metric"
)

// Options contains optional parameters for [SelectPalette] and [Extend].
// A nil *Options is equivalent to the zero value.
type Options struct {
	// CVD maps deficiency types ("protan", "deutan", "tritan") to severities
	// in the range [0, 1].  If set, colours are chosen to be distinct
	// for viewers with the given deficiencies.
	CVD map[string]float64

	// Background, if set, is a colour which the palette should be
	// distinct from.  The background itself is never selected.
	Background *color.RGB

	// Metric is the colour difference formula: "ciede2000" (the default),
	// "din99d" or "cie76".
	Metric string

	// Fixed lists colours which must be part of the palette.  These form
	// the start of the result, in the given order.
	Fixed []color.RGB

	// MaxMemoryGB limits the size of the distance matrix.
	// The default is 1 GiB.
	MaxMemoryGB float64

	// WhitePoint is the reference white: "D65" (the default), "D50",
	// "D55", "A" or "E".
	WhitePoint string

	// Workers is the number of goroutines used to compute the distance
	// matrix.  The default is half the number of CPUs.
	Workers int

	// MaxPasses limits the number of passes of the local search.
	// Zero means no limit.
	MaxPasses int

	// Logger, if non-nil, receives debug output.
	Logger *slog.Logger
}

// AnalyzeOptions contains optional parameters for [Analyze].
// A nil *AnalyzeOptions is equivalent to the zero value.
type AnalyzeOptions struct {
	// CVD maps deficiency types to severities.  Each listed type is
	// analysed separately.  If CVD is nil, protan, deutan and tritan
	// at severity 1 are used.
	CVD map[string]float64

	// Background, if set, is compared to all palette colours.
	Background *color.RGB

	Metric      string
	WhitePoint  string
	MaxMemoryGB float64
	Workers     int
}

// settings holds validated options.
type settings struct {
	kind   metric.Kind
	wp     color.WhitePoint
	cvd    cvd.Params
	matrix distance.Config
	logger *slog.Logger
}

func resolve(metricName, wpName string, cvdParams map[string]float64, maxMem float64, workers int) (*settings, error) {
	s := &settings{
		kind:   metric.KindCIEDE2000,
		wp:     color.WhitePointD65,
		matrix: distance.DefaultConfig(),
	}

	if metricName != "" {
		kind, err := metric.ParseKind(metricName)
		if err != nil {
			return nil, wrapArgError("metric", err)
		}
		s.kind = kind
	}

	if wpName != "" {
		wp, err := color.ParseWhitePoint(wpName)
		if err != nil {
			return nil, wrapArgError("white point", err)
		}
		s.wp = wp
	}

	params, err := cvd.ParseParams(cvdParams)
	if err != nil {
		return nil, wrapArgError("cvd", err)
	}
	s.cvd = params

	if maxMem != 0 {
		if !(maxMem > 0) || math.IsInf(maxMem, 1) {
			return nil, argErrorf("memory limit", "%g GiB, expected a positive number", maxMem)
		}
		s.matrix.MaxMemoryGB = maxMem
	}
	if workers < 0 {
		return nil, argErrorf("workers", "%d, expected a non-negative number", workers)
	} else if workers > 0 {
		s.matrix.Workers = workers
	}

	return s, nil
}

// checkColors verifies that all colours are inside the sRGB gamut.
func checkColors(name string, colors []color.RGB) error {
	for i, c := range colors {
		if !c.IsValid() {
			return argErrorf(name, "colour %d is %v, components must be in [0, 1]",
				i, [3]float64{c.R, c.G, c.B})
		}
	}
	return nil
}
