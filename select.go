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
	"context"
	"log/slog"
	"slices"

	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/distance"
	"seehuhn.de/go/qualpal/farthest"
	"seehuhn.de/go/qualpal/metric"
)

// SelectPalette chooses n colours from the candidates, such that the chosen
// colours are as distinct as possible.
//
// If opts.Fixed is non-empty, these colours are included first and only
// n-len(opts.Fixed) colours are taken from the candidates.  The remaining
// colours are ordered by decreasing distinctiveness.  Candidates which equal
// one of the fixed colours are ignored.
//
// If a colour vision deficiency is configured, all colours are compared as
// they appear with this deficiency.  The returned colours are always the
// original candidate colours.
func SelectPalette(n int, candidates []color.RGB, opts *Options) ([]color.RGB, error) {
	if opts == nil {
		opts = &Options{}
	}
	return selectColors(n, candidates, opts.Fixed, opts)
}

// Extend adds colours from the candidates to an existing palette, until the
// palette has n colours.  The existing colours, followed by any colours in
// opts.Fixed, form the start of the result.
func Extend(palette []color.RGB, n int, candidates []color.RGB, opts *Options) ([]color.RGB, error) {
	if opts == nil {
		opts = &Options{}
	}
	fixed := make([]color.RGB, 0, len(palette)+len(opts.Fixed))
	fixed = append(fixed, palette...)
	fixed = append(fixed, opts.Fixed...)
	return selectColors(n, candidates, fixed, opts)
}

func selectColors(n int, candidates, fixed []color.RGB, opts *Options) ([]color.RGB, error) {
	s, err := resolve(opts.Metric, opts.WhitePoint, opts.CVD, opts.MaxMemoryGB, opts.Workers)
	if err != nil {
		return nil, err
	}
	s.logger = opts.Logger

	if n < 0 {
		return nil, argErrorf("n", "%d, expected a non-negative number", n)
	}
	if n < len(fixed) {
		return nil, argErrorf("n", "%d is smaller than the number of fixed colours (%d)", n, len(fixed))
	}
	if err := checkColors("fixed", fixed); err != nil {
		return nil, err
	}
	if err := checkColors("candidates", candidates); err != nil {
		return nil, err
	}
	if opts.Background != nil {
		if err := checkColors("background", []color.RGB{*opts.Background}); err != nil {
			return nil, err
		}
	}

	free := make([]color.RGB, 0, len(candidates))
	for _, c := range candidates {
		if !slices.Contains(fixed, c) {
			free = append(free, c)
		}
	}
	nFree := n - len(fixed)
	if nFree > len(free) {
		return nil, argErrorf("n", "%d new colours requested, but only %d candidates are available",
			nFree, len(free))
	}
	if nFree == 0 {
		return slices.Clone(fixed), nil
	}

	pool := make([]color.RGB, 0, len(fixed)+len(free)+1)
	pool = append(pool, fixed...)
	pool = append(pool, free...)
	var anchors []int
	if opts.Background != nil {
		anchors = append(anchors, len(pool))
		pool = append(pool, *opts.Background)
	}

	if err := s.matrix.Check(len(pool)); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "selecting palette",
			slog.Int("n", n),
			slog.Int("fixed", len(fixed)),
			slog.Int("candidates", len(free)),
			slog.Bool("background", opts.Background != nil),
			slog.String("metric", s.kind.String()))
	}

	dist, err := s.distances(pool)
	if err != nil {
		return nil, err
	}

	problem := &farthest.Problem{
		Dist:    dist,
		Fixed:   make([]int, len(fixed)),
		Anchors: anchors,
	}
	for i := range problem.Fixed {
		problem.Fixed[i] = i
	}
	res, err := farthest.Select(problem, n, &farthest.Options{
		MaxPasses: opts.MaxPasses,
		Logger:    s.logger,
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "palette selected",
			slog.Int("passes", res.Passes),
			slog.Int("swaps", res.Swaps),
			slog.Bool("converged", res.Converged))
	}

	out := make([]color.RGB, len(res.Indices))
	for i, idx := range res.Indices {
		out[i] = pool[idx]
	}
	return out, nil
}

// distances applies the configured colour vision deficiencies to the colours
// and computes the matrix of pairwise differences.
func (s *settings) distances(colors []color.RGB) (*distance.Matrix, error) {
	simulate, err := s.cvd.Chain()
	if err != nil {
		return nil, wrapArgError("cvd", err)
	}
	seen := make([]color.RGB, len(colors))
	for i, c := range colors {
		seen[i] = simulate(c)
	}
	return buildMatrix(s.kind, s.wp, seen, s.matrix)
}

// buildMatrix converts the colours into the native space of the metric once,
// and then computes all pairwise differences.
func buildMatrix(kind metric.Kind, wp color.WhitePoint, colors []color.RGB, cfg distance.Config) (*distance.Matrix, error) {
	if err := cfg.Check(len(colors)); err != nil {
		return nil, err
	}

	switch kind {
	case metric.KindDIN99d:
		m := metric.NewDIN99d()
		m.WhitePoint = wp
		pts := make([]color.DIN99d, len(colors))
		for i, c := range colors {
			pts[i] = c.XYZ().DIN99d(wp)
		}
		return distance.Build(pts, m.Delta, cfg)

	case metric.KindCIE76:
		m := &metric.CIE76{WhitePoint: wp}
		return distance.Build(toLab(colors, wp), m.Delta, cfg)

	default:
		m := metric.NewCIEDE2000Default()
		m.WhitePoint = wp
		return distance.Build(toLab(colors, wp), m.Delta, cfg)
	}
}

func toLab(colors []color.RGB, wp color.WhitePoint) []color.Lab {
	pts := make([]color.Lab, len(colors))
	for i, c := range colors {
		pts[i] = c.XYZ().Lab(wp)
	}
	return pts
}
