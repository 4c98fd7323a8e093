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

// Package farthest selects maximally distinct subsets from a distance matrix.
//
// Choosing k of N points so that the minimum pairwise distance is as large
// as possible is NP-hard.  [Select] uses a deterministic local search: the
// initial selection consists of the first candidates in index order, and
// single-element swaps are applied until no swap increases the minimum
// distance of the swapped position.
package farthest

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/qualpal/distance"
)

// Problem describes a selection task.
type Problem struct {
	// Dist gives the pairwise distances between all items.
	Dist *distance.Matrix

	// Fixed lists items which are always part of the selection.
	// They appear first in the result, in the given order.
	Fixed []int

	// Anchors lists items which can never be selected, but from which all
	// selected items are kept away.  This is used for background colours.
	Anchors []int
}

// Options contains optional parameters for [Select].
type Options struct {
	// MaxPasses limits the number of passes of the local search.
	// Zero means that the search runs until convergence.
	MaxPasses int

	// Logger, if non-nil, receives debug output about the search.
	Logger *slog.Logger
}

// Result is the outcome of a selection.
type Result struct {
	// Indices lists the selected items.  Fixed items come first, followed
	// by the newly selected items in order of decreasing distinctiveness.
	Indices []int

	// Passes is the number of passes of the local search.
	Passes int

	// Swaps is the total number of swaps performed.
	Swaps int

	// Converged is false if the search was stopped by MaxPasses.
	Converged bool
}

// ErrTooFewCandidates is returned if there are not enough candidates to
// fill the requested number of slots.
var ErrTooFewCandidates = errors.New("not enough candidates")

// Select chooses n items (including the fixed items) with large pairwise
// distances.
//
// This is a pure function of its arguments; repeated calls give identical
// results.
func Select(p *Problem, n int, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	candidates, err := p.candidates(n)
	if err != nil {
		return nil, err
	}

	nFixed := len(p.Fixed)
	nFree := n - nFixed

	sel := make([]int, 0, n)
	sel = append(sel, p.Fixed...)
	sel = append(sel, candidates[:nFree]...)
	rest := candidates[nFree:]

	res := &Result{Converged: true}
	if nFree == 0 {
		res.Indices = sel
		return res, nil
	}

	s := &search{dist: p.Dist, sel: sel, rest: rest, anchors: p.Anchors}
	for {
		if opts.MaxPasses > 0 && res.Passes >= opts.MaxPasses {
			res.Converged = false
			break
		}
		swaps := s.pass(nFixed)
		res.Passes++
		res.Swaps += swaps
		if opts.Logger != nil {
			opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "local search pass",
				slog.Int("pass", res.Passes),
				slog.Int("swaps", swaps),
				slog.Float64("min", s.minFree(nFixed)))
		}
		if swaps == 0 {
			break
		}
	}

	s.sortFree(nFixed)
	res.Indices = s.sel
	return res, nil
}

// candidates checks the problem and returns the selectable items
// in index order.
func (p *Problem) candidates(n int) ([]int, error) {
	if p.Dist == nil {
		return nil, errors.New("missing distance matrix")
	}
	N := p.Dist.Size()
	used := make([]bool, N)
	mark := func(kind string, idx []int) error {
		for _, i := range idx {
			if i < 0 || i >= N {
				return fmt.Errorf("%s index %d out of range [0, %d)", kind, i, N)
			}
			if used[i] {
				return fmt.Errorf("%s index %d used more than once", kind, i)
			}
			used[i] = true
		}
		return nil
	}
	if err := mark("fixed", p.Fixed); err != nil {
		return nil, err
	}
	if err := mark("anchor", p.Anchors); err != nil {
		return nil, err
	}

	if n < len(p.Fixed) {
		return nil, fmt.Errorf("cannot select %d items with %d fixed items", n, len(p.Fixed))
	}

	var candidates []int
	for i, u := range used {
		if !u {
			candidates = append(candidates, i)
		}
	}
	if nFree := n - len(p.Fixed); nFree > len(candidates) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrTooFewCandidates, nFree, len(candidates))
	}
	return candidates, nil
}

type search struct {
	dist    *distance.Matrix
	sel     []int
	rest    []int
	anchors []int
}

// pass visits every free position once, in order, and replaces the item
// there by the best improving candidate.  The number of swaps is returned.
func (s *search) pass(nFixed int) int {
	swaps := 0
	for pos := nFixed; pos < len(s.sel); pos++ {
		best := s.contribution(s.sel[pos], pos)
		bestK := -1
		for k, cand := range s.rest {
			if c := s.contribution(cand, pos); c > best {
				best = c
				bestK = k
			}
		}
		if bestK >= 0 {
			s.sel[pos], s.rest[bestK] = s.rest[bestK], s.sel[pos]
			swaps++
		}
	}
	return swaps
}

// contribution returns the minimum distance from item to all selected
// items other than the one at position skip, and to all anchors.
func (s *search) contribution(item, skip int) float64 {
	row := s.dist.Row(item)
	res := math.Inf(1)
	for j, other := range s.sel {
		if j != skip {
			res = min(res, row[other])
		}
	}
	for _, a := range s.anchors {
		res = min(res, row[a])
	}
	return res
}

// minFree returns the smallest contribution of any free position.
func (s *search) minFree(nFixed int) float64 {
	res := math.Inf(1)
	for pos := nFixed; pos < len(s.sel); pos++ {
		res = min(res, s.contribution(s.sel[pos], pos))
	}
	return res
}

// sortFree orders the free items by decreasing minimum distance to the
// other selected items.  Anchors are not taken into account here.
func (s *search) sortFree(nFixed int) {
	type scored struct {
		idx   int
		score float64
	}
	free := make([]scored, 0, len(s.sel)-nFixed)
	for pos := nFixed; pos < len(s.sel); pos++ {
		row := s.dist.Row(s.sel[pos])
		score := math.Inf(1)
		for j, other := range s.sel {
			if j != pos {
				score = min(score, row[other])
			}
		}
		free = append(free, scored{s.sel[pos], score})
	}
	slices.SortStableFunc(free, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	for i, f := range free {
		s.sel[nFixed+i] = f.idx
	}
}
