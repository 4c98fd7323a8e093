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

package main

import (
	"fmt"
	"io"
	"math"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/qualpal"
	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/internal/float"
)

// reporter writes human readable results.
type reporter struct {
	w        io.Writer
	p        *message.Printer
	swatches bool
	wp       color.WhitePoint
}

func newReporter(w io.Writer, swatches bool, wp color.WhitePoint) *reporter {
	return &reporter{
		w:        w,
		p:        message.NewPrinter(language.English),
		swatches: swatches,
		wp:       wp,
	}
}

// swatch returns a block of the given colour, using 24-bit ANSI escapes.
func swatch(c color.RGB) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m ", r>>8, g>>8, b>>8)
}

func (r *reporter) colorLine(c color.RGB, minDist float64) {
	s := qualpal.Describe(c, r.wp)
	prefix := ""
	if r.swatches {
		prefix = swatch(c)
	}
	fmt.Fprintf(r.w, "%s%s  hsl(%5s, %4s, %4s)  din99d(%6s, %6s, %6s)  min %s\n",
		prefix, s.Hex,
		float.Format(s.HSL.H, 1), float.Format(s.HSL.S, 2), float.Format(s.HSL.L, 2),
		float.Format(s.DIN99d.L, 1), float.Format(s.DIN99d.A, 1), float.Format(s.DIN99d.B, 1),
		float.Format(minDist, 2))
}

// palette reports a selected palette, together with the minimum distance of
// each colour to the others under normal vision.
func (r *reporter) palette(pal []color.RGB, numCandidates int, normal *qualpal.Analysis) {
	r.p.Fprintf(r.w, "selected %d of %d candidate colours\n", len(pal), numCandidates)
	for i, c := range pal {
		r.colorLine(c, normal.MinDistances[i])
	}
}

// analysis reports the result of [qualpal.Analyze].
func (r *reporter) analysis(pal []color.RGB, res map[string]*qualpal.Analysis) {
	names := maps.Keys(res)
	slices.SortFunc(names, func(a, b string) int {
		// normal vision first
		switch {
		case a == b:
			return 0
		case a == qualpal.Normal:
			return -1
		case b == qualpal.Normal:
			return 1
		case a < b:
			return -1
		default:
			return 1
		}
	})

	for k, name := range names {
		if k > 0 {
			fmt.Fprintln(r.w)
		}
		a := res[name]
		fmt.Fprintf(r.w, "%s vision:\n", name)
		for i, c := range pal {
			r.colorLine(c, a.MinDistances[i])
		}
		overall := a.Matrix.MinOffDiagonal()
		r.p.Fprintf(r.w, "smallest difference: %s\n", float.Format(overall, 2))
		if bg := a.BackgroundMinDistance; !math.IsNaN(bg) {
			r.p.Fprintf(r.w, "smallest difference to background: %s\n", float.Format(bg, 2))
		}
	}
}
