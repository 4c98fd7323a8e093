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

// Package qualpal generates qualitative colour palettes.
//
// Given a pool of candidate colours, the package selects a subset of colours
// which are as distinct from each other as possible, using a perceptual
// colour difference metric.  Colour vision deficiencies and a background
// colour can be taken into account.
//
// A palette is selected by [SelectPalette]:
//
//	pool, err := qualpal.Preset("ColorBrewer:Set3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pal, err := qualpal.SelectPalette(5, pool, &qualpal.Options{
//	    CVD:        map[string]float64{"deutan": 0.7},
//	    Background: &color.RGB{R: 1, G: 1, B: 1},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range pal {
//	    fmt.Println(c.Hex())
//	}
//
// An existing palette can be extended using [Extend], and the
// distinctiveness of a finished palette can be inspected with [Analyze].
//
// The building blocks are available as separate packages:
//
//   - [seehuhn.de/go/qualpal/color] converts between colour spaces,
//   - [seehuhn.de/go/qualpal/metric] implements colour difference formulas,
//   - [seehuhn.de/go/qualpal/cvd] simulates colour vision deficiencies,
//   - [seehuhn.de/go/qualpal/distance] builds distance matrices,
//   - [seehuhn.de/go/qualpal/farthest] implements the subset selection.
package qualpal
