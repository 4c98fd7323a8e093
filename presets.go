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
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/qualpal/color"
)

// presets contains well-known qualitative palettes, keyed by collection
// and palette name.
var presets = map[string]map[string][]string{
	"ColorBrewer": {
		"Accent": {"#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0", "#f0027f", "#bf5b17", "#666666"},
		"Dark2":  {"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02", "#a6761d", "#666666"},
		"Paired": {
			"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99", "#e31a1c",
			"#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
		},
		"Pastel1": {"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6", "#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2"},
		"Pastel2": {"#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4", "#e6f5c9", "#fff2ae", "#f1e2cc", "#cccccc"},
		"Set1":    {"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999"},
		"Set2":    {"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f", "#e5c494", "#b3b3b3"},
		"Set3": {
			"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
			"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
		},
	},
	"OkabeIto": {
		"OkabeIto": {"#e69f00", "#56b4e9", "#009e73", "#f0e442", "#0072b2", "#d55e00", "#cc79a7", "#999999", "#000000"},
	},
	"Tableau": {
		"Tableau10": {
			"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
			"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
		},
	},
}

// Preset returns the colours of a built-in palette.  The name has the form
// "collection:palette", for example "ColorBrewer:Set2".
func Preset(name string) ([]color.RGB, error) {
	collection, palette, ok := strings.Cut(name, ":")
	if !ok {
		return nil, argErrorf("palette", "%q, expected the form \"collection:palette\"", name)
	}
	pals, ok := presets[collection]
	if !ok {
		return nil, argErrorf("palette", "unknown collection %q", collection)
	}
	hex, ok := pals[palette]
	if !ok {
		return nil, argErrorf("palette", "palette %q not found in collection %q", palette, collection)
	}
	return ParseColors(hex)
}

// PresetNames returns the names of all built-in palettes, in sorted order.
func PresetNames() []string {
	var names []string
	collections := maps.Keys(presets)
	slices.Sort(collections)
	for _, collection := range collections {
		pals := maps.Keys(presets[collection])
		slices.Sort(pals)
		for _, pal := range pals {
			names = append(names, fmt.Sprintf("%s:%s", collection, pal))
		}
	}
	return names
}
