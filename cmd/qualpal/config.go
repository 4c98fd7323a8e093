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
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/qualpal"
	"seehuhn.de/go/qualpal/color"
)

// config holds the settings of one run.  Values can come from a TOML file
// and from the command line, where the command line takes precedence.
type config struct {
	N           int                `toml:"n"`
	Palette     string             `toml:"palette"`
	Colors      []string           `toml:"colors"`
	Metric      string             `toml:"metric"`
	CVD         map[string]float64 `toml:"cvd"`
	Background  string             `toml:"background"`
	Fixed       []string           `toml:"fixed"`
	WhitePoint  string             `toml:"white_point"`
	MaxMemoryGB float64            `toml:"max_memory_gb"`
	Workers     int                `toml:"workers"`
	MaxPasses   int                `toml:"max_passes"`
	Analyze     bool               `toml:"analyze"`

	// command line only
	Verbose    bool   `toml:"-"`
	Swatches   string `toml:"-"`
	CPUProfile string `toml:"-"`
	MemProfile string `toml:"-"`
	List       bool   `toml:"-"`
}

func loadConfig(fname string) (*config, error) {
	cfg := &config{}
	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown settings %s", fname, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// errHelp is returned by parseArgs if -h was given.
var errHelp = flag.ErrHelp

// parseArgs reads the command line and the optional configuration file.
func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("qualpal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cli config
	var cvdArg, fixedArg, configFile string
	fs.IntVar(&cli.N, "n", 0, "number of colours to select")
	fs.StringVar(&cli.Palette, "palette", "", "use the preset `name` (\"collection:palette\") as candidates")
	fs.StringVar(&cli.Metric, "metric", "", "colour difference `metric`: din99d, cie76 or ciede2000")
	fs.StringVar(&cvdArg, "cvd", "", "colour vision deficiencies, e.g. `protan=1,deutan=0.5`")
	fs.StringVar(&cli.Background, "bg", "", "background `colour`")
	fs.StringVar(&fixedArg, "fixed", "", "comma separated `colours` which must be included")
	fs.StringVar(&cli.WhitePoint, "white", "", "white point: D65, D50, D55, A or E")
	fs.Float64Var(&cli.MaxMemoryGB, "mem", 0, "memory limit for the distance matrix, in `GiB`")
	fs.IntVar(&cli.Workers, "workers", 0, "number of goroutines for the distance matrix")
	fs.IntVar(&cli.MaxPasses, "max-passes", 0, "limit the number of local search passes")
	fs.BoolVar(&cli.Analyze, "analyze", false, "analyse the given colours instead of selecting")
	fs.StringVar(&configFile, "config", "", "read settings from the TOML `file`")
	fs.BoolVar(&cli.Verbose, "v", false, "show debug output")
	fs.StringVar(&cli.Swatches, "swatches", "auto", "show colour swatches: auto, always or never")
	fs.BoolVar(&cli.List, "list", false, "list the preset palettes")
	fs.StringVar(&cli.CPUProfile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&cli.MemProfile, "memprofile", "", "write memory profile to `file`")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "qualpal: select distinct colours for categorical data\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  qualpal [options] [colour ...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  qualpal -n 4 -palette ColorBrewer:Set3\n")
		fmt.Fprintf(stderr, "  qualpal -n 3 -cvd deutan=1 -bg white '#e41a1c' '#377eb8' '#4daf4a' '#984ea3'\n")
		fmt.Fprintf(stderr, "  qualpal -analyze '#e41a1c' '#377eb8' '#4daf4a'\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := mergeConfig(fs, &cli, configFile, cvdArg, fixedArg)
	if err != nil {
		fmt.Fprintln(stderr, "qualpal:", err)
		return nil, err
	}
	return cfg, nil
}

// mergeConfig combines the configuration file with the flags which were
// set explicitly on the command line.
func mergeConfig(fs *flag.FlagSet, cli *config, configFile, cvdArg, fixedArg string) (*config, error) {
	cfg := &config{}
	if configFile != "" {
		var err error
		cfg, err = loadConfig(configFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = cli.N
		case "palette":
			cfg.Palette = cli.Palette
		case "metric":
			cfg.Metric = cli.Metric
		case "cvd":
			var cvd map[string]float64
			cvd, err = parseCVD(cvdArg)
			if err == nil {
				cfg.CVD = cvd
			}
		case "bg":
			cfg.Background = cli.Background
		case "fixed":
			cfg.Fixed = splitList(fixedArg)
		case "white":
			cfg.WhitePoint = cli.WhitePoint
		case "mem":
			cfg.MaxMemoryGB = cli.MaxMemoryGB
		case "workers":
			cfg.Workers = cli.Workers
		case "max-passes":
			cfg.MaxPasses = cli.MaxPasses
		case "analyze":
			cfg.Analyze = cli.Analyze
		}
	})
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		cfg.Colors = fs.Args()
	}

	cfg.Verbose = cli.Verbose
	cfg.Swatches = cli.Swatches
	cfg.CPUProfile = cli.CPUProfile
	cfg.MemProfile = cli.MemProfile
	cfg.List = cli.List
	return cfg, nil
}

// parseCVD parses a list of the form "protan=1,deutan=0.5".
func parseCVD(s string) (map[string]float64, error) {
	res := make(map[string]float64)
	for _, item := range splitList(s) {
		name, val, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid CVD setting %q, expected type=severity", item)
		}
		severity, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CVD severity %q: %w", val, err)
		}
		res[strings.TrimSpace(name)] = severity
	}
	return res, nil
}

func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}

// job is a fully resolved request.
type job struct {
	candidates []color.RGB
	fixed      []color.RGB
	background *color.RGB
}

func (cfg *config) job() (*job, error) {
	j := &job{}

	var err error
	switch {
	case cfg.Palette != "" && len(cfg.Colors) > 0:
		return nil, errors.New("use either a preset palette or a list of colours, not both")
	case cfg.Palette != "":
		j.candidates, err = qualpal.Preset(cfg.Palette)
	case len(cfg.Colors) > 0:
		j.candidates, err = qualpal.ParseColors(cfg.Colors)
	default:
		return nil, errors.New("no candidate colours given (use -palette or list colours)")
	}
	if err != nil {
		return nil, err
	}

	j.fixed, err = qualpal.ParseColors(cfg.Fixed)
	if err != nil {
		return nil, err
	}

	if cfg.Background != "" {
		bg, err := color.Parse(cfg.Background)
		if err != nil {
			return nil, err
		}
		j.background = &bg
	}
	return j, nil
}

func (cfg *config) cvdTypes() []string {
	names := maps.Keys(cfg.CVD)
	slices.Sort(names)
	return names
}
