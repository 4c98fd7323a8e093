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

// Qualpal selects qualitative colour palettes from a set of candidate
// colours.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"seehuhn.de/go/qualpal"
	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/internal/buildinfo"
	"seehuhn.de/go/qualpal/internal/profile"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, errHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	}))
	logger.Debug("starting", "version", buildinfo.Short("qualpal"))

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("qualpal failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, out io.Writer, logger *slog.Logger) error {
	stop, err := profile.Start(cfg.CPUProfile, cfg.MemProfile, logger)
	if err != nil {
		return err
	}
	defer stop()

	if cfg.List {
		for _, name := range qualpal.PresetNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	wp := color.WhitePointD65
	if cfg.WhitePoint != "" {
		wp, err = color.ParseWhitePoint(cfg.WhitePoint)
		if err != nil {
			return err
		}
	}

	showSwatches, err := wantSwatches(cfg.Swatches, out)
	if err != nil {
		return err
	}
	rep := newReporter(out, showSwatches, wp)

	j, err := cfg.job()
	if err != nil {
		return err
	}

	if cfg.Analyze {
		colors := slices.Concat(j.fixed, j.candidates)
		res, err := qualpal.Analyze(colors, &qualpal.AnalyzeOptions{
			CVD:         cfg.CVD,
			Background:  j.background,
			Metric:      cfg.Metric,
			WhitePoint:  cfg.WhitePoint,
			MaxMemoryGB: cfg.MaxMemoryGB,
			Workers:     cfg.Workers,
		})
		if err != nil {
			return err
		}
		rep.analysis(colors, res)
		return nil
	}

	if cfg.N <= 0 {
		return fmt.Errorf("palette size -n must be positive, got %d", cfg.N)
	}
	logger.Debug("configuration", "cvd", cfg.cvdTypes(), "metric", cfg.Metric)

	pal, err := qualpal.SelectPalette(cfg.N, j.candidates, &qualpal.Options{
		CVD:         cfg.CVD,
		Background:  j.background,
		Metric:      cfg.Metric,
		Fixed:       j.fixed,
		MaxMemoryGB: cfg.MaxMemoryGB,
		WhitePoint:  cfg.WhitePoint,
		Workers:     cfg.Workers,
		MaxPasses:   cfg.MaxPasses,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	res, err := qualpal.Analyze(pal, &qualpal.AnalyzeOptions{
		CVD:        map[string]float64{},
		Background: j.background,
		Metric:     cfg.Metric,
		WhitePoint: cfg.WhitePoint,
		Workers:    cfg.Workers,
	})
	if err != nil {
		return err
	}
	rep.palette(pal, len(j.candidates), res[qualpal.Normal])
	return nil
}

// wantSwatches decides whether coloured swatches are shown.  In "auto" mode
// swatches are only used when writing to a terminal.
func wantSwatches(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid swatch mode %q (expected auto, always or never)", mode)
}
