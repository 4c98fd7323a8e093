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

// Package cvd simulates colour vision deficiencies.
//
// Protan, deutan and tritan deficiencies are simulated with the linear
// sRGB matrices of Machado, Oliveira and Fernandes (2009), "A Physiologically-
// based Model for Simulation of Color Vision Deficiency".  Severity 1
// corresponds to dichromacy, smaller values to anomalous trichromacy.
// Severities between the tabulated steps of 0.1 are handled by linear
// interpolation of the matrices.
package cvd

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/qualpal/color"
	"seehuhn.de/go/qualpal/internal/mat3"
)

// Type is a type of colour vision deficiency.
type Type int

// These are the supported deficiency types.
const (
	Protan Type = iota // red-weak
	Deutan             // green-weak
	Tritan             // blue-weak
)

// All lists the deficiency types in canonical order.
var All = []Type{Protan, Deutan, Tritan}

func (t Type) String() string {
	switch t {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) isValid() bool {
	return t >= Protan && t <= Tritan
}

// ParseType converts a deficiency name ("protan", "deutan" or "tritan") to
// a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "protan":
		return Protan, nil
	case "deutan":
		return Deutan, nil
	case "tritan":
		return Tritan, nil
	}
	return 0, fmt.Errorf("unknown CVD type %q (expected protan, deutan or tritan)", name)
}

// SeverityError is returned when a severity is outside [0, 1].
type SeverityError struct {
	Type     Type
	Severity float64
}

func (err *SeverityError) Error() string {
	return fmt.Sprintf("%s severity %g is outside the range [0, 1]", err.Type, err.Severity)
}

func checkSeverity(t Type, severity float64) error {
	if !(severity >= 0 && severity <= 1) {
		return &SeverityError{Type: t, Severity: severity}
	}
	return nil
}

// Simulator transforms colours to simulate one deficiency at a fixed
// severity.
type Simulator struct {
	Type     Type
	Severity float64

	m mat3.Matrix
}

// NewSimulator returns a simulator for the given deficiency.
// The severity must be in the range [0, 1].
func NewSimulator(t Type, severity float64) (*Simulator, error) {
	if !t.isValid() {
		return nil, fmt.Errorf("invalid CVD type %d", int(t))
	}
	if err := checkSeverity(t, severity); err != nil {
		return nil, err
	}
	return &Simulator{Type: t, Severity: severity, m: matrixFor(t, severity)}, nil
}

// Apply returns the colour c as perceived with the simulated deficiency.
// The result is clamped to the sRGB gamut.
func (s *Simulator) Apply(c color.RGB) color.RGB {
	r, g, b := c.Linear()
	r, g, b = s.m.Apply(r, g, b)
	return color.FromLinear(r, g, b)
}

// Simulate is a convenience wrapper around [NewSimulator] and
// [Simulator.Apply].
func Simulate(c color.RGB, t Type, severity float64) (color.RGB, error) {
	s, err := NewSimulator(t, severity)
	if err != nil {
		return color.RGB{}, err
	}
	return s.Apply(c), nil
}

// Params gives the severity for each deficiency type.
// Missing types have severity 0.
type Params map[Type]float64

// ParseParams converts a map from deficiency names to severities.
func ParseParams(m map[string]float64) (Params, error) {
	names := maps.Keys(m)
	slices.Sort(names)

	res := make(Params, len(m))
	for _, name := range names {
		t, err := ParseType(name)
		if err != nil {
			return nil, err
		}
		if _, dup := res[t]; dup {
			return nil, fmt.Errorf("duplicate CVD type %q", name)
		}
		res[t] = m[name]
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Validate checks that all types are known and all severities are in
// the range [0, 1].
func (p Params) Validate() error {
	for _, t := range p.Types() {
		if !t.isValid() {
			return fmt.Errorf("invalid CVD type %d", int(t))
		}
		if err := checkSeverity(t, p[t]); err != nil {
			return err
		}
	}
	return nil
}

// Types returns the types present in p, in canonical order.
func (p Params) Types() []Type {
	types := maps.Keys(p)
	slices.Sort(types)
	return types
}

// IsZero reports whether p does not change any colour.
func (p Params) IsZero() bool {
	for _, s := range p {
		if s != 0 {
			return false
		}
	}
	return true
}

// Chain returns a function which applies all deficiencies with non-zero
// severity, in the order protan, deutan, tritan.
func (p Params) Chain() (func(color.RGB) color.RGB, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var sims []*Simulator
	for _, t := range p.Types() {
		if p[t] == 0 {
			continue
		}
		s, err := NewSimulator(t, p[t])
		if err != nil {
			return nil, err
		}
		sims = append(sims, s)
	}
	return func(c color.RGB) color.RGB {
		for _, s := range sims {
			c = s.Apply(c)
		}
		return c
	}, nil
}
