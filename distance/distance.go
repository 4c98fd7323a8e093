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

// Package distance computes matrices of pairwise colour differences.
//
// The matrix for n colours needs n²·8 bytes.  [Build] checks this against a
// configurable limit before allocating, so that large candidate pools fail
// early with a [*MemoryLimitError] instead of exhausting memory.
package distance

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Matrix is a symmetric matrix of pairwise distances with zero diagonal.
type Matrix struct {
	n    int
	data []float64
}

// Size returns the number of rows (and columns) of the matrix.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the distance between items i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i of the matrix.  The returned slice must not be
// modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// RowMin returns the smallest distance from item i to any other item.
// If the matrix has only one row, +Inf is returned.
func (m *Matrix) RowMin(i int) float64 {
	res := math.Inf(1)
	for j, d := range m.Row(i) {
		if j != i && d < res {
			res = d
		}
	}
	return res
}

// MinOffDiagonal returns the smallest distance between two different items.
// If the matrix has only one row, +Inf is returned.
func (m *Matrix) MinOffDiagonal() float64 {
	res := math.Inf(1)
	for i := range m.n {
		for j := i + 1; j < m.n; j++ {
			res = min(res, m.data[i*m.n+j])
		}
	}
	return res
}

// FromRows constructs a matrix from explicitly given rows.  The rows must
// form a square, symmetric matrix with zero diagonal.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	m := &Matrix{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has length %d, expected %d", i, len(row), n)
		}
		copy(m.data[i*n:], row)
	}
	for i := range n {
		if m.At(i, i) != 0 {
			return nil, fmt.Errorf("diagonal entry (%d, %d) is %g, expected 0", i, i, m.At(i, i))
		}
		for j := range i {
			if m.At(i, j) != m.At(j, i) {
				return nil, fmt.Errorf("entries (%d, %d) and (%d, %d) differ", i, j, j, i)
			}
		}
	}
	return m, nil
}

// Config controls the construction of distance matrices.
type Config struct {
	// Workers is the number of goroutines used to fill the matrix.
	// Values <= 0 select the default.
	Workers int

	// MaxMemoryGB is the largest matrix size, in GiB, which may be
	// allocated.  Values <= 0 select the default of 1 GiB.
	MaxMemoryGB float64
}

// DefaultConfig returns the default configuration.
// This uses half of the available CPUs, and limits matrices to 1 GiB.
func DefaultConfig() Config {
	return Config{
		Workers:     DefaultWorkers(),
		MaxMemoryGB: 1,
	}
}

// DefaultWorkers returns the default number of worker goroutines.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()/2)
}

const gib = 1 << 30

// EstimateBytes returns the memory needed for the distance matrix of n
// colours.
func EstimateBytes(n int) float64 {
	return float64(n) * float64(n) * 8
}

// Check verifies that a matrix for n colours fits into the memory limit.
func (cfg Config) Check(n int) error {
	limit := cfg.MaxMemoryGB
	if limit <= 0 {
		limit = 1
	}
	est := EstimateBytes(n)
	if est > limit*gib {
		return &MemoryLimitError{N: n, EstimatedGB: est / gib, LimitGB: limit}
	}
	return nil
}

// Build computes the matrix of pairwise differences between the given
// colours.  Entry (i, j) is diff(colors[i], colors[j]) for i < j, mirrored
// to (j, i).  The function diff must be safe for concurrent use.
//
// The result does not depend on the number of workers.
func Build[C any](colors []C, diff func(a, b C) float64, cfg Config) (*Matrix, error) {
	n := len(colors)
	if n == 0 {
		return nil, ErrEmpty
	}
	if err := cfg.Check(n); err != nil {
		return nil, err
	}

	m := &Matrix{n: n, data: make([]float64, n*n)}

	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if workers == 1 || n < 64 {
		for i := range n {
			fillRow(m, i, colors, diff)
		}
		return m, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n - 1 {
		g.Go(func() error {
			fillRow(m, i, colors, diff)
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return m, nil
}

// fillRow computes the entries (i, j) and (j, i) for all j > i.
func fillRow[C any](m *Matrix, i int, colors []C, diff func(a, b C) float64) {
	n := m.n
	for j := i + 1; j < n; j++ {
		d := diff(colors[i], colors[j])
		m.data[i*n+j] = d
		m.data[j*n+i] = d
	}
}

// ErrEmpty is returned by [Build] when no colours are given.
var ErrEmpty = errors.New("at least one colour is required")

// MemoryLimitError is returned when a distance matrix would exceed the
// configured memory limit.
type MemoryLimitError struct {
	N           int
	EstimatedGB float64
	LimitGB     float64
}

func (err *MemoryLimitError) Error() string {
	return fmt.Sprintf("distance matrix for %d colours needs %.3g GiB, exceeding the limit of %.3g GiB",
		err.N, err.EstimatedGB, err.LimitGB)
}
