// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sincmp compares sine approximations against their expected values.
//
// A results file holds one record per row: x, the computed approximation of
// sin(x) and the expected sin(x). sincmp loads such a file, derives the
// closed-form curve Amplitude*sin(Wavenumber*x) and plots the three series on
// a common x-axis.
package sincmp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	Amplitude  = 2.33        // amplitude of the approximate function
	Wavenumber = math.Pi / 9 // angular wavenumber of the approximate function
)

// Dataset is the table loaded from a results file.
// Row order is preserved: it is the plotting order of the x-axis.
type Dataset struct {
	X        []float64
	Computed []float64 // pre-computed approximation of sin(x)
	Expected []float64 // reference sin(x)
}

// Len returns the number of records.
func (ds Dataset) Len() int { return len(ds.X) }

// Row returns the i-th record.
func (ds Dataset) Row(i int) (x, computed, expected float64) {
	return ds.X[i], ds.Computed[i], ds.Expected[i]
}

func (ds *Dataset) append(x, computed, expected float64) {
	ds.X = append(ds.X, x)
	ds.Computed = append(ds.Computed, computed)
	ds.Expected = append(ds.Expected, expected)
}

// Approximate returns Amplitude*sin(Wavenumber*x) for each x of xs.
func Approximate(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(Wavenumber * x)
	}
	floats.Scale(Amplitude, ys)
	return ys
}
