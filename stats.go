// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sincmp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats summarizes the deviation of a series from its reference.
type Stats struct {
	N       int     // number of compared values
	MAE     float64 // mean absolute error
	MSE     float64 // mean squared error
	RMSE    float64 // root mean squared error
	MaxAbs  float64 // largest absolute error
	MeanRel float64 // mean relative error, over RelN values
	RelN    int     // number of values with a non-zero reference
}

// Compare computes the deviation of got from want.
// Values where want is zero do not contribute to the relative error.
func Compare(got, want []float64) (Stats, error) {
	if len(got) != len(want) {
		return Stats{}, fmt.Errorf("sincmp: length mismatch (got=%d, want=%d)", len(got), len(want))
	}

	st := Stats{N: len(got)}
	if st.N == 0 {
		return st, nil
	}

	n := float64(st.N)
	l2 := floats.Distance(got, want, 2)
	st.MAE = floats.Distance(got, want, 1) / n
	st.MSE = l2 * l2 / n
	st.RMSE = math.Sqrt(st.MSE)
	st.MaxAbs = floats.Distance(got, want, math.Inf(1))

	var rel float64
	for i, w := range want {
		if w == 0 {
			continue
		}
		rel += math.Abs((got[i] - w) / w)
		st.RelN++
	}
	if st.RelN > 0 {
		st.MeanRel = rel / float64(st.RelN)
	}

	return st, nil
}

func (st Stats) String() string {
	return fmt.Sprintf(
		"n=%d mae=%.12f mse=%.12f rmse=%.12f max=%.12f rel=%.12f (n=%d)",
		st.N, st.MAE, st.MSE, st.RMSE, st.MaxAbs, st.MeanRel, st.RelN,
	)
}
