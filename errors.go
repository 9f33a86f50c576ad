// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sincmp

import "errors"

var (
	// ErrNotFound is returned when the results file does not exist.
	ErrNotFound = errors.New("sincmp: results file not found")

	// ErrFormat is returned when a row is not made of exactly 3 numbers.
	ErrFormat = errors.New("sincmp: invalid results format")
)
