// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sincmp

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go-hep.org/x/hep/csvutil"
)

// Open loads the results file at path.
func Open(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Dataset{}, fmt.Errorf("sincmp: could not open results file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads data from the provided io.Reader.
// Load expects 3 whitespace separated columns of the form (x, computed, expected).
// Text following a '#' is a comment. Blank lines are ignored.
func Load(r io.Reader) (Dataset, error) {
	fr := newFieldsReader(r)
	tbl := &csvutil.Table{
		Reader: csv.NewReader(fr),
	}
	defer tbl.Close()

	tbl.Reader.Comma = ' '
	tbl.Reader.FieldsPerRecord = 3

	var ds Dataset
	rows, err := tbl.ReadRows(0, -1)
	if err != nil {
		return ds, fmt.Errorf("sincmp: could not read rows: %w", err)
	}
	defer rows.Close()

	id := 0
	for rows.Next() {
		var x, computed, expected float64
		err = rows.Scan(&x, &computed, &expected)
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: could not scan row %d: %w", ErrFormat, id, err)
		}
		ds.append(x, computed, expected)
		id++
	}

	if err := rows.Err(); err != nil && err != io.EOF {
		if fr.err != nil {
			return Dataset{}, fmt.Errorf("sincmp: could not read row %d: %w", id, fr.err)
		}
		return Dataset{}, fmt.Errorf("%w: row %d: %w", ErrFormat, id, err)
	}

	return ds, nil
}

// MaxLineSize is the longest row Load accepts.
const MaxLineSize = 1 << 20

// fieldsReader collapses every run of blanks in a line into a single space,
// and drops comments with leading and trailing blanks, so the CSV reader can
// split rows on ' '.
type fieldsReader struct {
	sc  *bufio.Scanner
	buf []byte
	err error // read error of the underlying stream
}

func newFieldsReader(r io.Reader) *fieldsReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &fieldsReader{sc: sc}
}

func (r *fieldsReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				r.err = err
				return 0, err
			}
			return 0, io.EOF
		}
		line, _, _ := strings.Cut(r.sc.Text(), "#")
		r.buf = append(r.buf[:0], strings.Join(strings.Fields(line), " ")...)
		r.buf = append(r.buf, '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
