// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/lsst-lpc/sincmp"
	"github.com/lsst-lpc/sincmp/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func writeResults(t *testing.T, data string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(fname, []byte(data), 0644))
	return fname
}

func newConfig(input string) config {
	return config{
		input:   input,
		display: true,
		width:   10 * vg.Centimeter,
		height:  5 * vg.Centimeter,
	}
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
	}{
		{"scenario", "0 0 0\n4.5 1.0 0.98\n9 0 0\n"},
		{"empty", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var (
				title string
				img   image.Image
			)
			show := func(s string, i image.Image) error {
				title, img = s, i
				return nil
			}

			err := run(newConfig(writeResults(t, tc.data)), show)
			require.NoError(t, err)
			assert.Equal(t, sincmp.Title, title)
			require.NotNil(t, img)
			assert.False(t, img.Bounds().Empty())
		})
	}
}

func TestRunOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := newConfig(writeResults(t, "0 0 0\n4.5 1.0 0.98\n9 0 0\n"))
	cfg.display = false
	for _, name := range []string{"out.png", "out.jpg", "out.tiff", "out.svg", "out.pdf", "out.eps"} {
		cfg.outputs = append(cfg.outputs, filepath.Join(dir, name))
	}

	show := func(string, image.Image) error {
		t.Fatalf("display must not be used")
		return nil
	}

	err := run(cfg, show)
	require.NoError(t, err)

	for _, oname := range cfg.outputs {
		fi, err := os.Stat(oname)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size(), "output %q", oname)
	}
}

func TestRunNotFound(t *testing.T) {
	cfg := newConfig(filepath.Join(t.TempDir(), "results.txt"))
	err := run(cfg, func(string, image.Image) error { return nil })
	assert.ErrorIs(t, err, sincmp.ErrNotFound)
}

func TestRunFormatError(t *testing.T) {
	cfg := newConfig(writeResults(t, "0 0 0\n1 2\n"))
	err := run(cfg, func(string, image.Image) error { return nil })
	assert.ErrorIs(t, err, sincmp.ErrFormat)
}

func TestRunDisplayUnavailable(t *testing.T) {
	cfg := newConfig(writeResults(t, "0 0 0\n"))
	err := run(cfg, func(string, image.Image) error { return display.ErrUnavailable })
	assert.ErrorIs(t, err, display.ErrUnavailable)
}

func TestRunInvalidOutput(t *testing.T) {
	cfg := newConfig(writeResults(t, "0 0 0\n"))
	cfg.outputs = []string{filepath.Join(t.TempDir(), "out.bmp")}
	err := run(cfg, func(string, image.Image) error { return nil })
	assert.Error(t, err)
	_, err = os.Stat(cfg.outputs[0])
	assert.True(t, os.IsNotExist(err))
}

func TestRunInvalidSize(t *testing.T) {
	cfg := newConfig(writeResults(t, "0 0 0\n"))
	cfg.width = 0
	err := run(cfg, func(string, image.Image) error { return nil })
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a.png", "b.pdf"}, splitList(" a.png, ,b.pdf "))
}
