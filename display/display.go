// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display shows rendered charts in a desktop window.
package display

import (
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// ErrUnavailable is returned when no graphical surface can be opened.
var ErrUnavailable = errors.New("display: no graphical display available")

// Show opens a window displaying img.
// It blocks until the window closes.
func Show(title string, img image.Image) error {
	if !available() {
		return errors.Wrapf(ErrUnavailable, "could not open window %q", title)
	}

	v := newViewer(img)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(10)

	err := ebiten.RunGame(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// available reports whether a windowing system may be reached.
func available() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "netbsd", "openbsd", "dragonfly":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

type viewer struct {
	src image.Image
	img *ebiten.Image
}

func newViewer(img image.Image) *viewer {
	return &viewer{src: img}
}

func (v *viewer) Update() error { return nil }

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}
	screen.DrawImage(v.img, nil)
}

// Layout keeps the logical screen at the chart size; the window scales it.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.src.Bounds()
	return max(b.Dx(), 1), max(b.Dy(), 1)
}
