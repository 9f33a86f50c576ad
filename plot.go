// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sincmp

import (
	"image/color"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	Title  = "Comparison of Expected sin(x), Remez Approximation, and Approximate Function"
	XLabel = "x (radians)"
	YLabel = "sin(x)"

	ExpectedLabel    = "Expected sin(x)"
	ComputedLabel    = "Computed (Remez Approximation)"
	ApproximateLabel = "Approximate Function (2.33 * sin(pi/9 * x))"
)

var (
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 128, A: 255}
	gray  = color.Gray{Y: 208}

	dashed = []vg.Length{vg.Points(6), vg.Points(4)}
	dotted = []vg.Length{vg.Points(1), vg.Points(3)}
)

// Series is one curve of the comparison chart.
type Series struct {
	Label string
	XYs   plotter.XYs
	Style draw.LineStyle
}

// NewSeries returns the expected, computed and approximate series,
// in that order, sharing the x-axis of ds.
func NewSeries(ds Dataset, approx []float64) ([]Series, error) {
	n := ds.Len()
	if len(ds.Computed) != n || len(ds.Expected) != n {
		return nil, errors.Errorf(
			"sincmp: ragged dataset (x=%d, computed=%d, expected=%d)",
			n, len(ds.Computed), len(ds.Expected),
		)
	}
	if len(approx) != n {
		return nil, errors.Errorf("sincmp: approximation length mismatch (got=%d, want=%d)", len(approx), n)
	}

	series := []Series{
		{Label: ExpectedLabel, Style: lineStyle(blue, dashed)},
		{Label: ComputedLabel, Style: lineStyle(red, nil)},
		{Label: ApproximateLabel, Style: lineStyle(green, dotted)},
	}
	for i, ys := range [][]float64{ds.Expected, ds.Computed, approx} {
		xys, err := plotter.CopyXYs(hplot.ZipXY(ds.X, ys))
		if err != nil {
			return nil, errors.Wrapf(err, "sincmp: invalid data for %q", series[i].Label)
		}
		series[i].XYs = xys
	}

	return series, nil
}

func lineStyle(c color.Color, dashes []vg.Length) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(1.5),
		Dashes: dashes,
	}
}

// NewPlot creates the comparison chart of ds and its approximation.
// All three series appear in the legend, even when ds is empty.
func NewPlot(ds Dataset, approx []float64) (*hplot.Plot, error) {
	series, err := NewSeries(ds, approx)
	if err != nil {
		return nil, err
	}

	p := hplot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Legend.Top = true

	grid := hplot.NewGrid()
	grid.Vertical.Color = gray
	grid.Horizontal.Color = gray
	p.Add(grid)

	for _, s := range series {
		line, err := plotter.NewLine(s.XYs)
		if err != nil {
			return nil, errors.Wrapf(err, "sincmp: could not create line %q", s.Label)
		}
		line.LineStyle = s.Style

		// an empty line has nothing to clip against the canvas.
		if len(s.XYs) > 0 {
			p.Add(line)
		}
		p.Legend.Add(s.Label, line)
	}

	return p, nil
}

// Plot plots the comparison chart of ds on the provided canvas.
func Plot(dc draw.Canvas, ds Dataset, approx []float64) error {
	p, err := NewPlot(ds, approx)
	if err != nil {
		return errors.Wrap(err, "sincmp: could not create plot")
	}
	p.Draw(dc)
	return nil
}
