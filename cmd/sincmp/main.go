// Copyright 2026 The sincmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sincmp plots a sine approximation results file against the
// expected values and the 2.33*sin(pi/9*x) approximate function.
//
// Usage:
//
//	$> sincmp [options] [results.txt]
//
// The results file holds 3 whitespace separated columns: x, computed and
// expected values. The chart is displayed in a window until it is closed.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lsst-lpc/sincmp"
	"github.com/lsst-lpc/sincmp/display"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const defaultInput = "results.txt"

type config struct {
	input   string
	outputs []string
	display bool
	width   vg.Length
	height  vg.Length
}

func main() {
	log.SetPrefix("sincmp: ")
	log.SetFlags(0)

	var (
		oflag  = flag.String("o", "", "comma separated list of files to save the chart to (png, jpg, tiff, svg, pdf, eps)")
		nodisp = flag.Bool("nodisplay", false, "do not open the chart window")
		width  = flag.Float64("width", 25, "chart width in centimeters")
		height = flag.Float64("height", 12.5, "chart height in centimeters")
	)

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			`Usage: sincmp [options] [results.txt]

ex:

 $> sincmp
 $> sincmp -o chart.png,chart.pdf -nodisplay ./results.txt

options:
`,
		)
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg := config{
		input:   defaultInput,
		outputs: splitList(*oflag),
		display: !*nodisp,
		width:   vg.Length(*width) * vg.Centimeter,
		height:  vg.Length(*height) * vg.Centimeter,
	}
	if flag.NArg() > 0 {
		cfg.input = flag.Arg(0)
	}

	err := run(cfg, display.Show)
	if err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, show func(title string, img image.Image) error) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return errors.Errorf("invalid chart size (width=%v, height=%v)", cfg.width, cfg.height)
	}
	for _, oname := range cfg.outputs {
		if _, err := newCanvas(oname, cfg.width, cfg.height); err != nil {
			return err
		}
	}

	log.Printf("file:       %v", cfg.input)

	ds, err := sincmp.Open(cfg.input)
	if err != nil {
		return errors.Wrapf(err, "could not load results file %q", cfg.input)
	}
	log.Printf("rows:       %d", ds.Len())

	approx := sincmp.Approximate(ds.X)

	for _, tt := range []struct {
		Name string
		Data []float64
	}{
		{"computed", ds.Computed},
		{"approx", approx},
	} {
		st, err := sincmp.Compare(tt.Data, ds.Expected)
		if err != nil {
			return errors.Wrapf(err, "could not compare %s values", tt.Name)
		}
		log.Printf("%-11s %v", tt.Name+":", st)
	}

	var grp errgroup.Group
	for _, oname := range cfg.outputs {
		grp.Go(func() error {
			err := save(oname, cfg.width, cfg.height, ds, approx)
			if err != nil {
				return errors.Wrapf(err, "could not save chart to %q", oname)
			}
			log.Printf("saved:      %s", oname)
			return nil
		})
	}
	err = grp.Wait()
	if err != nil {
		return err
	}

	if !cfg.display {
		return nil
	}

	c := vgimg.New(cfg.width, cfg.height)
	err = sincmp.Plot(draw.New(c), ds, approx)
	if err != nil {
		return errors.Wrap(err, "could not plot results")
	}

	err = show(sincmp.Title, c.Image())
	if err != nil {
		return errors.Wrap(err, "could not display chart")
	}

	return nil
}

func save(oname string, width, height vg.Length, ds sincmp.Dataset, approx []float64) error {
	c, err := newCanvas(oname, width, height)
	if err != nil {
		return err
	}

	err = sincmp.Plot(draw.New(c), ds, approx)
	if err != nil {
		return errors.Wrap(err, "could not plot results")
	}

	o, err := os.Create(oname)
	if err != nil {
		return errors.Wrapf(err, "could not create output file")
	}
	defer o.Close()

	_, err = c.WriteTo(o)
	if err != nil {
		return errors.Wrapf(err, "could not write output plot")
	}

	err = o.Close()
	if err != nil {
		return errors.Wrapf(err, "could not close output file")
	}

	return nil
}

// newCanvas returns a canvas for the format implied by the extension of oname.
func newCanvas(oname string, width, height vg.Length) (vg.CanvasWriterTo, error) {
	switch ext := strings.ToLower(filepath.Ext(oname)); ext {
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.New(width, height)}, nil
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.New(width, height)}, nil
	case ".tif", ".tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.New(width, height)}, nil
	case ".svg":
		return vgsvg.New(width, height), nil
	case ".pdf":
		return vgpdf.New(width, height), nil
	case ".eps":
		return vgeps.New(width, height), nil
	default:
		return nil, errors.Errorf("unsupported output format %q for %q", ext, oname)
	}
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
