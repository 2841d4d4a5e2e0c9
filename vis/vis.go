// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vis renders common exploratory-data-analysis charts from a
// [table.Table]: count plots, histograms, missing-value heat maps,
// box / violin / scatter plots against a target column, and
// categorical-vs-target bar grids.
//
// Column selections default to the type inference in
// [github.com/fagan2888/datasist/features]; every operation validates
// its arguments up front and returns before building any figure on
// failure. Figures are explicit [Figure] values rather than hidden
// plotting state, and each call is stateless and leaves the input
// table untouched.
package vis

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"sync"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
)

// Fixed cardinality ceilings for the chart types.
const (
	// MaxPlotClasses is the most distinct values a categorical
	// feature may have and still get a count plot; features beyond it
	// are skipped with a warning.
	MaxPlotClasses = 30

	// MaxTargetClasses is the most distinct values a box or violin
	// plot target may have.
	MaxTargetClasses = 10

	// MaxCatBoxClasses is the most distinct values a CatBox target
	// may have.
	MaxCatBoxClasses = 6

	// MaxCatBoxFeature is the most distinct values a categorical
	// feature may have and still get CatBox panels; features beyond
	// it are skipped with a warning.
	MaxCatBoxFeature = 10
)

var (
	// ErrNilData is returned when the data table is nil.
	ErrNilData = errors.New("vis: expecting a data table, got nil")

	// ErrNoTarget is returned when a required target column is unset.
	ErrNoTarget = errors.New("vis: target column is required")

	// ErrColumnNotFound is returned when a named column is not in
	// the table.
	ErrColumnNotFound = errors.New("vis: column not found")

	// ErrTooManyClasses is returned when a target column has more
	// distinct values than the chart allows.
	ErrTooManyClasses = errors.New("vis: too many distinct values")
)

// Options are the optional parameters shared by the plotting
// functions. The zero value (or a nil *Options) uses the defaults.
type Options struct {
	// Size is the pixel size of each rendered figure.
	// Default is 640x480.
	Size image.Point

	// Save renders each figure and writes it to Dir as {Name}.png.
	Save bool

	// Dir is the directory saved figures are written to.
	// Default is the current working directory.
	Dir string

	// SeparateBy is an optional column used to split CountPlot bars
	// and ScatterPlot points into colored sub-groups (hue).
	SeparateBy string

	// Bins is the number of Histogram bins; 0 selects ceil(sqrt(n)).
	Bins int

	// ShowDistType adds a skewness classification to Histogram
	// titles.
	ShowDistType bool

	// LargeData draws letter-value (boxen) boxes in BoxPlot,
	// which read better on large datasets.
	LargeData bool
}

// setDefaults returns a defaulted copy, so the caller's Options
// are never written to.
func (o *Options) setDefaults() *Options {
	op := &Options{}
	if o != nil {
		*op = *o
	}
	if op.Size.X <= 0 || op.Size.Y <= 0 {
		op.Size = image.Point{X: 640, Y: 480}
	}
	if op.Dir == "" {
		op.Dir = "."
	}
	return op
}

// Figure is one deliverable chart: a deterministic file name and one
// or more plot panels that render side by side.
type Figure struct {
	// Name is the base file name used when saving, no extension.
	Name string

	// Plots are the panels of the figure, left to right.
	Plots []*plot.Plot
}

var fontsOnce sync.Once

// initFonts loads the font library once, before any rendering.
func initFonts() {
	fontsOnce.Do(func() {
		paint.FontLibrary.InitFontPaths(paint.FontPaths...)
	})
}

// Render rasterizes the figure at the given total pixel size,
// splitting the width evenly across panels.
func (fg *Figure) Render(size image.Point) image.Image {
	n := len(fg.Plots)
	if n == 0 {
		return nil
	}
	initFonts()
	pw := size.X / n
	img := image.NewRGBA(image.Rect(0, 0, pw*n, size.Y))
	for i, plt := range fg.Plots {
		plt.Resize(image.Point{X: pw, Y: size.Y})
		plt.Draw()
		draw.Draw(img, image.Rect(i*pw, 0, (i+1)*pw, size.Y), plt.Pixels, image.Point{}, draw.Src)
	}
	return img
}

// Save renders the figure at the given size and writes it to
// dir/{Name}.png.
func (fg *Figure) Save(dir string, size image.Point) error {
	img := fg.Render(size)
	if img == nil {
		return nil
	}
	return imagex.Save(img, filepath.Join(dir, fg.Name+".png"))
}

// finish saves the figures if requested and returns them.
func finish(figs []*Figure, o *Options) ([]*Figure, error) {
	if !o.Save {
		return figs, nil
	}
	for _, fg := range figs {
		if err := fg.Save(o.Dir, o.Size); err != nil {
			return figs, err
		}
	}
	return figs, nil
}

// newPlot returns a plot with the title and axis labels set.
func newPlot(title, xlab, ylab string) *plot.Plot {
	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = xlab
	plt.Y.Label.Text = ylab
	return plt
}

// nominalPlot is a newPlot with the X tick labels rotated, for
// categorical axes with long value names.
func nominalPlot(title, xlab, ylab string) *plot.Plot {
	plt := newPlot(title, xlab, ylab)
	plt.X.TickText.Style.Rotation = 45
	return plt
}

// column returns the named column, or ErrColumnNotFound.
func column(dt *table.Table, name string) (*tensor.Indexed, error) {
	ix := dt.Column(name)
	if ix == nil {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return ix, nil
}

// catFeatures resolves the effective categorical feature list:
// the given names (validated to exist) or the inferred categorical
// columns.
func catFeatures(dt *table.Table, given []string) ([]string, error) {
	return resolve(dt, given, features.CatFeatures)
}

// numFeatures resolves the effective numerical feature list:
// the given names (validated to exist) or the inferred numerical
// columns.
func numFeatures(dt *table.Table, given []string) ([]string, error) {
	return resolve(dt, given, features.NumFeatures)
}

func resolve(dt *table.Table, given []string, infer func(*table.Table) []string) ([]string, error) {
	if given == nil {
		return infer(dt), nil
	}
	for _, nm := range given {
		if _, err := column(dt, nm); err != nil {
			return nil, err
		}
	}
	return given, nil
}

// targetColumn validates a required target column: it must be set,
// exist, and have no more than maxClasses distinct values. Returns
// the column and its categories in order of first appearance.
func targetColumn(dt *table.Table, target string, maxClasses int) (*tensor.Indexed, []string, error) {
	if dt == nil {
		return nil, nil, ErrNilData
	}
	if target == "" {
		return nil, nil, ErrNoTarget
	}
	ix, err := column(dt, target)
	if err != nil {
		return nil, nil, err
	}
	cats := features.Values(ix)
	if len(cats) > maxClasses {
		return nil, nil, fmt.Errorf("%w: target %q has %d distinct values (max %d)",
			ErrTooManyClasses, target, len(cats), maxClasses)
	}
	return ix, cats, nil
}
