// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"errors"
	"log/slog"
	"math"

	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/plots"
	"gonum.org/v1/gonum/stat"
)

// Histogram makes one histogram figure per numerical feature. feats
// nil uses the inferred numerical columns; non-nil names must all
// exist. Options.Bins sets the bin count (0 picks ceil(sqrt(n)));
// Options.ShowDistType appends a skewness classification to the
// title. Features with no usable values are skipped with a warning.
// Figures are named fig_hist_{feature}.
func Histogram(dt *table.Table, feats []string, opts *Options) ([]*Figure, error) {
	if dt == nil {
		return nil, ErrNilData
	}
	o := opts.setDefaults()
	nms, err := numFeatures(dt, feats)
	if err != nil {
		return nil, err
	}
	var figs []*Figure
	for _, nm := range nms {
		ix, err := column(dt, nm)
		if err != nil {
			return nil, err
		}
		h, err := plots.NewHistogram(columnValues(ix), o.Bins)
		if errors.Is(err, plot.ErrNoData) {
			slog.Warn("skipping histogram: no usable values", "feature", nm)
			continue
		}
		if err != nil {
			return nil, err
		}
		title := "Histogram of " + nm
		if o.ShowDistType {
			title += " (" + distType(ix) + ")"
		}
		plt := newPlot(title, nm, "Count")
		plt.Add(h)
		figs = append(figs, &Figure{Name: "fig_hist_" + nm, Plots: []*plot.Plot{plt}})
	}
	return finish(figs, o)
}

// columnValues copies a numeric column into plot values, NaN included.
func columnValues(ix *tensor.Indexed) plot.Values {
	vals := make(plot.Values, ix.NumRows())
	for row := range ix.NumRows() {
		vals[row] = float32(ix.FloatRow(row))
	}
	return vals
}

// distType classifies the sample skewness of a column for histogram
// titles, with 0.5 as the symmetry cutoff.
func distType(ix *tensor.Indexed) string {
	var fs []float64
	for row := range ix.NumRows() {
		if v := ix.FloatRow(row); !math.IsNaN(v) {
			fs = append(fs, v)
		}
	}
	if len(fs) < 3 {
		return "too few values"
	}
	sk := stat.Skew(fs, nil)
	switch {
	case sk > 0.5:
		return "right skewed"
	case sk < -0.5:
		return "left skewed"
	}
	return "approximately symmetric"
}
