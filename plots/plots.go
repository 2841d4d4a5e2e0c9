// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides plotters for chart types that
// [cogentcore.org/core/plot/plots] does not include: box-and-whisker
// plots (with a letter-value mode for large data), violin plots,
// histograms, and cell-grid heat maps. They follow the same Plotter /
// DataRanger / Thumbnailer contracts as the upstream package, so they
// can be added to a [plot.Plot] alongside its bar charts, lines, and
// scatters.
package plots

import (
	"math"
	"sort"

	"cogentcore.org/core/plot"
)

// values returns a copy of the non-NaN values from the Valuer.
func values(vs plot.Valuer) plot.Values {
	n := vs.Len()
	cpy := make(plot.Values, 0, n)
	for i := range n {
		v := vs.Value(i)
		if math.IsNaN(float64(v)) {
			continue
		}
		cpy = append(cpy, v)
	}
	return cpy
}

// floats converts plotting values to a sorted float64 slice
// for the gonum stat functions.
func floats(vals plot.Values) []float64 {
	fs := make([]float64, len(vals))
	for i, v := range vals {
		fs[i] = float64(v)
	}
	sort.Float64s(fs)
	return fs
}
