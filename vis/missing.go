// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
	"github.com/fagan2888/datasist/plots"
)

// PlotMissing makes a single heat map figure of the missing-value
// mask: one cell per table cell, dark where the value is missing
// (NaN for numeric columns, empty string for string columns), with
// rows in table order top to bottom and one column of cells per table
// column. A table with no rows or no columns has no mask to draw and
// returns [plot.ErrNoData]. The figure is named fig_missing.
func PlotMissing(dt *table.Table, opts *Options) (*Figure, error) {
	if dt == nil {
		return nil, ErrNilData
	}
	o := opts.setDefaults()

	nr, nc := dt.NumRows(), dt.NumColumns()
	cols := make([]*tensor.Indexed, nc)
	names := make([]string, nc)
	for ci := range nc {
		cols[ci] = dt.ColumnIndex(ci)
		names[ci] = dt.ColumnName(ci)
	}
	grid := make([][]float32, nr)
	for ri := range nr {
		row := make([]float32, nc)
		for ci := range nc {
			if features.Missing(cols[ci], ri) {
				row[ci] = 1
			}
		}
		grid[ri] = row
	}

	hm, err := plots.NewHeatMap(grid)
	if err != nil {
		return nil, err
	}
	plt := nominalPlot("Missing values", "", "Row")
	plt.Add(hm)
	plt.NominalX(names...)

	fig := &Figure{Name: "fig_missing", Plots: []*plot.Plot{plt}}
	if o.Save {
		if err := fig.Save(o.Dir, o.Size); err != nil {
			return fig, err
		}
	}
	return fig, nil
}
