// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
)

// CountPlot makes one count-bar figure per categorical feature, bars
// ordered by descending count. feats nil uses the inferred categorical
// columns; non-nil names must all exist. Features with more than
// [MaxPlotClasses] distinct values are skipped with a warning.
// Options.SeparateBy splits each bar into colored per-group bars.
// Figures are named Countplot_{feature}.
func CountPlot(dt *table.Table, feats []string, opts *Options) ([]*Figure, error) {
	if dt == nil {
		return nil, ErrNilData
	}
	o := opts.setDefaults()
	var hue *tensor.Indexed
	if o.SeparateBy != "" {
		var err error
		hue, err = column(dt, o.SeparateBy)
		if err != nil {
			return nil, err
		}
	}
	nms, err := catFeatures(dt, feats)
	if err != nil {
		return nil, err
	}
	var figs []*Figure
	for _, nm := range nms {
		ix, err := column(dt, nm)
		if err != nil {
			return nil, err
		}
		if card := features.Cardinality(ix); card > MaxPlotClasses {
			slog.Warn("skipping count plot: too many distinct values",
				"feature", nm, "distinct", card, "max", MaxPlotClasses)
			continue
		}
		plt := nominalPlot("Count plot of "+nm, nm, "Count")
		if hue == nil {
			err = addCountBars(plt, ix)
		} else {
			err = addGroupedCountBars(plt, ix, hue, o.SeparateBy)
		}
		if err != nil {
			return nil, err
		}
		figs = append(figs, &Figure{Name: "Countplot_" + nm, Plots: []*plot.Plot{plt}})
	}
	return finish(figs, o)
}

// addCountBars adds one bar per distinct value, descending by count.
func addCountBars(plt *plot.Plot, ix *tensor.Indexed) error {
	vcs := features.ValueCounts(ix)
	counts := make(plot.Values, len(vcs))
	names := make([]string, len(vcs))
	for i, vc := range vcs {
		counts[i] = float32(vc.Count)
		names[i] = vc.Value
	}
	bar, err := plots.NewBarChart(counts, nil)
	if err != nil {
		return err
	}
	bar.Color = colors.Uniform(colors.Spaced(0))
	bar.Offset = 0
	plt.Add(bar)
	plt.NominalX(names...)
	return nil
}

// addGroupedCountBars adds one bar series per distinct hue value,
// interleaved within each feature-value group, with tick labels at the
// group midpoints.
func addGroupedCountBars(plt *plot.Plot, ix, hue *tensor.Indexed, hueName string) error {
	vcs := features.ValueCounts(ix)
	cats := make([]string, len(vcs))
	cpos := map[string]int{}
	for i, vc := range vcs {
		cats[i] = vc.Value
		cpos[vc.Value] = i
	}
	hues := features.Values(hue)
	hpos := map[string]int{}
	for i, hv := range hues {
		hpos[hv] = i
	}

	stride := len(hues)
	if stride > 1 {
		stride++ // gap between groups
	}
	counts := make([]plot.Values, len(hues))
	for hi := range counts {
		counts[hi] = make(plot.Values, len(cats))
	}
	for row := range ix.NumRows() {
		ci := cpos[features.ValueString(ix, row)]
		hi := hpos[features.ValueString(hue, row)]
		counts[hi][ci]++
	}

	for hi, vs := range counts {
		bar, err := plots.NewBarChart(vs, nil)
		if err != nil {
			return err
		}
		bar.Color = colors.Uniform(colors.Spaced(hi))
		bar.Offset = float32(hi)
		bar.Stride = float32(stride)
		plt.Add(bar)
		plt.Legend.Add(hueName+"="+hues[hi], bar)
	}

	mid := (stride - 1) / 2
	if stride > 1 {
		mid = (stride - 2) / 2
	}
	labels := make([]string, len(cats)*stride)
	for ci, cat := range cats {
		labels[mid+ci*stride] = cat
	}
	plt.NominalX(labels...)
	return nil
}
