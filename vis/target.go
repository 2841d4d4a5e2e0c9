// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
	"github.com/fagan2888/datasist/plots"
)

// BoxPlot makes one figure per numerical feature with a box per
// target category. The target is required, must exist, and may have
// at most [MaxTargetClasses] distinct values. feats nil uses the
// inferred numerical columns; non-nil names must all exist.
// Options.LargeData adds letter-value boxes, which read better on
// large datasets. Figures are named fig_{feature}_vs_{target}.
func BoxPlot(dt *table.Table, feats []string, target string, opts *Options) ([]*Figure, error) {
	return targetFigures(dt, feats, target, opts, func(groups []plot.Valuer, o *Options) (plot.Plotter, error) {
		bx, err := plots.NewBox(groups...)
		if err != nil {
			return nil, err
		}
		bx.Boxen = o.LargeData
		bx.Offset = 0
		bx.Color = colors.Uniform(colors.Spaced(0))
		return bx, nil
	})
}

// ViolinPlot makes one figure per numerical feature with a
// kernel-density violin per target category. The target is required,
// must exist, and may have at most [MaxTargetClasses] distinct
// values. feats nil uses the inferred numerical columns; non-nil
// names must all exist. Figures are named fig_{feature}_vs_{target}.
func ViolinPlot(dt *table.Table, feats []string, target string, opts *Options) ([]*Figure, error) {
	return targetFigures(dt, feats, target, opts, func(groups []plot.Valuer, o *Options) (plot.Plotter, error) {
		vl, err := plots.NewViolin(groups...)
		if err != nil {
			return nil, err
		}
		vl.Offset = 0
		vl.Color = colors.Uniform(colors.Spaced(0))
		return vl, nil
	})
}

// targetFigures is the shared loop of BoxPlot and ViolinPlot: group
// each numerical feature by target category and plot one group-wise
// plotter per feature.
func targetFigures(dt *table.Table, feats []string, target string, opts *Options,
	newPlotter func(groups []plot.Valuer, o *Options) (plot.Plotter, error)) ([]*Figure, error) {
	tix, cats, err := targetColumn(dt, target, MaxTargetClasses)
	if err != nil {
		return nil, err
	}
	o := opts.setDefaults()
	nms, err := numFeatures(dt, feats)
	if err != nil {
		return nil, err
	}
	var figs []*Figure
	for _, nm := range nms {
		if nm == target {
			continue
		}
		ix, err := column(dt, nm)
		if err != nil {
			return nil, err
		}
		p, err := newPlotter(groupValues(ix, tix, cats), o)
		if err != nil {
			return nil, err
		}
		plt := nominalPlot(nm+" vs "+target, target, nm)
		plt.Add(p)
		plt.NominalX(cats...)
		figs = append(figs, &Figure{Name: "fig_" + nm + "_vs_" + target, Plots: []*plot.Plot{plt}})
	}
	return finish(figs, o)
}

// groupValues splits a numeric column into per-target-category value
// groups, in category order. Rows stay untouched; missing numeric
// values are carried as NaN and excluded by the plotters.
func groupValues(ix, tix *tensor.Indexed, cats []string) []plot.Valuer {
	cpos := map[string]int{}
	for i, c := range cats {
		cpos[c] = i
	}
	gs := make([]plot.Values, len(cats))
	for row := range ix.NumRows() {
		ci := cpos[features.ValueString(tix, row)]
		gs[ci] = append(gs[ci], float32(ix.FloatRow(row)))
	}
	out := make([]plot.Valuer, len(gs))
	for i, g := range gs {
		out[i] = g
	}
	return out
}
