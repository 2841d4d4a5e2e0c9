// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
)

// CatBox makes one figure per categorical feature, with one panel per
// target category showing the feature's value counts within that
// category as bars. The target is required, must exist, and may have
// at most [MaxCatBoxClasses] distinct values. feats nil uses the
// inferred categorical columns; non-nil names must all exist. The
// target itself is dropped from the feature list; when it is not in
// the list that is a no-op. Features with more than
// [MaxCatBoxFeature] distinct values are skipped with a warning.
// Counts are grouped from the two columns alone, so the table is
// never modified. Figures are named fig_catbox_{feature}.
func CatBox(dt *table.Table, feats []string, target string, opts *Options) ([]*Figure, error) {
	tix, cats, err := targetColumn(dt, target, MaxCatBoxClasses)
	if err != nil {
		return nil, err
	}
	o := opts.setDefaults()
	nms, err := catFeatures(dt, feats)
	if err != nil {
		return nil, err
	}
	nms = slices.DeleteFunc(slices.Clone(nms), func(nm string) bool {
		return nm == target
	})
	var figs []*Figure
	for _, nm := range nms {
		ix, err := column(dt, nm)
		if err != nil {
			return nil, err
		}
		if card := features.Cardinality(ix); card > MaxCatBoxFeature {
			slog.Warn("skipping catbox: too many distinct values",
				"feature", nm, "distinct", card, "max", MaxCatBoxFeature)
			continue
		}
		vcs := features.ValueCounts(ix)
		vals := make([]string, len(vcs))
		for i, vc := range vcs {
			vals[i] = vc.Value
		}
		cnts := groupCounts(ix, tix, vals, cats)

		panels := make([]*plot.Plot, len(cats))
		for ti, tc := range cats {
			plt := nominalPlot(target+" = "+tc, nm, "Count")
			bar, err := plots.NewBarChart(cnts[ti], nil)
			if err != nil {
				return nil, err
			}
			bar.Color = colors.Uniform(colors.Spaced(ti))
			bar.Offset = 0
			plt.Add(bar)
			plt.NominalX(vals...)
			panels[ti] = plt
		}
		figs = append(figs, &Figure{Name: "fig_catbox_" + nm, Plots: panels})
	}
	return finish(figs, o)
}

// groupCounts counts rows per (target category, feature value) pair,
// indexed [category][value], reading the two columns directly.
func groupCounts(ix, tix *tensor.Indexed, vals, cats []string) []plot.Values {
	vpos := map[string]int{}
	for i, v := range vals {
		vpos[v] = i
	}
	cpos := map[string]int{}
	for i, c := range cats {
		cpos[c] = i
	}
	cnts := make([]plot.Values, len(cats))
	for i := range cnts {
		cnts[i] = make(plot.Values, len(vals))
	}
	for row := range ix.NumRows() {
		ci := cpos[features.ValueString(tix, row)]
		vi := vpos[features.ValueString(ix, row)]
		cnts[ci][vi]++
	}
	return cnts
}
