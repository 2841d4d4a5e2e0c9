// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"math"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
)

// ScatterPlot makes one figure per numerical feature scattering the
// feature on X against the target on Y. The target is required and
// must exist. feats nil uses the inferred numerical columns; non-nil
// names must all exist. Options.SeparateBy colors the points by the
// values of another column. Rows where either value is NaN are left
// out. Figures are named fig_scatterplot_{feature}.
func ScatterPlot(dt *table.Table, feats []string, target string, opts *Options) ([]*Figure, error) {
	if dt == nil {
		return nil, ErrNilData
	}
	if target == "" {
		return nil, ErrNoTarget
	}
	tix, err := column(dt, target)
	if err != nil {
		return nil, err
	}
	o := opts.setDefaults()
	var hue *tensor.Indexed
	if o.SeparateBy != "" {
		hue, err = column(dt, o.SeparateBy)
		if err != nil {
			return nil, err
		}
	}
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
		plt := newPlot("Scatter plot of "+nm+" vs "+target, nm, target)
		if hue == nil {
			sc, err := plots.NewScatter(scatterXYs(ix, tix, nil, ""))
			if err != nil {
				return nil, err
			}
			plt.Add(sc)
		} else {
			for hi, hv := range features.Values(hue) {
				sc, err := plots.NewScatter(scatterXYs(ix, tix, hue, hv))
				if err != nil {
					return nil, err
				}
				sc.LineStyle.Color = colors.Uniform(colors.Spaced(hi))
				plt.Add(sc)
				plt.Legend.Add(o.SeparateBy+"="+hv, sc)
			}
		}
		figs = append(figs, &Figure{Name: "fig_scatterplot_" + nm, Plots: []*plot.Plot{plt}})
	}
	return finish(figs, o)
}

// scatterXYs pairs the feature and target values row by row, dropping
// rows where either is NaN. A non-nil hue column keeps only the rows
// whose hue value equals hueVal.
func scatterXYs(ix, tix, hue *tensor.Indexed, hueVal string) plot.XYs {
	var xys plot.XYs
	for row := range ix.NumRows() {
		if hue != nil && features.ValueString(hue, row) != hueVal {
			continue
		}
		x := ix.FloatRow(row)
		y := tix.FloatRow(row)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xys = append(xys, math32.Vec2(float32(x), float32(y)))
	}
	return xys
}
