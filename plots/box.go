// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"gonum.org/v1/gonum/stat"
)

// FiveNum is the five-number summary of one group of values.
// Min and Max are the whisker ends: the most extreme values within
// 1.5 IQR of the quartiles. Values beyond them are outliers.
type FiveNum struct {
	Min, Q1, Median, Q3, Max float32
}

// A Box presents the distribution of one or more groups of values as
// box-and-whisker summaries at nominal X positions.
//
// Boxes are plotted centered at integer multiples of Stride plus
// Offset, like [plots.BarChart] bars, so a NominalX axis with one
// name per group lines up with them.
type Box struct {
	// Stats has the five-number summary per group.
	Stats []FiveNum

	// Eighths has the 12.5 and 87.5 percentiles per group,
	// drawn as additional letter-value boxes in Boxen mode.
	Eighths [][2]float32

	// Outliers has the values beyond the whiskers per group.
	Outliers [][]float32

	// Color is the fill color of the boxes.
	Color image.Image

	// LineStyle is the style of the box, whisker, and median strokes.
	LineStyle plot.LineStyle

	// Boxen draws the letter-value eighths boxes as well, which read
	// better on large datasets.
	Boxen bool

	// Offset, Stride and Width position and size the boxes in data
	// units, as in [plots.BarChart]. Defaults are 1, 1, 0.6.
	Offset, Stride, Width float32

	// Pad extends the X range beyond the edge box centers. Default 1.
	Pad float32
}

// NewBox returns a Box summarizing the given groups of values,
// one box per group, in order. NaN values are excluded. A group with
// no usable values gets an all-NaN summary and is not drawn.
func NewBox(groups ...plot.Valuer) (*Box, error) {
	if len(groups) == 0 {
		return nil, plot.ErrNoData
	}
	bx := &Box{}
	bx.Defaults()
	for _, g := range groups {
		fs := floats(values(g))
		if len(fs) == 0 {
			nan := float32(math32.NaN())
			bx.Stats = append(bx.Stats, FiveNum{nan, nan, nan, nan, nan})
			bx.Eighths = append(bx.Eighths, [2]float32{nan, nan})
			bx.Outliers = append(bx.Outliers, nil)
			continue
		}
		q1 := stat.Quantile(0.25, stat.Empirical, fs, nil)
		med := stat.Quantile(0.5, stat.Empirical, fs, nil)
		q3 := stat.Quantile(0.75, stat.Empirical, fs, nil)
		iqr := q3 - q1
		loLim := q1 - 1.5*iqr
		hiLim := q3 + 1.5*iqr

		st := FiveNum{Q1: float32(q1), Median: float32(med), Q3: float32(q3)}
		var out []float32
		lo, hi := fs[len(fs)-1], fs[0]
		for _, v := range fs {
			if v < loLim || v > hiLim {
				out = append(out, float32(v))
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		st.Min = float32(lo)
		st.Max = float32(hi)
		bx.Stats = append(bx.Stats, st)
		bx.Eighths = append(bx.Eighths, [2]float32{
			float32(stat.Quantile(0.125, stat.Empirical, fs, nil)),
			float32(stat.Quantile(0.875, stat.Empirical, fs, nil)),
		})
		bx.Outliers = append(bx.Outliers, out)
	}
	return bx, nil
}

func (bx *Box) Defaults() {
	bx.LineStyle.Defaults()
	bx.Offset = 1
	bx.Stride = 1
	bx.Width = 0.6
	bx.Pad = 1
}

// Plot implements the plot.Plotter interface.
func (bx *Box) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !bx.LineStyle.SetStroke(plt) {
		return
	}
	hw := 0.5 * bx.Width
	ew := bx.Width / 3
	for i, st := range bx.Stats {
		if math32.IsNaN(st.Median) {
			continue
		}
		cat := bx.Offset + float32(i)*bx.Stride
		x0 := plt.PX(cat - hw)
		x1 := plt.PX(cat + hw)
		cx := plt.PX(cat)

		if bx.Boxen {
			e := bx.Eighths[i]
			ex0 := plt.PX(cat - 0.5*hw)
			ex1 := plt.PX(cat + 0.5*hw)
			eyTop := plt.PY(e[1])
			eyBot := plt.PY(e[0])
			pc.FillStyle.Color = bx.Color
			pc.DrawRectangle(ex0, eyTop, ex1-ex0, eyBot-eyTop)
			pc.FillStrokeClear()
		}

		yQ3 := plt.PY(st.Q3)
		yQ1 := plt.PY(st.Q1)
		pc.FillStyle.Color = bx.Color
		pc.DrawRectangle(x0, yQ3, x1-x0, yQ1-yQ3)
		pc.FillStrokeClear()
		pc.FillStyle.Color = nil

		yMed := plt.PY(st.Median)
		pc.MoveTo(x0, yMed)
		pc.LineTo(x1, yMed)
		pc.Stroke()

		// whiskers with end caps
		yMin := plt.PY(st.Min)
		yMax := plt.PY(st.Max)
		pc.MoveTo(cx, yQ3)
		pc.LineTo(cx, yMax)
		pc.MoveTo(plt.PX(cat-ew), yMax)
		pc.LineTo(plt.PX(cat+ew), yMax)
		pc.MoveTo(cx, yQ1)
		pc.LineTo(cx, yMin)
		pc.MoveTo(plt.PX(cat-ew), yMin)
		pc.LineTo(plt.PX(cat+ew), yMin)
		pc.Stroke()

		for _, v := range bx.Outliers[i] {
			pc.DrawCircle(cx, plt.PY(v), 2.5)
			pc.Stroke()
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (bx *Box) DataRange() (xmin, xmax, ymin, ymax float32) {
	xmin = bx.Offset - bx.Pad
	xmax = bx.Offset + float32(len(bx.Stats)-1)*bx.Stride + bx.Pad
	ymin = math32.Inf(1)
	ymax = math32.Inf(-1)
	for i, st := range bx.Stats {
		if math32.IsNaN(st.Median) {
			continue
		}
		ymin = math32.Min(ymin, st.Min)
		ymax = math32.Max(ymax, st.Max)
		for _, v := range bx.Outliers[i] {
			ymin = math32.Min(ymin, v)
			ymax = math32.Max(ymax, v)
		}
	}
	return
}

// Thumbnail implements the plot.Thumbnailer interface.
func (bx *Box) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	bx.LineStyle.SetStroke(plt)
	pc.FillStyle.Color = bx.Color
	ptb := pc.Bounds
	pc.DrawRectangle(float32(ptb.Min.X), float32(ptb.Min.Y), float32(ptb.Size().X), float32(ptb.Size().Y))
	pc.FillStrokeClear()
	pc.FillStyle.Color = nil
}
