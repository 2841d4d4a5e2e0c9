// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
)

// A Histogram presents the univariate distribution of a set of values
// as contiguous count bars over equal-width bins.
type Histogram struct {
	// Counts has the number of values per bin.
	Counts plot.Values

	// Edges has the bin boundaries, len(Counts)+1, low to high.
	Edges []float32

	// Color is the fill color of the bars.
	Color image.Image

	// LineStyle is the style of the bar outlines.
	LineStyle plot.LineStyle
}

// NewHistogram returns a Histogram of the given values over the given
// number of equal-width bins. NaN values are excluded; bins <= 0
// selects ceil(sqrt(n)) bins. Errors if there are no usable values.
func NewHistogram(vs plot.Valuer, bins int) (*Histogram, error) {
	vals := values(vs)
	if len(vals) == 0 {
		return nil, plot.ErrNoData
	}
	if bins <= 0 {
		bins = int(math.Ceil(math.Sqrt(float64(len(vals)))))
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	if lo == hi { // single-valued data still gets a visible bar
		lo -= 0.5
		hi += 0.5
	}
	h := &Histogram{
		Counts: make(plot.Values, bins),
		Edges:  make([]float32, bins+1),
	}
	h.LineStyle.Defaults()
	w := (hi - lo) / float32(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + float32(i)*w
	}
	for _, v := range vals {
		bi := int((v - lo) / w)
		if bi >= bins { // hi lands in the last bin
			bi = bins - 1
		}
		h.Counts[bi]++
	}
	return h, nil
}

// Plot implements the plot.Plotter interface.
func (h *Histogram) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !h.LineStyle.SetStroke(plt) {
		return
	}
	pc.FillStyle.Color = h.Color
	y0 := plt.PY(0)
	for i, ct := range h.Counts {
		x0 := plt.PX(h.Edges[i])
		x1 := plt.PX(h.Edges[i+1])
		yt := plt.PY(ct)
		pc.DrawRectangle(x0, yt, x1-x0, y0-yt)
		pc.FillStrokeClear()
	}
	pc.FillStyle.Color = nil
}

// DataRange implements the plot.DataRanger interface.
func (h *Histogram) DataRange() (xmin, xmax, ymin, ymax float32) {
	xmin = h.Edges[0]
	xmax = h.Edges[len(h.Edges)-1]
	ymin = 0
	ymax = math32.Inf(-1)
	for _, ct := range h.Counts {
		ymax = math32.Max(ymax, ct)
	}
	return
}

// Thumbnail implements the plot.Thumbnailer interface.
func (h *Histogram) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	h.LineStyle.SetStroke(plt)
	pc.FillStyle.Color = h.Color
	ptb := pc.Bounds
	pc.DrawRectangle(float32(ptb.Min.X), float32(ptb.Min.Y), float32(ptb.Size().X), float32(ptb.Size().Y))
	pc.FillStrokeClear()
	pc.FillStyle.Color = nil
}
