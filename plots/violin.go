// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"gonum.org/v1/gonum/stat"
)

// violinPoints is the number of points the density curve is
// evaluated at per group.
const violinPoints = 48

// Curve is the kernel density estimate for one violin group.
type Curve struct {
	// Ys are the values the density was evaluated at, low to high.
	Ys []float32

	// Densities are the estimated densities at Ys, normalized so the
	// largest is 1.
	Densities []float32

	// Median of the group values.
	Median float32
}

// A Violin presents the distribution of one or more groups of values
// as mirrored kernel-density outlines at nominal X positions,
// playing the same comparison role as [Box] but showing the full
// estimated distribution shape.
//
// Violins are plotted centered at integer multiples of Stride plus
// Offset, like [plots.BarChart] bars.
type Violin struct {
	// Curves has the density estimate per group.
	Curves []Curve

	// Color is the fill color of the violin bodies.
	Color image.Image

	// LineStyle is the style of the outline and median strokes.
	LineStyle plot.LineStyle

	// Offset, Stride and Width position and size the violins in data
	// units, as in [plots.BarChart]. Defaults are 1, 1, 0.8.
	Offset, Stride, Width float32

	// Pad extends the X range beyond the edge violin centers. Default 1.
	Pad float32
}

// NewViolin returns a Violin with a gaussian kernel density estimate
// for each given group of values, in order. NaN values are excluded.
// A group with no usable values gets an empty curve and is not drawn.
// Bandwidth is Silverman's rule of thumb.
func NewViolin(groups ...plot.Valuer) (*Violin, error) {
	if len(groups) == 0 {
		return nil, plot.ErrNoData
	}
	vl := &Violin{}
	vl.Defaults()
	for _, g := range groups {
		fs := floats(values(g))
		if len(fs) == 0 {
			vl.Curves = append(vl.Curves, Curve{})
			continue
		}
		vl.Curves = append(vl.Curves, kde(fs))
	}
	return vl, nil
}

func (vl *Violin) Defaults() {
	vl.LineStyle.Defaults()
	vl.Offset = 1
	vl.Stride = 1
	vl.Width = 0.8
	vl.Pad = 1
}

// kde estimates the density of the sorted values at violinPoints
// evenly spaced points spanning one bandwidth beyond the data range.
func kde(fs []float64) Curve {
	n := len(fs)
	med := stat.Quantile(0.5, stat.Empirical, fs, nil)
	sd := stat.StdDev(fs, nil)
	h := 1.06 * sd * math.Pow(float64(n), -0.2)
	if !(h > 0) { // NaN for n == 1, zero for zero variance
		h = 1e-3 // such groups still get a sliver
	}
	lo := fs[0] - h
	hi := fs[n-1] + h
	step := (hi - lo) / float64(violinPoints-1)

	cv := Curve{
		Ys:        make([]float32, violinPoints),
		Densities: make([]float32, violinPoints),
		Median:    float32(med),
	}
	maxd := 0.0
	dens := make([]float64, violinPoints)
	for i := range violinPoints {
		y := lo + float64(i)*step
		cv.Ys[i] = float32(y)
		d := 0.0
		for _, v := range fs {
			u := (y - v) / h
			d += math.Exp(-0.5 * u * u)
		}
		d /= float64(n) * h
		dens[i] = d
		if d > maxd {
			maxd = d
		}
	}
	for i, d := range dens {
		cv.Densities[i] = float32(d / maxd)
	}
	return cv
}

// Plot implements the plot.Plotter interface.
func (vl *Violin) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !vl.LineStyle.SetStroke(plt) {
		return
	}
	hw := 0.5 * vl.Width
	ew := vl.Width / 4
	for i, cv := range vl.Curves {
		if len(cv.Ys) == 0 {
			continue
		}
		cat := vl.Offset + float32(i)*vl.Stride

		pc.FillStyle.Color = vl.Color
		pc.MoveTo(plt.PX(cat+cv.Densities[0]*hw), plt.PY(cv.Ys[0]))
		for k := 1; k < len(cv.Ys); k++ {
			pc.LineTo(plt.PX(cat+cv.Densities[k]*hw), plt.PY(cv.Ys[k]))
		}
		for k := len(cv.Ys) - 1; k >= 0; k-- {
			pc.LineTo(plt.PX(cat-cv.Densities[k]*hw), plt.PY(cv.Ys[k]))
		}
		pc.ClosePath()
		pc.FillStrokeClear()
		pc.FillStyle.Color = nil

		yMed := plt.PY(cv.Median)
		pc.MoveTo(plt.PX(cat-ew), yMed)
		pc.LineTo(plt.PX(cat+ew), yMed)
		pc.Stroke()
	}
}

// DataRange implements the plot.DataRanger interface.
func (vl *Violin) DataRange() (xmin, xmax, ymin, ymax float32) {
	xmin = vl.Offset - vl.Pad
	xmax = vl.Offset + float32(len(vl.Curves)-1)*vl.Stride + vl.Pad
	ymin = math32.Inf(1)
	ymax = math32.Inf(-1)
	for _, cv := range vl.Curves {
		if len(cv.Ys) == 0 {
			continue
		}
		ymin = math32.Min(ymin, cv.Ys[0])
		ymax = math32.Max(ymax, cv.Ys[len(cv.Ys)-1])
	}
	return
}

// Thumbnail implements the plot.Thumbnailer interface.
func (vl *Violin) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	vl.LineStyle.SetStroke(plt)
	pc.FillStyle.Color = vl.Color
	ptb := pc.Bounds
	pc.DrawRectangle(float32(ptb.Min.X), float32(ptb.Min.Y), float32(ptb.Size().X), float32(ptb.Size().Y))
	pc.FillStrokeClear()
	pc.FillStyle.Color = nil
}
