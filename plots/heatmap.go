// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"errors"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
)

// ErrRaggedGrid is returned for heat map grids with uneven row lengths.
var ErrRaggedGrid = errors.New("plots: heat map grid rows have different lengths")

// A HeatMap presents a matrix of values in [0, 1] as a grid of unit
// cells colored between Low and High. Row 0 is drawn at the top,
// matching the row order of a data table, with columns along X.
// Cells are centered on integer column positions, so a NominalX axis
// with one name per column lines up with them.
type HeatMap struct {
	// Grid has the cell values, indexed [row][col], each in [0, 1].
	Grid [][]float32

	// Low and High are the cell colors at 0 and 1; cells in between
	// interpolate. Defaults are white and black.
	Low, High color.RGBA
}

// NewHeatMap returns a HeatMap of the given grid. Errors if the grid
// is empty or its rows have different lengths.
func NewHeatMap(grid [][]float32) (*HeatMap, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, plot.ErrNoData
	}
	nc := len(grid[0])
	for _, row := range grid {
		if len(row) != nc {
			return nil, ErrRaggedGrid
		}
	}
	hm := &HeatMap{Grid: grid}
	hm.Defaults()
	return hm, nil
}

func (hm *HeatMap) Defaults() {
	hm.Low = colors.White
	hm.High = colors.Black
}

// NumRows returns the number of grid rows.
func (hm *HeatMap) NumRows() int { return len(hm.Grid) }

// NumColumns returns the number of grid columns.
func (hm *HeatMap) NumColumns() int { return len(hm.Grid[0]) }

// CellColor returns the interpolated color for the given cell value,
// clamped to [0, 1].
func (hm *HeatMap) CellColor(v float32) color.RGBA {
	t := math32.Clamp(v, 0, 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + t*(float32(b)-float32(a)))
	}
	return color.RGBA{
		R: lerp(hm.Low.R, hm.High.R),
		G: lerp(hm.Low.G, hm.High.G),
		B: lerp(hm.Low.B, hm.High.B),
		A: lerp(hm.Low.A, hm.High.A),
	}
}

// Plot implements the plot.Plotter interface.
func (hm *HeatMap) Plot(plt *plot.Plot) {
	pc := plt.Paint
	nr := hm.NumRows()
	for ri, row := range hm.Grid {
		// row 0 at the top
		yTop := plt.PY(float32(nr - ri))
		yBot := plt.PY(float32(nr - ri - 1))
		for ci, v := range row {
			x0 := plt.PX(float32(ci) - 0.5)
			x1 := plt.PX(float32(ci) + 0.5)
			pc.FillStyle.Color = colors.Uniform(hm.CellColor(v))
			pc.DrawRectangle(x0, yTop, x1-x0, yBot-yTop)
			pc.Fill()
		}
	}
	pc.FillStyle.Color = nil
}

// DataRange implements the plot.DataRanger interface.
func (hm *HeatMap) DataRange() (xmin, xmax, ymin, ymax float32) {
	return -0.5, float32(hm.NumColumns()) - 0.5, 0, float32(hm.NumRows())
}
