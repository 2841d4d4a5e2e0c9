// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTable has two low-cardinality string columns (class: 2 values,
// group: 3 values), one unique-per-row string column (id), and two
// numerical columns (score: fractional, age: whole-valued with up to
// 37 distinct values).
func sampleTable(n int) *table.Table {
	dt := table.NewTable("sample")
	dt.AddStringColumn("class")
	dt.AddStringColumn("group")
	dt.AddStringColumn("id")
	dt.AddFloat64Column("score")
	dt.AddFloat64Column("age")
	dt.SetNumRows(n)
	class := dt.Column("class")
	group := dt.Column("group")
	id := dt.Column("id")
	score := dt.Column("score")
	age := dt.Column("age")
	classes := []string{"A", "B"}
	for i := range n {
		class.SetStringRow(classes[i%2], i)
		group.SetStringRow(fmt.Sprintf("G%d", i%3), i)
		id.SetStringRow(fmt.Sprintf("id%02d", i), i)
		score.SetFloatRow(float64(i)*1.5, i)
		age.SetFloatRow(float64(20+i%37), i)
	}
	return dt
}

func figNames(figs []*Figure) []string {
	nms := make([]string, len(figs))
	for i, fg := range figs {
		nms[i] = fg.Name
	}
	return nms
}

func TestCountPlot(t *testing.T) {
	dt := sampleTable(40)

	// id has 40 distinct values and is skipped
	figs, err := CountPlot(dt, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Countplot_class", "Countplot_group"}, figNames(figs))
	for _, fg := range figs {
		assert.Len(t, fg.Plots, 1)
	}

	figs, err = CountPlot(dt, []string{"group"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Countplot_group"}, figNames(figs))

	_, err = CountPlot(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilData)

	_, err = CountPlot(dt, []string{"nope"}, nil)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestCountPlotSeparateBy(t *testing.T) {
	dt := sampleTable(40)

	figs, err := CountPlot(dt, []string{"class"}, &Options{SeparateBy: "group"})
	require.NoError(t, err)
	require.Len(t, figs, 1)

	_, err = CountPlot(dt, nil, &Options{SeparateBy: "nope"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestBoxViolinValidation(t *testing.T) {
	dt := sampleTable(40)
	for _, fn := range []func(*table.Table, []string, string, *Options) ([]*Figure, error){
		BoxPlot, ViolinPlot,
	} {
		_, err := fn(nil, nil, "class", nil)
		assert.ErrorIs(t, err, ErrNilData)

		_, err = fn(dt, nil, "", nil)
		assert.ErrorIs(t, err, ErrNoTarget)

		_, err = fn(dt, nil, "nope", nil)
		assert.ErrorIs(t, err, ErrColumnNotFound)

		// id has 40 distinct values, over the target ceiling of 10
		_, err = fn(dt, nil, "id", nil)
		assert.ErrorIs(t, err, ErrTooManyClasses)
	}
}

func TestBoxPlot(t *testing.T) {
	dt := sampleTable(40)
	figs, err := BoxPlot(dt, nil, "class", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_score_vs_class", "fig_age_vs_class"}, figNames(figs))

	figs, err = BoxPlot(dt, []string{"score"}, "group", &Options{LargeData: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_score_vs_group"}, figNames(figs))
}

func TestViolinPlot(t *testing.T) {
	dt := sampleTable(40)
	figs, err := ViolinPlot(dt, []string{"age"}, "class", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_age_vs_class"}, figNames(figs))
}

func TestScatterPlot(t *testing.T) {
	dt := sampleTable(40)

	// score is the target, so only age is scattered
	figs, err := ScatterPlot(dt, nil, "score", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_scatterplot_age"}, figNames(figs))

	figs, err = ScatterPlot(dt, []string{"age"}, "score", &Options{SeparateBy: "class"})
	require.NoError(t, err)
	require.Len(t, figs, 1)

	_, err = ScatterPlot(dt, nil, "", nil)
	assert.ErrorIs(t, err, ErrNoTarget)

	_, err = ScatterPlot(dt, nil, "nope", nil)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = ScatterPlot(dt, nil, "score", &Options{SeparateBy: "nope"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestCatBox(t *testing.T) {
	dt := sampleTable(40)
	ncols, nrows := dt.NumColumns(), dt.NumRows()
	names := make([]string, ncols)
	for ci := range ncols {
		names[ci] = dt.ColumnName(ci)
	}

	// cat features are class, group, id; the target drops out of the
	// list, id is over the per-feature ceiling, leaving group, with
	// one panel per class value
	figs, err := CatBox(dt, nil, "class", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_catbox_group"}, figNames(figs))
	require.Len(t, figs[0].Plots, 2)

	// the input table is never modified
	require.Equal(t, ncols, dt.NumColumns())
	assert.Equal(t, nrows, dt.NumRows())
	for ci := range ncols {
		assert.Equal(t, names[ci], dt.ColumnName(ci))
	}

	// target absent from an explicit feature list is a no-op
	figs, err = CatBox(dt, []string{"group"}, "class", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_catbox_group"}, figNames(figs))
}

func TestCatBoxTargetCeiling(t *testing.T) {
	dt := sampleTable(14)
	dt.AddStringColumn("seven")
	sv := dt.Column("seven")
	for i := range 14 {
		sv.SetStringRow(string(rune('A'+i%7)), i)
	}

	_, err := CatBox(dt, nil, "seven", nil)
	assert.ErrorIs(t, err, ErrTooManyClasses)

	// six categories is within the ceiling
	dt6 := sampleTable(12)
	dt6.AddStringColumn("six")
	sx := dt6.Column("six")
	for i := range 12 {
		sx.SetStringRow(string(rune('A'+i%6)), i)
	}
	figs, err := CatBox(dt6, []string{"group"}, "six", nil)
	require.NoError(t, err)
	require.Len(t, figs, 1)
	assert.Len(t, figs[0].Plots, 6)
}

func TestClassCount(t *testing.T) {
	dt := sampleTable(40)
	cts, err := ClassCount(dt, []string{"class", "group"})
	require.NoError(t, err)
	require.Len(t, cts, 2)

	ct := cts[0]
	assert.Equal(t, "class", ct.ColumnName(0))
	assert.Equal(t, "count", ct.ColumnName(1))
	require.Equal(t, 2, ct.NumRows())
	cc := ct.Column("count")
	assert.Equal(t, float64(20), cc.FloatRow(0))
	assert.Equal(t, float64(20), cc.FloatRow(1))

	// counts come out in descending order
	gc := cts[1].Column("count")
	assert.GreaterOrEqual(t, gc.FloatRow(0), gc.FloatRow(1))
	assert.GreaterOrEqual(t, gc.FloatRow(1), gc.FloatRow(2))

	_, err = ClassCount(nil, nil)
	assert.ErrorIs(t, err, ErrNilData)
}

func TestClassCountPlot(t *testing.T) {
	dt := sampleTable(40)
	cfigs, err := CountPlot(dt, nil, nil)
	require.NoError(t, err)
	pfigs, err := ClassCountPlot(dt, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, figNames(cfigs), figNames(pfigs))
}

func TestHistogram(t *testing.T) {
	dt := sampleTable(40)
	figs, err := Histogram(dt, nil, &Options{Bins: 8})
	require.NoError(t, err)
	assert.Equal(t, []string{"fig_hist_score", "fig_hist_age"}, figNames(figs))
	assert.Equal(t, "Histogram of score", figs[0].Plots[0].Title.Text)

	figs, err = Histogram(dt, []string{"score"}, &Options{ShowDistType: true})
	require.NoError(t, err)
	assert.Contains(t, figs[0].Plots[0].Title.Text, "(")

	_, err = Histogram(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilData)

	_, err = Histogram(dt, []string{"nope"}, nil)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestPlotMissing(t *testing.T) {
	dt := sampleTable(10)
	dt.Column("score").SetFloatRow(math.NaN(), 3)
	dt.Column("class").SetStringRow("", 5)

	fig, err := PlotMissing(dt, nil)
	require.NoError(t, err)
	assert.Equal(t, "fig_missing", fig.Name)
	assert.Len(t, fig.Plots, 1)

	_, err = PlotMissing(nil, nil)
	assert.ErrorIs(t, err, ErrNilData)

	// a table without rows has no mask to draw
	_, err = PlotMissing(sampleTable(0), nil)
	assert.ErrorIs(t, err, plot.ErrNoData)
}

func TestSaveFigures(t *testing.T) {
	dt := sampleTable(12)
	dir := t.TempDir()
	o := &Options{Save: true, Dir: dir, Size: image.Point{X: 240, Y: 180}}

	figs, err := CountPlot(dt, []string{"group"}, o)
	require.NoError(t, err)
	require.Len(t, figs, 1)

	_, err = os.Stat(filepath.Join(dir, "Countplot_group.png"))
	assert.NoError(t, err)
}

func TestFigureRender(t *testing.T) {
	dt := sampleTable(12)
	figs, err := CatBox(dt, []string{"group"}, "class", nil)
	require.NoError(t, err)
	require.Len(t, figs, 1)

	img := figs[0].Render(image.Point{X: 320, Y: 160})
	require.NotNil(t, img)
	// two panels split the width evenly
	assert.Equal(t, image.Rect(0, 0, 320, 160), img.Bounds())

	empty := &Figure{Name: "empty"}
	assert.Nil(t, empty.Render(image.Point{X: 100, Y: 100}))
}
