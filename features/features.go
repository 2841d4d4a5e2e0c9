// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package features classifies the columns of a [table.Table] as
// categorical or numerical, and provides the cardinality and
// value-count helpers that the vis package plots from.
package features

import (
	"math"
	"sort"
	"strconv"

	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
)

// MaxNumericClasses is the cardinality ceiling at or below which a
// whole-valued numeric column is classified as categorical.
const MaxNumericClasses = 10

// Kind is the inferred plotting type of a table column.
type Kind int32

const (
	// Categorical columns hold discrete labels: any string column,
	// or a whole-valued numeric column with no more than
	// [MaxNumericClasses] distinct values.
	Categorical Kind = iota

	// Numerical columns hold continuous or high-cardinality
	// discrete quantities.
	Numerical
)

func (k Kind) String() string {
	switch k {
	case Categorical:
		return "Categorical"
	case Numerical:
		return "Numerical"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Feature is the classification result for one column.
type Feature struct {
	// Name is the column name.
	Name string

	// Kind is the inferred type.
	Kind Kind

	// Cardinality is the number of distinct values in the column,
	// counting missing (NaN or empty string) as one value.
	Cardinality int
}

// Classify returns a classification for every column of the table,
// in column order. An empty or nil table yields an empty slice.
func Classify(dt *table.Table) []Feature {
	if dt == nil {
		return nil
	}
	fts := make([]Feature, 0, dt.NumColumns())
	for ci := range dt.NumColumns() {
		nm := dt.ColumnName(ci)
		fts = append(fts, classify(nm, dt.ColumnIndex(ci)))
	}
	return fts
}

func classify(name string, ix *tensor.Indexed) Feature {
	card := Cardinality(ix)
	ft := Feature{Name: name, Kind: Numerical, Cardinality: card}
	if ix.Tensor.IsString() {
		ft.Kind = Categorical
		return ft
	}
	if card <= MaxNumericClasses && wholeValued(ix) {
		ft.Kind = Categorical
	}
	return ft
}

// CatFeatures returns the names of the categorical columns,
// in column order.
func CatFeatures(dt *table.Table) []string {
	return names(dt, Categorical)
}

// NumFeatures returns the names of the numerical columns,
// in column order.
func NumFeatures(dt *table.Table) []string {
	return names(dt, Numerical)
}

func names(dt *table.Table, kind Kind) []string {
	var nms []string
	for _, ft := range Classify(dt) {
		if ft.Kind == kind {
			nms = append(nms, ft.Name)
		}
	}
	return nms
}

// wholeValued reports whether every non-missing value in the column
// is a whole number, so that low-cardinality numeric columns such as
// class indexes read as categories rather than quantities.
func wholeValued(ix *tensor.Indexed) bool {
	for row := range ix.NumRows() {
		v := ix.FloatRow(row)
		if math.IsNaN(v) {
			continue
		}
		if v != math.Trunc(v) {
			return false
		}
	}
	return true
}

// Cardinality returns the number of distinct values in the column
// view. Missing values (NaN for numeric columns, empty string for
// string columns) count once, matching distinct-value semantics of
// the usual dataframe nunique-with-NaN accounting.
func Cardinality(ix *tensor.Indexed) int {
	return len(Values(ix))
}

// Values returns the distinct values of the column in order of first
// appearance, rendered as strings. Numeric NaN renders as "NaN".
func Values(ix *tensor.Indexed) []string {
	seen := map[string]bool{}
	var vals []string
	for row := range ix.NumRows() {
		v := ValueString(ix, row)
		if seen[v] {
			continue
		}
		seen[v] = true
		vals = append(vals, v)
	}
	return vals
}

// ValueCount is the row count for one distinct column value.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts returns the distinct values of the column with their
// row counts, ordered by descending count, ties in order of first
// appearance.
func ValueCounts(ix *tensor.Indexed) []ValueCount {
	counts := map[string]int{}
	var order []string
	for row := range ix.NumRows() {
		v := ValueString(ix, row)
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	vcs := make([]ValueCount, len(order))
	for i, v := range order {
		vcs[i] = ValueCount{Value: v, Count: counts[v]}
	}
	sort.SliceStable(vcs, func(i, j int) bool {
		return vcs[i].Count > vcs[j].Count
	})
	return vcs
}

// Missing reports whether the value at the given row is missing:
// NaN for numeric columns, empty string for string columns.
func Missing(ix *tensor.Indexed, row int) bool {
	if ix.Tensor.IsString() {
		return ix.StringRow(row) == ""
	}
	return math.IsNaN(ix.FloatRow(row))
}

// ValueString renders the row value as a category label: the raw
// string for string columns, compact float formatting otherwise, so
// that 3 and 3.0 are the same category.
func ValueString(ix *tensor.Indexed, row int) string {
	if ix.Tensor.IsString() {
		return ix.StringRow(row)
	}
	v := ix.FloatRow(row)
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
