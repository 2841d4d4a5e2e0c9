// Copyright (c) 2026, The Datasist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"cogentcore.org/core/tensor/table"
	"github.com/fagan2888/datasist/features"
)

// ClassCount returns one two-column table per categorical feature,
// holding its distinct values and their row counts in descending
// count order. feats nil uses the inferred categorical columns;
// non-nil names must all exist. The tables can be written out with
// [table.Table.WriteCSV].
func ClassCount(dt *table.Table, feats []string) ([]*table.Table, error) {
	if dt == nil {
		return nil, ErrNilData
	}
	nms, err := catFeatures(dt, feats)
	if err != nil {
		return nil, err
	}
	var out []*table.Table
	for _, nm := range nms {
		ix, err := column(dt, nm)
		if err != nil {
			return nil, err
		}
		vcs := features.ValueCounts(ix)
		ct := table.NewTable("classcount_" + nm)
		ct.AddStringColumn(nm)
		ct.AddIntColumn("count")
		ct.SetNumRows(len(vcs))
		vcol := ct.Column(nm)
		ccol := ct.Column("count")
		for i, vc := range vcs {
			vcol.SetStringRow(vc.Value, i)
			ccol.SetFloatRow(float64(vc.Count), i)
		}
		out = append(out, ct)
	}
	return out, nil
}

// ClassCountPlot plots the class counts of the categorical features
// as count-bar figures. It is [CountPlot] over the same resolved
// feature list, so the two render the same feature set.
func ClassCountPlot(dt *table.Table, feats []string, opts *Options) ([]*Figure, error) {
	return CountPlot(dt, feats, opts)
}
