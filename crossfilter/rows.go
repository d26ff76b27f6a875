// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"fmt"
	"strconv"

	"github.com/aclements/sharkfilter/incident"
)

// Rows is the output of a pipeline stage: the rows of a base table
// that survived the year filter, decorated with opacity and highlight
// color, with categorical columns that may have been bucketed.
//
// A Rows is never modified once a stage returns it.
type Rows struct {
	base *incident.Table

	// idx maps each row to its row in base.
	idx []int

	// cols holds this Rows' own copy of each categorical column.
	cols map[string][]string

	opacity  []float64
	selected []bool
	nsel     int

	// color is nil until Resolve runs.
	color []string
}

func (r *Rows) Len() int {
	return len(r.idx)
}

func (r *Rows) UID(i int) int {
	return r.base.UID(r.idx[i])
}

func (r *Rows) Year(i int) int {
	return r.base.Year(r.idx[i])
}

func (r *Rows) LatLng(i int) (lat, lng float64) {
	return r.base.LatLng(r.idx[i])
}

func (r *Rows) Opacity(i int) float64 {
	return r.opacity[i]
}

// Selected reports whether row i is inside the map selection.
func (r *Rows) Selected(i int) bool {
	return r.selected[i]
}

// NumSelected returns the number of rows inside the map selection.
func (r *Rows) NumSelected() int {
	return r.nsel
}

// Highlight returns the highlight color of row i, or "" if the rows
// have not been resolved.
func (r *Rows) Highlight(i int) string {
	if r.color == nil {
		return ""
	}
	return r.color[i]
}

// Has reports whether feature names a categorical column. The year
// column is available as a category too.
func (r *Rows) Has(feature string) bool {
	return r.column(feature) != nil
}

// Value returns the value of feature at row i.
func (r *Rows) Value(feature string, i int) string {
	col := r.column(feature)
	if col == nil {
		panic(fmt.Sprintf("unknown column %q", feature))
	}
	return col[i]
}

// Column returns a copy of the values of feature, or nil if there is
// no such column.
func (r *Rows) Column(feature string) []string {
	col := r.column(feature)
	if col == nil {
		return nil
	}
	return append(make([]string, 0, len(col)), col...)
}

// Categories returns the distinct values of feature among selected
// rows, in SortCategories order.
func (r *Rows) Categories(feature string) []string {
	col := r.column(feature)
	seen := make(map[string]bool)
	var vals []string
	for i, v := range col {
		if r.selected[i] && !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	SortCategories(feature, vals)
	return vals
}

func (r *Rows) column(feature string) []string {
	if col, ok := r.cols[feature]; ok {
		return col
	}
	if feature == incident.Year {
		col := make([]string, len(r.idx))
		for i := range col {
			col[i] = strconv.Itoa(r.Year(i))
		}
		return col
	}
	return nil
}

// withColumn returns a copy of r whose feature column is col.
func (r *Rows) withColumn(feature string, col []string) *Rows {
	if len(col) != r.Len() {
		panic(fmt.Sprintf("column %q has %d rows, want %d", feature, len(col), r.Len()))
	}
	nr := *r
	nr.cols = make(map[string][]string, len(r.cols)+1)
	for k, v := range r.cols {
		nr.cols[k] = v
	}
	nr.cols[feature] = col
	return &nr
}

// withColors returns a copy of r with highlight colors color.
func (r *Rows) withColors(color []string) *Rows {
	nr := *r
	nr.color = color
	return &nr
}
