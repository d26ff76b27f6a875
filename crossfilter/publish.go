// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"encoding/json"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/sharkfilter/incident"
)

// Derived is the table every view renders from. It is the fully
// resolved Rows for one State.
type Derived struct {
	*Rows
	state State
	opts  Options
}

// Publish computes the derived table of base for st.
//
// A Clear interaction resets the map selection to every row before
// projecting. Bucketing runs for each groupable feature present in
// the table, after projection and before highlight resolution.
func Publish(base *incident.Table, st State, o Options) *Derived {
	if st.Last.Trigger == TriggerClear {
		st.Map = SelectAll()
	}
	rows := Project(base, st.Years, st.Map, o.UnselectedOpacity)
	for _, f := range o.Groupable {
		if rows.Has(f) {
			rows = rows.withColumn(f, Bucket(rows, f, o.Groupable))
		}
	}
	rows = Resolve(rows, st.Last, st.Primary, st.Secondary, o)
	return &Derived{rows, st, o}
}

// State returns the state d was published from. For a Clear, its map
// selection is already reset.
func (d *Derived) State() State {
	return d.state
}

func (d *Derived) Options() Options {
	return d.opts
}

// NumHighlighted returns the number of rows whose highlight color is
// not the grayed-out color.
func (d *Derived) NumHighlighted() int {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if d.Highlight(i) != d.opts.GrayedOut {
			n++
		}
	}
	return n
}

// columns returns the derived table column by column, in output
// order. Every column is a fresh slice.
func (d *Derived) columns() (names []string, cols []interface{}) {
	n := d.Len()
	uids, years := make([]int, n), make([]int, n)
	lats, lngs := make([]float64, n), make([]float64, n)
	opacity, color := make([]float64, n), make([]string, n)
	for i := 0; i < n; i++ {
		uids[i], years[i] = d.UID(i), d.Year(i)
		lats[i], lngs[i] = d.LatLng(i)
		opacity[i], color[i] = d.Opacity(i), d.Highlight(i)
	}
	names = []string{incident.UID, incident.Year, incident.Latitude, incident.Longitude}
	cols = []interface{}{uids, years, lats, lngs}
	for _, name := range d.base.Categorical() {
		names = append(names, name)
		cols = append(cols, d.Column(name))
	}
	names = append(names, OpacityColumn, HighlightColumn)
	cols = append(cols, opacity, color)
	return names, cols
}

// Frame returns d as a go-gg table: the base columns, then opacity
// and highlight_color.
func (d *Derived) Frame() *table.Table {
	names, cols := d.columns()
	b := new(table.Builder)
	for i, name := range names {
		b.Add(name, cols[i])
	}
	return b.Done()
}

// MarshalJSON encodes d as an object mapping each column name to its
// array of values. Missing coordinates encode as null.
func (d *Derived) MarshalJSON() ([]byte, error) {
	names, cols := d.columns()
	m := make(map[string]interface{}, len(names))
	for i, name := range names {
		if xs, ok := cols[i].([]float64); ok {
			m[name] = nullNaN(xs)
			continue
		}
		m[name] = cols[i]
	}
	return json.Marshal(m)
}

func nullNaN(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i := range xs {
		if !math.IsNaN(xs[i]) {
			out[i] = &xs[i]
		}
	}
	return out
}
