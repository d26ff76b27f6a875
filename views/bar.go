// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/incident"
)

// Column names of BarCounts results besides the feature columns.
const (
	SeriesColumn     = "series"
	CountColumn      = "count"
	ProportionColumn = "proportion"
)

// BarCounts returns the bars of the (stacked) bar chart of x colored
// by color, counting selected rows only.
//
// The result has one row per (x, color) pair that occurs, with
// columns x, color (omitted when color is x or unset), series and
// either count or, if normalize is set, the pair's proportion of its
// x bar. Rows are ordered by x, then series, in chart order. The
// series column is the trace index a click on that bar reports, so a
// BarClicked built from a row of the result highlights exactly the
// rows counted in it.
//
// If x is unset or unknown, or nothing is selected, BarCounts
// returns an empty table.
func BarCounts(d *crossfilter.Derived, x, color crossfilter.Feature, normalize bool) *table.Table {
	xname, ok := x.Name()
	if !ok || !d.Has(xname) || d.NumSelected() == 0 {
		return new(table.Table)
	}
	cname, ok := color.Name()
	if !ok || !d.Has(cname) {
		cname = xname
	}

	// GroupBy turns the grouped columns constant, so the UID column
	// is what carries each group's row count.
	var uids []int
	var xs, cs []string
	for i := 0; i < d.Len(); i++ {
		if d.Selected(i) {
			uids = append(uids, d.UID(i))
			xs = append(xs, d.Value(xname, i))
			cs = append(cs, d.Value(cname, i))
		}
	}
	b := new(table.Builder).Add(incident.UID, uids).Add(xname, xs)
	cols := []string{xname}
	if cname != xname {
		b.Add(cname, cs)
		cols = append(cols, cname)
	}
	g := table.GroupBy(b.Done(), cols...)

	series := index(d.Categories(cname))
	xorder := index(d.Categories(xname))
	type bar struct {
		x, c   string
		series int
		n      int
	}
	var bars []bar
	total := make(map[string]int)
	for _, gid := range g.Tables() {
		c := gid.Label().(string)
		xv := c
		if cname != xname {
			xv = gid.Parent().Label().(string)
		}
		n := g.Table(gid).Len()
		bars = append(bars, bar{xv, c, series[c], n})
		total[xv] += n
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].x != bars[j].x {
			return xorder[bars[i].x] < xorder[bars[j].x]
		}
		return bars[i].series < bars[j].series
	})

	outX := make([]string, len(bars))
	outC := make([]string, len(bars))
	outS := make([]int, len(bars))
	counts := make([]int, len(bars))
	props := make([]float64, len(bars))
	for i, b := range bars {
		outX[i], outC[i], outS[i], counts[i] = b.x, b.c, b.series, b.n
		props[i] = float64(b.n) / float64(total[b.x])
	}
	out := new(table.Builder).Add(xname, outX)
	if cname != xname {
		out.Add(cname, outC)
	}
	out.Add(SeriesColumn, outS)
	if normalize {
		out.Add(ProportionColumn, props)
	} else {
		out.Add(CountColumn, counts)
	}
	return out.Done()
}

// index maps each value to its position in vals.
func index(vals []string) map[string]int {
	m := make(map[string]int, len(vals))
	for i, v := range vals {
		m[v] = i
	}
	return m
}
