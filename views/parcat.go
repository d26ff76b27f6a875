// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "github.com/aclements/sharkfilter/crossfilter"

// A Dimension is one axis of the parallel categories plot.
type Dimension struct {
	Name string

	// Values holds the value of each plotted row.
	Values []string

	// Order is the category order along the axis.
	Order []string
}

// ParcatData is the content of the parallel categories plot: one line
// per selected row.
type ParcatData struct {
	UIDs       []int
	Dimensions []Dimension
	Colors     []string
}

// Parcat returns the parallel categories plot over dims. Unknown
// dimensions are skipped.
//
// Lines are colored, in decreasing priority, by their highlight color
// if any plotted row is highlighted; by the palette color of their
// value of the secondary feature, or of the primary feature if the
// secondary is unset; or grayed out.
func Parcat(d *crossfilter.Derived, dims []string, primary, secondary crossfilter.Feature) ParcatData {
	o := d.Options()
	var rows []int
	highlighted := false
	for i := 0; i < d.Len(); i++ {
		if d.Selected(i) {
			rows = append(rows, i)
			highlighted = highlighted || d.Highlight(i) != o.GrayedOut
		}
	}

	var p ParcatData
	for _, name := range dims {
		if !d.Has(name) {
			continue
		}
		dim := Dimension{Name: name, Values: make([]string, len(rows)), Order: d.Categories(name)}
		for j, i := range rows {
			dim.Values[j] = d.Value(name, i)
		}
		p.Dimensions = append(p.Dimensions, dim)
	}

	feature := secondary
	if !feature.IsSet() {
		feature = primary
	}
	fname, colorByFeature := feature.Name()
	colorByFeature = colorByFeature && d.Has(fname)
	var series map[string]int
	if colorByFeature {
		series = index(d.Categories(fname))
	}

	p.UIDs = make([]int, len(rows))
	p.Colors = make([]string, len(rows))
	for j, i := range rows {
		p.UIDs[j] = d.UID(i)
		switch {
		case highlighted:
			p.Colors[j] = d.Highlight(i)
		case colorByFeature:
			p.Colors[j] = o.PaletteColor(series[d.Value(fname, i)])
		default:
			p.Colors[j] = o.GrayedOut
		}
	}
	return p
}
