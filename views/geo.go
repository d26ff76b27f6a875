// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/golang/geo/s2"

	"github.com/aclements/sharkfilter/crossfilter"
)

// LatLng is a position in degrees.
type LatLng struct {
	Lat, Lng float64
}

// A Point is one incident marker on the map.
type Point struct {
	UID      int
	Lat, Lng float64
	Opacity  float64
	Color    string
}

// MapPoints returns a marker for every row of d with coordinates.
//
// Markers take their highlight color while any row is highlighted.
// Otherwise they are colored by their value of color, using color's
// own palette from Options.FeaturePalettes if it has one, or all drawn
// in the first palette color if color is unset. Values that occur only
// in unselected rows are grayed out.
func MapPoints(d *crossfilter.Derived, color crossfilter.Feature) []Point {
	o := d.Options()
	highlighted := d.NumHighlighted() > 0
	cname, byColor := color.Name()
	byColor = byColor && d.Has(cname)
	var series map[string]int
	if byColor {
		series = index(d.Categories(cname))
	}

	var pts []Point
	for i := 0; i < d.Len(); i++ {
		lat, lng := d.LatLng(i)
		if math.IsNaN(lat) || math.IsNaN(lng) {
			continue
		}
		p := Point{UID: d.UID(i), Lat: lat, Lng: lng, Opacity: d.Opacity(i), Color: o.PaletteColor(0)}
		switch {
		case highlighted:
			p.Color = d.Highlight(i)
		case byColor:
			if s, ok := series[d.Value(cname, i)]; ok {
				p.Color = o.FeatureColor(cname, s)
			} else {
				p.Color = o.GrayedOut
			}
		}
		pts = append(pts, p)
	}
	return pts
}

// Lasso returns the map selection of the rows of d that lie inside
// polygon. The polygon may be drawn in either direction and is taken
// to be the side enclosing the smaller area. Polygons with fewer than
// three distinct vertices select nothing.
func Lasso(d *crossfilter.Derived, polygon []LatLng) crossfilter.MapSelection {
	var pts []s2.Point
	for _, v := range polygon {
		p := s2.PointFromLatLng(s2.LatLngFromDegrees(v.Lat, v.Lng))
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return crossfilter.SelectUIDs()
	}
	loop := s2.LoopFromPoints(pts)
	loop.Normalize()

	var uids []int
	for i := 0; i < d.Len(); i++ {
		lat, lng := d.LatLng(i)
		if math.IsNaN(lat) || math.IsNaN(lng) {
			continue
		}
		if loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))) {
			uids = append(uids, d.UID(i))
		}
	}
	return crossfilter.SelectUIDs(uids...)
}

// Density counts the selected rows of d in each S2 cell at level. The
// result has columns cell (the cell token), lat and lng (the cell
// center) and count, ordered by decreasing count.
func Density(d *crossfilter.Derived, level int) *table.Table {
	if level < 0 {
		level = 0
	} else if level > s2.MaxLevel {
		level = s2.MaxLevel
	}
	counts := make(map[s2.CellID]int)
	for i := 0; i < d.Len(); i++ {
		lat, lng := d.LatLng(i)
		if !d.Selected(i) || math.IsNaN(lat) || math.IsNaN(lng) {
			continue
		}
		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng)).Parent(level)
		counts[cell]++
	}
	if len(counts) == 0 {
		return new(table.Table)
	}

	cells := make([]s2.CellID, 0, len(counts))
	for c := range counts {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if counts[cells[i]] != counts[cells[j]] {
			return counts[cells[i]] > counts[cells[j]]
		}
		return cells[i] < cells[j]
	})

	tokens := make([]string, len(cells))
	lats, lngs := make([]float64, len(cells)), make([]float64, len(cells))
	ns := make([]int, len(cells))
	for i, c := range cells {
		ll := c.LatLng()
		tokens[i] = c.ToToken()
		lats[i], lngs[i] = ll.Lat.Degrees(), ll.Lng.Degrees()
		ns[i] = counts[c]
	}
	return new(table.Builder).
		Add("cell", tokens).
		Add("lat", lats).
		Add("lng", lngs).
		Add(CountColumn, ns).
		Done()
}
