// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/incident"
)

func eastCoast(t *testing.T) *incident.Table {
	return newBase(t, []rec{
		{1, 2000, "NSW", "beach", sydney[0], sydney[1]},
		{2, 2001, "NSW", "river", sydney[0], sydney[1]},
		{3, 2002, "QLD", "beach", brisbane[0], brisbane[1]},
		{4, 2003, "WA", "beach", perth[0], perth[1]},
		{5, 2004, "WA", "beach", math.NaN(), math.NaN()},
	})
}

// aroundSydney is a square of about 1.5 degrees around Sydney.
var aroundSydney = []LatLng{
	{-34.5, 150.5}, {-34.5, 152}, {-33, 152}, {-33, 150.5},
}

func TestMapPoints(t *testing.T) {
	base := eastCoast(t)
	o := crossfilter.DefaultOptions()
	st := crossfilter.InitialState(base)
	st.Map = crossfilter.SelectUIDs(1, 2, 3)

	pts := MapPoints(publish(base, st), crossfilter.Unset)
	require.Len(t, pts, 4)
	for _, p := range pts {
		assert.Equal(t, o.Palette[0], p.Color)
	}
	assert.Equal(t, crossfilter.SelectedOpacity, pts[0].Opacity)
	assert.Equal(t, o.UnselectedOpacity, pts[3].Opacity)
	assert.Equal(t, 4, pts[3].UID)

	pts = MapPoints(publish(base, st), state)
	var got []string
	for _, p := range pts {
		got = append(got, p.Color)
	}
	// WA has no selected rows, so it has no series.
	assert.Equal(t, []string{o.Palette[0], o.Palette[0], o.Palette[1], o.GrayedOut}, got)

	st.Primary = state
	st.Last = crossfilter.BarClick(1, "QLD")
	pts = MapPoints(publish(base, st), state)
	got = got[:0]
	for _, p := range pts {
		got = append(got, p.Color)
	}
	assert.Equal(t, []string{o.GrayedOut, o.GrayedOut, o.Palette[1], o.GrayedOut}, got)
}

func TestLasso(t *testing.T) {
	base := eastCoast(t)
	d := publish(base, crossfilter.InitialState(base))

	sel := Lasso(d, aroundSydney)
	assert.Equal(t, []int{1, 2}, sel.UIDs())

	// Winding direction and a repeated closing vertex do not matter.
	var rev []LatLng
	for i := len(aroundSydney) - 1; i >= 0; i-- {
		rev = append(rev, aroundSydney[i])
	}
	rev = append(rev, rev[0])
	assert.Equal(t, []int{1, 2}, Lasso(d, rev).UIDs())

	// Degenerate polygons select nothing.
	for _, poly := range [][]LatLng{nil, aroundSydney[:2], {aroundSydney[0], aroundSydney[0], aroundSydney[1], aroundSydney[0]}} {
		sel := Lasso(d, poly)
		assert.False(t, sel.All())
		assert.Empty(t, sel.UIDs())
	}
}

func TestLassoDispatch(t *testing.T) {
	base := eastCoast(t)
	s := crossfilter.NewSession(base, crossfilter.InitialState(base), crossfilter.DefaultOptions(), nil)
	d := s.Dispatch(crossfilter.MapSelectionChanged{Selection: Lasso(s.Derived(), aroundSydney)})
	assert.Equal(t, 2, d.NumSelected())
}

func TestDensity(t *testing.T) {
	base := eastCoast(t)
	st := crossfilter.InitialState(base)
	st.Map = crossfilter.SelectUIDs(1, 2, 3, 5)

	tab := Density(publish(base, st), 5)
	require.Equal(t, []string{"cell", "lat", "lng", CountColumn}, tab.Columns())
	assert.Equal(t, []int{2, 1}, tab.MustColumn(CountColumn))
	lats := tab.MustColumn("lat").([]float64)
	assert.InDelta(t, sydney[0], lats[0], 3)
	assert.InDelta(t, brisbane[0], lats[1], 3)

	// Levels are clamped to the finest cells.
	tab = Density(publish(base, st), 99)
	assert.Equal(t, []int{2, 1}, tab.MustColumn(CountColumn))

	st.Map = crossfilter.SelectUIDs()
	assert.Empty(t, Density(publish(base, st), 5).Columns())
}

func TestMapPointsFeaturePalette(t *testing.T) {
	var recs []rec
	for i, st := range []string{"NSW", "QLD", "NSW", "WA"} {
		recs = append(recs, rec{i + 1, 2000, st, "beach", sydney[0], sydney[1]})
	}
	base := newBase(t, recs)
	o := crossfilter.DefaultOptions()
	o.FeaturePalettes = map[string][]string{incident.State: {"#111111", "#222222"}}
	d := crossfilter.Publish(base, crossfilter.InitialState(base), o)

	var got []string
	for _, p := range MapPoints(d, state) {
		got = append(got, p.Color)
	}
	// Series are NSW, QLD, WA; the palette wraps.
	assert.Equal(t, []string{"#111111", "#222222", "#111111", "#111111"}, got)

	// Features without their own palette use the main one.
	got = got[:0]
	for _, p := range MapPoints(d, site) {
		got = append(got, p.Color)
	}
	assert.Equal(t, []string{o.Palette[0], o.Palette[0], o.Palette[0], o.Palette[0]}, got)
}
