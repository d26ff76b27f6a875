// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aclements/sharkfilter/incident"
)

func TestYears(t *testing.T) {
	assert.Equal(t, YearRange{1900, 2000}, Years(2000, 1900))
	r := Years(1900, 1900)
	assert.True(t, r.Contains(1900))
	assert.False(t, r.Contains(1901))
	assert.True(t, AllYears.Contains(-5000))
}

func TestMapSelection(t *testing.T) {
	var zero MapSelection
	assert.True(t, zero.All())
	assert.True(t, zero.Contains(7))
	assert.Nil(t, zero.UIDs())
	assert.Equal(t, "all", zero.String())

	none := SelectUIDs()
	assert.False(t, none.All())
	assert.False(t, none.Contains(7))
	assert.Equal(t, []int{}, none.UIDs())

	s := SelectUIDs(12, 5, 9, 5)
	assert.Equal(t, []int{5, 9, 12}, s.UIDs())
	assert.Equal(t, "[5 9 12]", s.String())
}

func TestFeatureOf(t *testing.T) {
	for _, test := range []struct {
		in   string
		set  bool
		name string
	}{
		{"", false, ""},
		{"-", false, ""},
		{" - ", false, ""},
		{"State", true, "State"},
	} {
		f := FeatureOf(test.in)
		name, ok := f.Name()
		assert.Equal(t, test.set, ok, "%q", test.in)
		assert.Equal(t, test.set, f.IsSet(), "%q", test.in)
		assert.Equal(t, test.name, name, "%q", test.in)
	}
	assert.Equal(t, Unset, FeatureOf("-"))
	assert.Equal(t, "-", Unset.String())
}

func TestEvents(t *testing.T) {
	st := State{Years: Years(1900, 2000), Primary: FeatureOf(incident.State)}
	st = BarClicked{2, "QLD"}.Apply(st)
	assert.Equal(t, BarClick(2, "QLD"), st.Last)

	// Non-click events drop the highlight.
	for _, ev := range []Event{
		MapSelectionChanged{SelectUIDs(1)},
		YearRangeChanged{1950, 1940},
		ColorFeaturesChanged{FeatureOf(incident.Site), Unset},
	} {
		next := ev.Apply(st)
		assert.Equal(t, TriggerNone, next.Last.Trigger, "%v", ev)
		assert.Equal(t, TriggerBarClick, st.Last.Trigger, "Apply modified its input")
	}

	st = YearRangeChanged{1950, 1940}.Apply(st)
	assert.Equal(t, YearRange{1940, 1950}, st.Years)

	in := []int{1, 2}
	st = ParcatClicked{in}.Apply(st)
	in[0] = 99
	assert.Equal(t, []int{1, 2}, st.Last.UIDs)

	assert.Equal(t, `bar 2 "QLD"`, BarClicked{2, "QLD"}.String())
	assert.Equal(t, "color State -", ColorFeaturesChanged{FeatureOf("State"), Unset}.String())
}

func TestSortCategories(t *testing.T) {
	for _, test := range []struct {
		feature string
		in      []string
		want    []string
	}{
		{incident.State, []string{"VIC", Other, "NSW", "QLD"}, []string{"NSW", "QLD", "VIC", Other}},
		{incident.Month, []string{"March", Other, "january", "Dec", "bogus"}, []string{"january", "March", "Dec", "bogus", Other}},
		{incident.Month, []string{"12", "2", "10", "01"}, []string{"01", "2", "10", "12"}},
	} {
		got := append([]string(nil), test.in...)
		SortCategories(test.feature, got)
		assert.Equal(t, test.want, got)
	}
}
