// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/incident"
)

type rec struct {
	uid      int
	year     int
	state    string
	site     string
	lat, lng float64
}

var (
	sydney   = [2]float64{-33.8688, 151.2093}
	brisbane = [2]float64{-27.4698, 153.0251}
	perth    = [2]float64{-31.9523, 115.8613}
)

func newBase(t *testing.T, recs []rec) *incident.Table {
	t.Helper()
	c := incident.Columns{Categorical: make(map[string][]string)}
	for _, name := range incident.RequiredCategorical {
		c.Categorical[name] = []string{}
	}
	for _, r := range recs {
		c.UID = append(c.UID, r.uid)
		c.Year = append(c.Year, r.year)
		c.Latitude = append(c.Latitude, r.lat)
		c.Longitude = append(c.Longitude, r.lng)
		for _, name := range incident.RequiredCategorical {
			v := "unknown"
			switch name {
			case incident.State:
				v = r.state
			case incident.Site:
				v = r.site
			}
			c.Categorical[name] = append(c.Categorical[name], v)
		}
	}
	base, err := incident.New(c)
	require.NoError(t, err)
	return base
}

// coastal returns 16 incidents: NSW has 6 at beaches and 4 at rivers,
// QLD has 5 at beaches and VIC has 1 at a river.
func coastal(t *testing.T) *incident.Table {
	var recs []rec
	add := func(n int, state, site string, pos [2]float64) {
		for i := 0; i < n; i++ {
			uid := len(recs) + 1
			recs = append(recs, rec{uid, 1990 + uid, state, site, pos[0], pos[1]})
		}
	}
	add(6, "NSW", "beach", sydney)
	add(4, "NSW", "river", sydney)
	add(5, "QLD", "beach", brisbane)
	add(1, "VIC", "river", [2]float64{-37.8136, 144.9631})
	return newBase(t, recs)
}

func publish(base *incident.Table, st crossfilter.State) *crossfilter.Derived {
	return crossfilter.Publish(base, st, crossfilter.DefaultOptions())
}

var (
	state = crossfilter.FeatureOf(incident.State)
	site  = crossfilter.FeatureOf(incident.Site)
)
