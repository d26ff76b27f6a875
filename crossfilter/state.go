// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aclements/sharkfilter/incident"
)

// YearRange is a closed interval of incident years.
type YearRange struct {
	Lo, Hi int
}

// Years returns the range [lo, hi], swapping the bounds if lo > hi.
func Years(lo, hi int) YearRange {
	if lo > hi {
		lo, hi = hi, lo
	}
	return YearRange{lo, hi}
}

// AllYears is the range that excludes no year.
var AllYears = YearRange{math.MinInt, math.MaxInt}

func (r YearRange) Contains(year int) bool {
	return r.Lo <= year && year <= r.Hi
}

func (r YearRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// MapSelection is the set of rows selected on the map: either every
// row, or an explicit and possibly empty set of UIDs.
//
// The zero MapSelection selects every row.
type MapSelection struct {
	uids map[int]bool
}

func SelectAll() MapSelection {
	return MapSelection{}
}

// SelectUIDs returns a selection of exactly uids. With no arguments it
// selects nothing, which is different from SelectAll.
func SelectUIDs(uids ...int) MapSelection {
	m := make(map[int]bool, len(uids))
	for _, uid := range uids {
		m[uid] = true
	}
	return MapSelection{m}
}

// All reports whether s selects every row.
func (s MapSelection) All() bool {
	return s.uids == nil
}

func (s MapSelection) Contains(uid int) bool {
	return s.uids == nil || s.uids[uid]
}

// UIDs returns the selected UIDs in ascending order, or nil if s
// selects every row.
func (s MapSelection) UIDs() []int {
	if s.uids == nil {
		return nil
	}
	uids := make([]int, 0, len(s.uids))
	for uid := range s.uids {
		uids = append(uids, uid)
	}
	sort.Ints(uids)
	return uids
}

func (s MapSelection) String() string {
	if s.All() {
		return "all"
	}
	return fmt.Sprint(s.UIDs())
}

// Trigger identifies which control produced an Interaction.
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerBarClick
	TriggerParcatClick
	TriggerClear
)

func (t Trigger) String() string {
	switch t {
	case TriggerNone:
		return "none"
	case TriggerBarClick:
		return "bar"
	case TriggerParcatClick:
		return "parcat"
	case TriggerClear:
		return "clear"
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// Interaction is the most recent highlighting interaction. Which
// fields are meaningful depends on Trigger: SeriesIndex and X for
// TriggerBarClick, UIDs for TriggerParcatClick.
//
// The zero Interaction is TriggerNone.
type Interaction struct {
	Trigger Trigger

	// SeriesIndex is the index of the clicked trace. In a plain
	// bar chart every bar is trace 0; in a stacked bar chart it
	// is the index of the secondary category.
	SeriesIndex int

	// X is the primary feature value of the clicked bar.
	X string

	UIDs []int
}

func BarClick(seriesIndex int, x string) Interaction {
	return Interaction{Trigger: TriggerBarClick, SeriesIndex: seriesIndex, X: x}
}

func ParcatClick(uids ...int) Interaction {
	return Interaction{Trigger: TriggerParcatClick, UIDs: append([]int(nil), uids...)}
}

func Clear() Interaction {
	return Interaction{Trigger: TriggerClear}
}

func (in Interaction) String() string {
	switch in.Trigger {
	case TriggerBarClick:
		return fmt.Sprintf("bar(%d, %q)", in.SeriesIndex, in.X)
	case TriggerParcatClick:
		return fmt.Sprintf("parcat(%d uids)", len(in.UIDs))
	}
	return in.Trigger.String()
}

// Feature is an optional categorical column name, as chosen in a
// color dropdown. The zero Feature is Unset.
type Feature struct {
	name string
}

// Unset is the Feature with no column.
var Unset Feature

// FeatureOf returns the Feature naming column name. The dropdown
// placeholders "" and "-" yield Unset.
func FeatureOf(name string) Feature {
	name = strings.TrimSpace(name)
	if name == "" || name == "-" {
		return Unset
	}
	return Feature{name}
}

// Name returns the column name of f and whether f is set.
func (f Feature) Name() (string, bool) {
	return f.name, f.name != ""
}

func (f Feature) IsSet() bool {
	return f.name != ""
}

func (f Feature) String() string {
	if f.name == "" {
		return "-"
	}
	return f.name
}

// State is the complete selection state from which a derived table
// is computed. It is replaced, never patched, on each event.
type State struct {
	Years     YearRange
	Map       MapSelection
	Last      Interaction
	Primary   Feature
	Secondary Feature
}

// InitialState returns the state of a freshly opened dashboard: the
// full year span of base, everything selected, nothing highlighted.
func InitialState(base *incident.Table) State {
	st := State{Years: AllYears}
	for i := 0; i < base.Len(); i++ {
		y := base.Year(i)
		if i == 0 || y < st.Years.Lo {
			st.Years.Lo = y
		}
		if i == 0 || y > st.Years.Hi {
			st.Years.Hi = y
		}
	}
	return st
}
