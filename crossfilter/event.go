// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import "fmt"

// An Event is a UI event that changes the selection state. Apply
// returns the new state; it never modifies st.
//
// Only bar clicks, parallel categories clicks and Clear produce a
// highlighting interaction. Every other event sets the last
// interaction to TriggerNone.
type Event interface {
	Apply(st State) State
	String() string
}

// MapSelectionChanged is a lasso selection (or deselection) on the map.
type MapSelectionChanged struct {
	Selection MapSelection
}

func (e MapSelectionChanged) Apply(st State) State {
	st.Map = e.Selection
	st.Last = Interaction{}
	return st
}

func (e MapSelectionChanged) String() string {
	return "map " + e.Selection.String()
}

// YearRangeChanged is a move of the year slider.
type YearRangeChanged struct {
	Lo, Hi int
}

func (e YearRangeChanged) Apply(st State) State {
	st.Years = Years(e.Lo, e.Hi)
	st.Last = Interaction{}
	return st
}

func (e YearRangeChanged) String() string {
	return fmt.Sprintf("years %d %d", e.Lo, e.Hi)
}

// BarClicked is a click on a bar or stacked sub-bar.
type BarClicked struct {
	SeriesIndex int
	X           string
}

func (e BarClicked) Apply(st State) State {
	st.Last = BarClick(e.SeriesIndex, e.X)
	return st
}

func (e BarClicked) String() string {
	return fmt.Sprintf("bar %d %q", e.SeriesIndex, e.X)
}

// ParcatClicked is a click in the parallel categories plot, carrying
// the UIDs of the rows under the clicked ribbon.
type ParcatClicked struct {
	UIDs []int
}

func (e ParcatClicked) Apply(st State) State {
	st.Last = ParcatClick(e.UIDs...)
	return st
}

func (e ParcatClicked) String() string {
	return fmt.Sprintf("parcat %v", e.UIDs)
}

// ClearClicked is the clear button. It drops the map selection as well
// as any highlight.
type ClearClicked struct{}

func (ClearClicked) Apply(st State) State {
	st.Map = SelectAll()
	st.Last = Clear()
	return st
}

func (ClearClicked) String() string {
	return "clear"
}

// ColorFeaturesChanged is a change of either color dropdown.
type ColorFeaturesChanged struct {
	Primary, Secondary Feature
}

func (e ColorFeaturesChanged) Apply(st State) State {
	st.Primary, st.Secondary = e.Primary, e.Secondary
	st.Last = Interaction{}
	return st
}

func (e ColorFeaturesChanged) String() string {
	return fmt.Sprintf("color %s %s", e.Primary, e.Secondary)
}
