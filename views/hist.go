// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/incident"
)

// YearHistogram returns the number of selected incidents in each year
// from the earliest to the latest selected year, including years
// with no incidents. Its columns are Incident.year and count.
func YearHistogram(d *crossfilter.Derived) *table.Table {
	var years []float64
	for i := 0; i < d.Len(); i++ {
		if d.Selected(i) {
			years = append(years, float64(d.Year(i)))
		}
	}
	if len(years) == 0 {
		return new(table.Table)
	}

	lo, hi := stats.Bounds(years)
	nbins := int(hi-lo) + 1
	h := stats.NewLinearHist(lo, hi+1, nbins)
	for _, y := range years {
		h.Add(y)
	}
	_, bins, _ := h.Counts()

	ys := make([]int, nbins)
	counts := make([]int, nbins)
	for i, n := range bins {
		ys[i] = int(lo) + i
		counts[i] = int(n)
	}
	return new(table.Builder).
		Add(incident.Year, ys).
		Add(CountColumn, counts).
		Done()
}

// SliderSpec describes the year range slider.
type SliderSpec struct {
	Min, Max int

	// Marks are the labelled years, every 15 years down from Max.
	Marks []int
}

// markStep is the spacing of slider marks in years.
const markStep = 15

// Slider returns the slider for the years spanned by base.
func Slider(base *incident.Table) SliderSpec {
	if base.Len() == 0 {
		return SliderSpec{}
	}
	years := make([]float64, base.Len())
	for i := range years {
		years[i] = float64(base.Year(i))
	}
	lo, hi := stats.Bounds(years)
	s := SliderSpec{Min: int(lo), Max: int(hi)}
	for y := s.Max; y > s.Min; y -= markStep {
		s.Marks = append(s.Marks, y)
	}
	return s
}

// Title returns the heading shown above the slider.
func Title(r crossfilter.YearRange) string {
	return fmt.Sprintf("Incidents from %d until %d", r.Lo, r.Hi)
}
