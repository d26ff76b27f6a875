// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import "github.com/aclements/sharkfilter/incident"

// Project drops the rows of base outside years and sets the opacity
// of each remaining row: SelectedOpacity if sel contains it,
// unselected otherwise. Row order is preserved.
func Project(base *incident.Table, years YearRange, sel MapSelection, unselected float64) *Rows {
	r := &Rows{base: base}
	for i := 0; i < base.Len(); i++ {
		if !years.Contains(base.Year(i)) {
			continue
		}
		r.idx = append(r.idx, i)
		if sel.Contains(base.UID(i)) {
			r.opacity = append(r.opacity, SelectedOpacity)
			r.selected = append(r.selected, true)
			r.nsel++
		} else {
			r.opacity = append(r.opacity, unselected)
			r.selected = append(r.selected, false)
		}
	}

	names := base.Categorical()
	r.cols = make(map[string][]string, len(names))
	for _, name := range names {
		col := make([]string, len(r.idx))
		for i, bi := range r.idx {
			col[i] = base.Value(name, bi)
		}
		r.cols[name] = col
	}
	return r
}
