// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

// Resolve returns a copy of rows with a highlight color assigned to
// every row according to the last interaction.
//
// Rows that match the interaction get its color and every other row
// gets o.GrayedOut:
//
//   - a bar click with no secondary feature matches rows whose primary
//     value is the clicked X, colored by the palette entry of the
//     clicked series;
//   - a bar click with a secondary feature additionally requires the
//     secondary value to be the SeriesIndex'th entry of
//     rows.Categories(secondary);
//   - a parallel categories click matches the clicked UIDs, colored
//     o.Brush.
//
// Anything else, including Clear, an unset primary feature and a
// series index with no corresponding category, matches nothing.
func Resolve(rows *Rows, last Interaction, primary, secondary Feature, o Options) *Rows {
	color := make([]string, rows.Len())
	for i := range color {
		color[i] = o.GrayedOut
	}

	switch last.Trigger {
	case TriggerBarClick:
		match := barMatcher(rows, last, primary, secondary)
		if match == nil || len(o.Palette) == 0 {
			break
		}
		c := o.PaletteColor(last.SeriesIndex)
		for i := range color {
			if match(i) {
				color[i] = c
			}
		}

	case TriggerParcatClick:
		picked := make(map[int]bool, len(last.UIDs))
		for _, uid := range last.UIDs {
			picked[uid] = true
		}
		for i := range color {
			if picked[rows.UID(i)] {
				color[i] = o.Brush
			}
		}
	}
	return rows.withColors(color)
}

// barMatcher returns a predicate for the rows under a clicked bar, or
// nil if the click cannot match any row.
func barMatcher(rows *Rows, click Interaction, primary, secondary Feature) func(int) bool {
	if click.SeriesIndex < 0 {
		return nil
	}
	pname, ok := primary.Name()
	if !ok {
		return nil
	}
	pcol := rows.column(pname)
	if pcol == nil {
		return nil
	}

	sname, ok := secondary.Name()
	if !ok {
		return func(i int) bool { return pcol[i] == click.X }
	}
	scol := rows.column(sname)
	series := rows.Categories(sname)
	if scol == nil || click.SeriesIndex >= len(series) {
		// Stale click: the series it named no longer exists.
		return nil
	}
	sval := series[click.SeriesIndex]
	return func(i int) bool { return pcol[i] == click.X && scol[i] == sval }
}
