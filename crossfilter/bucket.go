// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

// Bucket returns the feature column of rows with its low-frequency
// values replaced by Other.
//
// Only selected rows are counted. They are the rows at
// SelectedOpacity, since Options.Validate keeps the unselected
// opacity below it. A value is low-frequency if it occurs in fewer
// than 1% of the selected rows; it is then replaced in every row,
// selected or not. Features not in groupable, and all features when
// no row is selected, are returned unchanged. The result is always a
// fresh slice, or nil if rows has no such feature.
func Bucket(rows *Rows, feature string, groupable []string) []string {
	col := rows.Column(feature)
	if col == nil || !(Options{Groupable: groupable}).groupable(feature) {
		return col
	}
	n := rows.NumSelected()
	if n == 0 {
		return col
	}

	freq := make(map[string]int)
	for i, v := range col {
		if rows.Selected(i) {
			freq[v]++
		}
	}
	threshold := float64(n) / 100
	for i, v := range col {
		if float64(freq[v]) < threshold {
			col[i] = Other
		}
	}
	return col
}
