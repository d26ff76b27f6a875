// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/sharkfilter/incident"
)

var months = map[string]int{}

func init() {
	for i, m := range []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	} {
		months[m] = i + 1
		months[m[:3]] = i + 1
	}
	for i := 1; i <= 12; i++ {
		months[strconv.Itoa(i)] = i
		months[fmt.Sprintf("%02d", i)] = i
	}
}

// SortCategories sorts the values of feature into the order charts
// draw them in: calendar order for Incident.month, lexical order for
// everything else. Other always sorts last.
//
// Bar click series indexes are resolved against this order, so every
// view that assigns series must use it too.
func SortCategories(feature string, values []string) {
	if feature != incident.Month {
		sort.Slice(values, func(i, j int) bool {
			return less(values[i], values[j])
		})
		return
	}
	sort.SliceStable(values, func(i, j int) bool {
		mi, iok := months[strings.ToLower(values[i])]
		mj, jok := months[strings.ToLower(values[j])]
		switch {
		case iok && jok:
			return mi < mj
		case iok != jok:
			return iok
		}
		return less(values[i], values[j])
	})
}

func less(a, b string) bool {
	if (a == Other) != (b == Other) {
		return b == Other
	}
	return a < b
}
