// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crossfilter computes the derived table shared by the views
// of the incident dashboard.
//
// Each UI event replaces the selection State wholesale. Publish then
// recomputes the derived table from the immutable base table in three
// strictly ordered stages:
//
//	Project  drop rows outside the year range and assign opacity
//	         from the map selection
//	Bucket   collapse rare values of each groupable feature into
//	         Other, counting only selected rows
//	Resolve  assign each row a highlight color from the most recent
//	         interaction
//
// Bucketing must precede resolution: a bar click names a series by
// index, and the index is only meaningful against the post-bucketing
// category set the bar chart was drawn from.
//
// No stage modifies its input. Every stage returns a new Rows, and the
// base table is only ever read.
package crossfilter
