// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package views computes the data behind each dashboard chart from a
// derived table and the chart's own controls.
//
// Every function here is pure: it reads a *crossfilter.Derived and
// returns fresh values. Drawing the result is left to the caller.
package views
