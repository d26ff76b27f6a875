// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package incident holds the immutable base table of shark incident
// records.
//
// A Table is built once, at load time, and never changes afterwards.
// Every accessor that returns a slice returns a fresh copy, so no
// consumer can reach into a Table and alter the values other consumers
// see.
package incident

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// Column names used by the cleaned incident dataset.
const (
	UID       = "UID"
	Year      = "Incident.year"
	Month     = "Incident.month"
	State     = "State"
	Site      = "Site.category"
	Activity  = "Victim.activity"
	Severity  = "Injury.severity"
	Gender    = "Victim.gender"
	Shark     = "Shark.name"
	Source    = "Data.source"
	Latitude  = "Latitude"
	Longitude = "Longitude"
)

// RequiredCategorical lists the categorical columns every Table must
// carry. UID, Year, Latitude and Longitude are required as well but
// are typed columns.
var RequiredCategorical = []string{
	State, Site, Activity, Severity, Gender, Shark, Source, Month,
}

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrDuplicateUID  = errors.New("duplicate UID")
	ErrColumnLength  = errors.New("column length mismatch")
)

// Columns is the column-oriented input to New. All slices must have
// the same length.
type Columns struct {
	UID       []int
	Year      []int
	Latitude  []float64
	Longitude []float64

	// Categorical maps a column name to its values. It must
	// include every column in RequiredCategorical.
	Categorical map[string][]string
}

// Table is an immutable, ordered set of incident records. Rows are
// identified by UID; row positions are only meaningful within a
// single Table.
type Table struct {
	uids  []int
	years []int
	lat   []float64
	lon   []float64
	cats  map[string][]string
	names []string
	rows  map[int]int
}

// New validates c and returns a Table holding a private copy of it.
func New(c Columns) (*Table, error) {
	n := len(c.UID)
	for name, l := range map[string]int{
		Year:      len(c.Year),
		Latitude:  len(c.Latitude),
		Longitude: len(c.Longitude),
	} {
		if l != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrColumnLength, name, l, n)
		}
	}
	for _, name := range RequiredCategorical {
		if _, ok := c.Categorical[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	t := &Table{
		uids:  copyInts(c.UID),
		years: copyInts(c.Year),
		lat:   copyFloats(c.Latitude),
		lon:   copyFloats(c.Longitude),
		cats:  make(map[string][]string, len(c.Categorical)),
		rows:  make(map[int]int, n),
	}
	for name, col := range c.Categorical {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrColumnLength, name, len(col), n)
		}
		t.cats[name] = copyStrings(col)
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	for i, uid := range t.uids {
		if _, ok := t.rows[uid]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateUID, uid)
		}
		t.rows[uid] = i
	}
	return t, nil
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.uids)
}

func (t *Table) UID(i int) int {
	return t.uids[i]
}

func (t *Table) Year(i int) int {
	return t.years[i]
}

// LatLng returns the coordinates of row i in degrees.
func (t *Table) LatLng(i int) (lat, lng float64) {
	return t.lat[i], t.lon[i]
}

// Value returns the value of categorical column col at row i. It
// panics if col is not a categorical column of t.
func (t *Table) Value(col string, i int) string {
	c, ok := t.cats[col]
	if !ok {
		panic(fmt.Sprintf("unknown column %q", col))
	}
	return c[i]
}

// Has reports whether t has a categorical column named col.
func (t *Table) Has(col string) bool {
	_, ok := t.cats[col]
	return ok
}

// Categorical returns the names of the categorical columns of t in
// sorted order.
func (t *Table) Categorical() []string {
	return copyStrings(t.names)
}

// Column returns a copy of categorical column col, or nil if t has no
// such column.
func (t *Table) Column(col string) []string {
	c, ok := t.cats[col]
	if !ok {
		return nil
	}
	return copyStrings(c)
}

func (t *Table) UIDs() []int {
	return copyInts(t.uids)
}

func (t *Table) Years() []int {
	return copyInts(t.years)
}

// Row returns the row position of uid.
func (t *Table) Row(uid int) (int, bool) {
	i, ok := t.rows[uid]
	return i, ok
}

// Frame returns t as a go-gg table. The typed columns come first,
// followed by the categorical columns in sorted order.
func (t *Table) Frame() *table.Table {
	b := new(table.Builder).
		Add(UID, t.UIDs()).
		Add(Year, t.Years()).
		Add(Latitude, copyFloats(t.lat)).
		Add(Longitude, copyFloats(t.lon))
	for _, name := range t.names {
		b.Add(name, t.Column(name))
	}
	return b.Done()
}

// The copy helpers never return nil: go-gg treats a nil column as a
// request to delete it.

func copyInts(xs []int) []int {
	return append(make([]int, 0, len(xs)), xs...)
}

func copyFloats(xs []float64) []float64 {
	return append(make([]float64, 0, len(xs)), xs...)
}

func copyStrings(xs []string) []string {
	return append(make([]string, 0, len(xs)), xs...)
}
