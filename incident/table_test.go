// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns(n int) Columns {
	c := Columns{Categorical: make(map[string][]string)}
	for _, name := range RequiredCategorical {
		c.Categorical[name] = make([]string, n)
	}
	for i := 0; i < n; i++ {
		c.UID = append(c.UID, 100+i)
		c.Year = append(c.Year, 1900+i)
		c.Latitude = append(c.Latitude, -30)
		c.Longitude = append(c.Longitude, 150)
		c.Categorical[State][i] = []string{"NSW", "QLD"}[i%2]
	}
	return c
}

func TestNew(t *testing.T) {
	tab, err := New(testColumns(4))
	require.NoError(t, err)
	assert.Equal(t, 4, tab.Len())
	assert.Equal(t, 101, tab.UID(1))
	assert.Equal(t, 1902, tab.Year(2))
	assert.Equal(t, "QLD", tab.Value(State, 3))
	assert.True(t, tab.Has(Gender))
	assert.False(t, tab.Has("Nope"))

	i, ok := tab.Row(103)
	require.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = tab.Row(7)
	assert.False(t, ok)
}

func TestNewErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		mutate func(*Columns)
		want   error
	}{
		{"duplicate uid", func(c *Columns) { c.UID[1] = c.UID[0] }, ErrDuplicateUID},
		{"short year", func(c *Columns) { c.Year = c.Year[:1] }, ErrColumnLength},
		{"short categorical", func(c *Columns) { c.Categorical[Site] = nil }, ErrColumnLength},
		{"missing categorical", func(c *Columns) { delete(c.Categorical, Shark) }, ErrMissingColumn},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := testColumns(3)
			test.mutate(&c)
			_, err := New(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.want), "got %v", err)
		})
	}
}

func TestTableIsolated(t *testing.T) {
	c := testColumns(2)
	tab, err := New(c)
	require.NoError(t, err)

	// Mutating the input after New must not leak into the table.
	c.UID[0] = -1
	c.Categorical[State][0] = "XXX"
	assert.Equal(t, 100, tab.UID(0))
	assert.Equal(t, "NSW", tab.Value(State, 0))

	// Nor may mutating returned columns.
	col := tab.Column(State)
	col[0] = "XXX"
	uids := tab.UIDs()
	uids[0] = -1
	frame := tab.Frame()
	frame.MustColumn(State).([]string)[0] = "XXX"
	assert.Equal(t, 100, tab.UID(0))
	assert.Equal(t, "NSW", tab.Value(State, 0))
}

func TestFrame(t *testing.T) {
	tab, err := New(testColumns(3))
	require.NoError(t, err)
	f := tab.Frame()
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []string{UID, Year, Latitude, Longitude}, f.Columns()[:4])
	assert.Equal(t, []int{100, 101, 102}, f.MustColumn(UID))

	var buf bytes.Buffer
	table.Fprint(&buf, f)
	assert.Contains(t, buf.String(), "QLD")

	empty, err := New(testColumns(0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Frame().Len())
	assert.NotNil(t, empty.Frame().Column(UID))
}
