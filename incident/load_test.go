// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const header = "UID;Incident.year;Incident.month;State;Site.category;Victim.activity;Injury.severity;Victim.gender;Shark.name;Data.source;Latitude;Longitude"

func TestLoadCSV(t *testing.T) {
	input := header + `
1;1923;3;NSW;coastal;swimming;injured;male;white shark;media;-33,8;151,2
;1930;4;QLD;coastal;surfing;fatal;male;tiger shark;media;-27,4;153,1
3;1931.0;5;QLD;river;fishing;minor;female;bull shark;museum;bad;153
4;;6;VIC;ocean;diving;fatal;male;white shark;media;-38;145
`
	tab, err := LoadCSV(strings.NewReader(input), 0)
	require.NoError(t, err)

	// Row 2 has no UID and row 4 has no year.
	require.Equal(t, 2, tab.Len())
	assert.Equal(t, []int{1, 3}, tab.UIDs())
	assert.Equal(t, []int{1923, 1931}, tab.Years())
	lat, lng := tab.LatLng(0)
	assert.InDelta(t, -33.8, lat, 1e-9)
	assert.InDelta(t, 151.2, lng, 1e-9)
	lat, _ = tab.LatLng(1)
	assert.True(t, math.IsNaN(lat))
	assert.Equal(t, "river", tab.Value(Site, 1))
}

func TestLoadCSVComma(t *testing.T) {
	input := strings.Replace(header, ";", ",", -1) + "\n7,2001,1,WA,ocean,surfing,fatal,male,white shark,media,-31.9,115.8\n"
	tab, err := LoadCSV(strings.NewReader(input), 0)
	require.NoError(t, err)
	require.Equal(t, 1, tab.Len())
	assert.Equal(t, "WA", tab.Value(State, 0))
}

func TestLoadCSVByteOrderMark(t *testing.T) {
	input := "\ufeff" + header + "\n7;2001;1;WA;ocean;surfing;fatal;male;white shark;media;-31,9;115,8\n"
	tab, err := LoadCSV(strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, tab.UIDs())
}

func TestLoadCSVMissingColumn(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("UID;Latitude;Longitude\n1;0;0\n"), ';')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))

	_, err = LoadCSV(strings.NewReader(""), ';')
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cols := strings.Split(header, ";")
	row := []interface{}{"9", "1988", "7", "SA", "ocean", "diving", "fatal", "male", "white shark", "media", "-35", "138.5"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &cols))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tab, err := LoadXLSX(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, tab.Len())
	assert.Equal(t, 9, tab.UID(0))
	assert.Equal(t, 1988, tab.Year(0))
	assert.Equal(t, "SA", tab.Value(State, 0))
}
