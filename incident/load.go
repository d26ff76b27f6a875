// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Open loads a Table from path. Files ending in .xlsx are read as
// spreadsheets; everything else is read as CSV with the separator
// sniffed from the header line.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *Table
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		t, err = LoadXLSX(f)
	} else {
		t, err = LoadCSV(f, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// LoadCSV reads a CSV incident file from r. If comma is 0, the
// separator is ';' when the header line contains one and ','
// otherwise.
func LoadCSV(r io.Reader, comma rune) (*Table, error) {
	br := bufio.NewReader(r)
	if comma == 0 {
		comma = ','
		head, err := br.Peek(br.Size())
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, err
		}
		if i := bytes.IndexByte(head, '\n'); i >= 0 {
			head = head[:i]
		}
		if bytes.IndexByte(head, ';') >= 0 {
			comma = ';'
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s (empty input)", ErrMissingColumn, UID)
	}
	return FromRecords(records[0], records[1:])
}

// LoadXLSX reads the first sheet of a spreadsheet. The first row is
// the header.
func LoadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s (no sheets)", ErrMissingColumn, UID)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s (empty sheet)", ErrMissingColumn, UID)
	}
	return FromRecords(rows[0], rows[1:])
}

// FromRecords builds a Table from a header and string records.
//
// Records with an empty UID or an unparseable year are dropped.
// Coordinates may use a decimal comma; unparseable coordinates become
// NaN. Every column other than UID, year and the coordinates is
// stored as a trimmed categorical string.
func FromRecords(header []string, records [][]string) (*Table, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			// Spreadsheet "CSV UTF-8" exports start with a byte order mark.
			h = strings.TrimPrefix(h, "\ufeff")
		}
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range []string{UID, Year, Latitude, Longitude} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	field := func(rec []string, name string) string {
		i := idx[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	c := Columns{Categorical: make(map[string][]string)}
	var catNames []string
	for name := range idx {
		switch name {
		case UID, Year, Latitude, Longitude, "":
			continue
		}
		catNames = append(catNames, name)
		c.Categorical[name] = []string{}
	}

	for _, rec := range records {
		uid, ok := parseInt(field(rec, UID))
		if !ok {
			continue
		}
		year, ok := parseInt(field(rec, Year))
		if !ok {
			continue
		}
		c.UID = append(c.UID, uid)
		c.Year = append(c.Year, year)
		c.Latitude = append(c.Latitude, parseCoord(field(rec, Latitude)))
		c.Longitude = append(c.Longitude, parseCoord(field(rec, Longitude)))
		for _, name := range catNames {
			c.Categorical[name] = append(c.Categorical[name], field(rec, name))
		}
	}
	return New(c)
}

// parseInt accepts integers and integral floats such as "1923.0",
// which spreadsheet exports produce.
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
