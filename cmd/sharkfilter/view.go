// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"

	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/incident"
	"github.com/aclements/sharkfilter/views"
)

var defaultDims = []string{incident.State, incident.Site, incident.Activity, incident.Severity}

type viewFlags struct {
	script    string
	x, color  string
	normalize bool
	dims      []string
	level     int
	lasso     string
	format    string
}

func newViewCmd(g *globals) *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:   "view {bar|parcat|hist|slider|map|density}",
		Short: "Replay a script and print the data behind one view",
		Long: `Replay a script and print the data behind one view.

The bar chart plots --x colored by --color; both default to the
primary and secondary color features. --lasso selects the rows inside
a polygon of "lat,lng" vertices separated by spaces before the view is
computed.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bar", "parcat", "hist", "slider", "map", "density"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(f.format); err != nil {
				return err
			}
			s, err := g.session()
			if err != nil {
				return err
			}
			if err := replay(cmd, s, f.script); err != nil {
				return err
			}
			if f.lasso != "" {
				poly, err := parsePolygon(f.lasso)
				if err != nil {
					return err
				}
				s.Dispatch(crossfilter.MapSelectionChanged{Selection: views.Lasso(s.Derived(), poly)})
			}
			return render(cmd.OutOrStdout(), s, args[0], &f)
		},
	}
	cmd.Flags().StringVarP(&f.script, "script", "s", "", "replay events from `file` first")
	cmd.Flags().StringVar(&f.x, "x", "", "bar chart x `feature`")
	cmd.Flags().StringVar(&f.color, "color", "", "bar chart and map color `feature`")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "report bar proportions instead of counts")
	cmd.Flags().StringSliceVar(&f.dims, "dims", defaultDims, "parallel categories `features`")
	cmd.Flags().IntVar(&f.level, "level", 6, "S2 cell `level` for density")
	cmd.Flags().StringVar(&f.lasso, "lasso", "", "select rows inside `polygon`")
	cmd.Flags().StringVar(&f.format, "format", "table", "output format (table, json)")
	return cmd
}

func render(w io.Writer, s *crossfilter.Session, kind string, f *viewFlags) error {
	d := s.Derived()
	st := d.State()
	feature := func(name string, def crossfilter.Feature) crossfilter.Feature {
		if name == "" {
			return def
		}
		return crossfilter.FeatureOf(name)
	}

	var tab *table.Table
	var v interface{}
	switch kind {
	case "bar":
		x := feature(f.x, st.Primary)
		if !x.IsSet() {
			return fmt.Errorf("bar: no x feature; use --x or a primary color feature")
		}
		tab = views.BarCounts(d, x, feature(f.color, st.Secondary), f.normalize)
	case "hist":
		tab = views.YearHistogram(d)
	case "density":
		tab = views.Density(d, f.level)
	case "parcat":
		p := views.Parcat(d, f.dims, st.Primary, st.Secondary)
		v, tab = p, parcatTable(p)
	case "map":
		pts := views.MapPoints(d, feature(f.color, st.Primary))
		v, tab = pts, pointsTable(pts)
	case "slider":
		sl := views.Slider(s.Base())
		if f.format == "json" {
			return json.NewEncoder(w).Encode(struct {
				views.SliderSpec
				Title string
			}{sl, views.Title(st.Years)})
		}
		_, err := fmt.Fprintf(w, "%s\nmin %d max %d marks %v\n", views.Title(st.Years), sl.Min, sl.Max, sl.Marks)
		return err
	default:
		return fmt.Errorf("unknown view %q", kind)
	}

	if f.format == "json" {
		if v == nil {
			v = columns(tab)
		}
		return json.NewEncoder(w).Encode(v)
	}
	return table.Fprint(w, tab)
}

// columns maps each column of t to its values.
func columns(t *table.Table) map[string]interface{} {
	m := make(map[string]interface{})
	for _, name := range t.Columns() {
		m[name] = t.MustColumn(name)
	}
	return m
}

func parcatTable(p views.ParcatData) *table.Table {
	b := new(table.Builder).Add(incident.UID, p.UIDs)
	for _, dim := range p.Dimensions {
		b.Add(dim.Name, dim.Values)
	}
	return b.Add(crossfilter.HighlightColumn, p.Colors).Done()
}

func pointsTable(pts []views.Point) *table.Table {
	n := len(pts)
	uids, lats, lngs := make([]int, n), make([]float64, n), make([]float64, n)
	opacity, color := make([]float64, n), make([]string, n)
	for i, p := range pts {
		uids[i], lats[i], lngs[i] = p.UID, p.Lat, p.Lng
		opacity[i], color[i] = p.Opacity, p.Color
	}
	return new(table.Builder).
		Add(incident.UID, uids).
		Add(incident.Latitude, lats).
		Add(incident.Longitude, lngs).
		Add(crossfilter.OpacityColumn, opacity).
		Add("color", color).
		Done()
}

// parsePolygon parses space-separated "lat,lng" vertices.
func parsePolygon(s string) ([]views.LatLng, error) {
	var poly []views.LatLng
	for _, v := range strings.Fields(s) {
		lat, lng, ok := strings.Cut(v, ",")
		if !ok {
			return nil, fmt.Errorf("bad polygon vertex %q: want lat,lng", v)
		}
		var ll views.LatLng
		var err error
		if ll.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
			return nil, fmt.Errorf("bad polygon vertex %q: %w", v, err)
		}
		if ll.Lng, err = strconv.ParseFloat(lng, 64); err != nil {
			return nil, fmt.Errorf("bad polygon vertex %q: %w", v, err)
		}
		poly = append(poly, ll)
	}
	return poly, nil
}
