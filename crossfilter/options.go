// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crossfilter

import (
	"errors"
	"fmt"

	"github.com/aclements/sharkfilter/incident"
)

// Other is the category that rare values are bucketed into. The
// leading '~' sorts it after every other value.
const Other = "~Other"

// SelectedOpacity is the opacity of rows inside the map selection.
const SelectedOpacity = 1.0

// Column names added to the derived table.
const (
	OpacityColumn   = "opacity"
	HighlightColumn = "highlight_color"
)

// DefaultPalette is the discrete color sequence used for chart series.
var DefaultPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// DefaultGroupable lists the columns whose rare values are bucketed
// into Other. Columns such as Victim.gender are deliberately absent.
var DefaultGroupable = []string{
	"Site.category", "No.sharks", "Victim.activity", "Present.at.time.of.bite",
	"Shark.behavior", "Injury.location", "Injury.severity", "Victim.age",
	"Diversionary.action.taken", "Data.source", "Shark.name",
}

// DefaultFeaturePalettes are the fixed color sequences of features
// whose values have conventional colors.
var DefaultFeaturePalettes = map[string][]string{
	"Provoked/unprovoked": {"#00C49D", "#C42E00", "#DBDBDB"},
	incident.Gender:       {"#DE05FF", "#058AFF", "#DBDBDB"},
}

const (
	DefaultGrayedOut         = "#BABABA"
	DefaultBrush             = "#FF6692"
	DefaultUnselectedOpacity = 0.05
)

// Options are the fixed parameters of the pipeline.
type Options struct {
	// Groupable is the allow-list of bucketed columns.
	Groupable []string

	// Palette colors bar-click highlights by series index.
	Palette []string

	// GrayedOut is the highlight color of rows that do not match
	// the current interaction.
	GrayedOut string

	// Brush is the highlight color of rows picked in the parallel
	// categories plot.
	Brush string

	// UnselectedOpacity is the opacity of rows outside the map
	// selection.
	UnselectedOpacity float64

	// FeaturePalettes overrides Palette for coloring map points by
	// the named features.
	FeaturePalettes map[string][]string
}

func DefaultOptions() Options {
	return Options{
		Groupable:         append([]string(nil), DefaultGroupable...),
		Palette:           append([]string(nil), DefaultPalette...),
		GrayedOut:         DefaultGrayedOut,
		Brush:             DefaultBrush,
		UnselectedOpacity: DefaultUnselectedOpacity,
		FeaturePalettes:   copyPalettes(DefaultFeaturePalettes),
	}
}

func copyPalettes(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Validate reports whether o can drive the pipeline.
func (o Options) Validate() error {
	if len(o.Palette) == 0 {
		return errors.New("palette is empty")
	}
	if o.GrayedOut == "" || o.Brush == "" {
		return errors.New("grayed-out and brush colors must be set")
	}
	for f, p := range o.FeaturePalettes {
		if len(p) == 0 {
			return fmt.Errorf("palette for %s is empty", f)
		}
	}
	// Selected rows are exactly the rows at SelectedOpacity.
	if o.UnselectedOpacity < 0 || o.UnselectedOpacity >= SelectedOpacity {
		return fmt.Errorf("unselected opacity %g not in [0, 1)", o.UnselectedOpacity)
	}
	return nil
}

// PaletteColor returns the palette color of series i, wrapping around
// the palette.
func (o Options) PaletteColor(i int) string {
	n := len(o.Palette)
	return o.Palette[((i%n)+n)%n]
}

// FeatureColor returns the color of series i when coloring by
// feature: from feature's own palette if it has one, otherwise from
// Palette.
func (o Options) FeatureColor(feature string, i int) string {
	p, ok := o.FeaturePalettes[feature]
	if !ok {
		return o.PaletteColor(i)
	}
	return p[((i%len(p))+len(p))%len(p)]
}

func (o Options) groupable(feature string) bool {
	for _, g := range o.Groupable {
		if g == feature {
			return true
		}
	}
	return false
}
