// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads dashboard settings from YAML.
//
// A config file looks like:
//
//	groupable: [Site.category, Victim.activity, Shark.name]
//	palette: ["#636EFA", "#EF553B", tomato]
//	grayed_out: "#bababa"
//	brush: hotpink
//	unselected_opacity: 0.05
//	feature_palettes:
//	  Victim.gender: [orchid, steelblue, "#dbdbdb"]
//	  Provoked/unprovoked: []
//	years: [1900, 2020]
//	primary: State
//	secondary: "-"
//
// Colors are either #rrggbb (or #rgb) or an SVG color name. Omitted
// fields keep their defaults. An empty feature palette removes that
// feature's default palette.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/aclements/sharkfilter/crossfilter"
)

// Config holds dashboard settings.
type Config struct {
	Groupable         []string `yaml:"groupable"`
	Palette           []string `yaml:"palette"`
	GrayedOut         string   `yaml:"grayed_out"`
	Brush             string   `yaml:"brush"`
	UnselectedOpacity *float64 `yaml:"unselected_opacity"`

	FeaturePalettes map[string][]string `yaml:"feature_palettes"`

	// Years is the initial [lo, hi] year range. If empty, the full
	// span of the data is used.
	Years []int `yaml:"years"`

	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

// Default returns the settings of the stock dashboard.
func Default() *Config {
	o := crossfilter.DefaultOptions()
	op := o.UnselectedOpacity
	return &Config{
		Groupable:         o.Groupable,
		Palette:           o.Palette,
		GrayedOut:         o.GrayedOut,
		Brush:             o.Brush,
		UnselectedOpacity: &op,
		FeaturePalettes:   o.FeaturePalettes,
	}
}

// Load reads the config file at path, filling omitted fields from
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML config data, filling omitted fields from Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Options(); err != nil {
		return nil, err
	}
	if len(cfg.Years) != 0 && len(cfg.Years) != 2 {
		return nil, fmt.Errorf("years must be [lo, hi], got %v", cfg.Years)
	}
	return cfg, nil
}

// Options converts c to pipeline options, normalizing every color to
// #rrggbb.
func (c *Config) Options() (crossfilter.Options, error) {
	o := crossfilter.Options{
		Groupable:         append([]string(nil), c.Groupable...),
		UnselectedOpacity: crossfilter.DefaultUnselectedOpacity,
	}
	if c.UnselectedOpacity != nil {
		o.UnselectedOpacity = *c.UnselectedOpacity
	}
	for _, p := range c.Palette {
		hex, err := ParseColor(p)
		if err != nil {
			return o, fmt.Errorf("palette: %w", err)
		}
		o.Palette = append(o.Palette, hex)
	}
	for f, p := range c.FeaturePalettes {
		if len(p) == 0 {
			continue
		}
		if o.FeaturePalettes == nil {
			o.FeaturePalettes = make(map[string][]string)
		}
		for _, col := range p {
			hex, err := ParseColor(col)
			if err != nil {
				return o, fmt.Errorf("feature_palettes: %s: %w", f, err)
			}
			o.FeaturePalettes[f] = append(o.FeaturePalettes[f], hex)
		}
	}
	var err error
	if o.GrayedOut, err = ParseColor(c.GrayedOut); err != nil {
		return o, fmt.Errorf("grayed_out: %w", err)
	}
	if o.Brush, err = ParseColor(c.Brush); err != nil {
		return o, fmt.Errorf("brush: %w", err)
	}
	return o, o.Validate()
}

// State returns the initial selection state for data spanning def.
func (c *Config) State(def crossfilter.State) crossfilter.State {
	st := def
	if len(c.Years) == 2 {
		st.Years = crossfilter.Years(c.Years[0], c.Years[1])
	}
	st.Primary = crossfilter.FeatureOf(c.Primary)
	st.Secondary = crossfilter.FeatureOf(c.Secondary)
	return st
}

// ParseColor parses a #rgb or #rrggbb color or an SVG color name and
// returns it as #rrggbb.
func ParseColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		var err error
		switch len(s) {
		case 7:
			_, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		case 4:
			_, err = fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
			r, g, b = r*17, g*17, b*17
		default:
			err = fmt.Errorf("bad length")
		}
		if err != nil {
			return "", fmt.Errorf("invalid color %q", s)
		}
		return hex(color.RGBA{r, g, b, 0xff}), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return hex(c), nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
