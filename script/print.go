// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/sharkfilter/crossfilter"
)

// Format returns the script line for ev.
func Format(ev crossfilter.Event) (string, error) {
	var words []string
	switch ev := ev.(type) {
	case crossfilter.MapSelectionChanged:
		words = []string{"map"}
		switch {
		case ev.Selection.All():
			words = append(words, "all")
		case len(ev.Selection.UIDs()) == 0:
			words = append(words, "none")
		default:
			words = append(words, itoas(ev.Selection.UIDs())...)
		}
	case crossfilter.YearRangeChanged:
		words = []string{"years", strconv.Itoa(ev.Lo), strconv.Itoa(ev.Hi)}
	case crossfilter.BarClicked:
		words = []string{"bar", strconv.Itoa(ev.SeriesIndex), ev.X}
	case crossfilter.ParcatClicked:
		words = append([]string{"parcat"}, itoas(ev.UIDs)...)
	case crossfilter.ClearClicked:
		words = []string{"clear"}
	case crossfilter.ColorFeaturesChanged:
		words = []string{"color", ev.Primary.String(), ev.Secondary.String()}
	default:
		return "", fmt.Errorf("cannot format event %T", ev)
	}
	return shellquote.Join(words...), nil
}

// Fprint writes events to w as a script.
func Fprint(w io.Writer, events []crossfilter.Event) error {
	for _, ev := range events {
		line, err := Format(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func itoas(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}
	return out
}
