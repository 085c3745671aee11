// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package report renders statistics for the terminal or for other tools.
package report

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/juju/errors"

	"github.com/signal18/cstats/statistics"
)

// Renderer writes the output of the stats subcommands.
type Renderer interface {
	// All writes the complete record.
	All(w io.Writer, sd statistics.StatData) error
	// Sum writes the sum only.
	Sum(w io.Writer, sum float64) error
}

var renderers = map[string]func() Renderer{
	"text": func() Renderer { return textRenderer{} },
	"json": func() Renderer { return jsonRenderer{} },
	"csv":  func() Renderer { return &delimitedRenderer{sep: ','} },
	"tsv":  func() Renderer { return &delimitedRenderer{sep: '\t'} },
}

// New returns the renderer registered under name.
func New(name string) (Renderer, error) {
	create, ok := renderers[strings.ToLower(name)]
	if !ok {
		return nil, errors.NotValidf("output format %q", name)
	}
	return create(), nil
}

// Names lists the registered renderers.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for n := range renderers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FormatFloat prints the shortest decimal form of v that reads back to v.
// Non finite values print as NaN, inf and -inf.
func FormatFloat(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed prints v with prec decimals.
func FormatFixed(v float64, prec int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}
