// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package report

import (
	"fmt"
	"io"

	"github.com/signal18/cstats/statistics"
)

const precision = 6

type textRenderer struct{}

func (textRenderer) All(w io.Writer, sd statistics.StatData) error {
	_, err := fmt.Fprintf(w, "sum: %s\nsize: %d\navg: %s\nmin: %s\nmax: %s\nσ: %s\ns: %s\n",
		FormatFloat(sd.Sum),
		sd.Count,
		FormatFixed(sd.Avg, precision),
		FormatFloat(sd.Min),
		FormatFloat(sd.Max),
		FormatFixed(sd.Sigma, precision),
		FormatFixed(sd.StandardDeviation, precision),
	)
	return err
}

func (textRenderer) Sum(w io.Writer, sum float64) error {
	_, err := fmt.Fprintf(w, "sum = %s\n", FormatFloat(sum))
	return err
}
