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
	"io"
	"strconv"

	"github.com/gwenn/yacr"
	"github.com/juju/errors"

	"github.com/signal18/cstats/statistics"
)

var header = []interface{}{"sum", "size", "avg", "min", "max", "sigma", "s"}

// delimitedRenderer writes a header line and a value line separated by sep.
type delimitedRenderer struct {
	sep byte
}

func (r *delimitedRenderer) All(w io.Writer, sd statistics.StatData) error {
	return r.write(w, header, []interface{}{
		FormatFloat(sd.Sum),
		strconv.Itoa(sd.Count),
		FormatFloat(sd.Avg),
		FormatFloat(sd.Min),
		FormatFloat(sd.Max),
		FormatFloat(sd.Sigma),
		FormatFloat(sd.StandardDeviation),
	})
}

func (r *delimitedRenderer) Sum(w io.Writer, sum float64) error {
	return r.write(w, header[:1], []interface{}{FormatFloat(sum)})
}

func (r *delimitedRenderer) write(w io.Writer, records ...[]interface{}) error {
	cw := yacr.NewWriter(w, r.sep, true)
	for _, values := range records {
		cw.WriteRecord(values...)
	}
	cw.Flush()
	return errors.Trace(cw.Err())
}
