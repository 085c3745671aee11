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
	"encoding/json"
	"io"
	"strconv"

	"github.com/signal18/cstats/statistics"
)

// jsonFloat keeps non finite values representable: they are written as strings.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	if s, ok := nonFinite(float64(f)); ok {
		return []byte(strconv.Quote(s)), nil
	}
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

type jsonStats struct {
	Sum               jsonFloat `json:"sum"`
	Count             int       `json:"size"`
	Avg               jsonFloat `json:"avg"`
	Min               jsonFloat `json:"min"`
	Max               jsonFloat `json:"max"`
	Sigma             jsonFloat `json:"sigma"`
	StandardDeviation jsonFloat `json:"s"`
}

type jsonRenderer struct{}

func (jsonRenderer) All(w io.Writer, sd statistics.StatData) error {
	return json.NewEncoder(w).Encode(jsonStats{
		Sum:               jsonFloat(sd.Sum),
		Count:             sd.Count,
		Avg:               jsonFloat(sd.Avg),
		Min:               jsonFloat(sd.Min),
		Max:               jsonFloat(sd.Max),
		Sigma:             jsonFloat(sd.Sigma),
		StandardDeviation: jsonFloat(sd.StandardDeviation),
	})
}

func (jsonRenderer) Sum(w io.Writer, sum float64) error {
	return json.NewEncoder(w).Encode(struct {
		Sum jsonFloat `json:"sum"`
	}{jsonFloat(sum)})
}
