// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
)

// MismatchHint is shown to the user when a csv file is read as plaintext.
const MismatchHint = "It looks like you are trying to parse a .csv file as a plaintext file!\n" +
	"Please re-run with the following:\n\ncstats stats -i=csv <command> <file>\n"

// Dataset is an ordered, non empty, read only sequence of samples.
type Dataset struct {
	values []float64
}

// New builds a Dataset from a copy of values.
func New(values []float64) (Dataset, error) {
	if len(values) == 0 {
		return Dataset{}, newError(EmptyDataset, "No data was able to be stored!")
	}
	v := make([]float64, len(values))
	copy(v, values)
	return Dataset{values: v}, nil
}

func (d Dataset) Len() int {
	return len(d.values)
}

func (d Dataset) At(i int) float64 {
	return d.values[i]
}

// Values returns a copy of the samples in token order.
func (d Dataset) Values() []float64 {
	v := make([]float64, len(d.values))
	copy(v, d.values)
	return v
}

// Parse tokenizes text according to f and keeps every token that reads as a float.
// Tokens that are not numbers are dropped without error.
func Parse(text string, f Format) (Dataset, error) {
	var values []float64
	skipped := 0
	for _, token := range strings.Fields(f.Normalize(text)) {
		if f.strictSeparator() && strings.Contains(token, ",") {
			e := newError(FormatMismatch, "Bad Filetype")
			e.Hint = MismatchHint
			return Dataset{}, e
		}
		v, ok := parseFloat(token)
		if !ok {
			skipped++
			log.WithField("token", token).Debug("Skipping non numeric token")
			continue
		}
		values = append(values, v)
	}
	log.WithFields(log.Fields{
		"format":  f.Tag(),
		"values":  len(values),
		"skipped": skipped,
	}).Debug("Dataset parsed")
	return New(values)
}

// Load reads src and parses its content.
func Load(src Source, f Format) (Dataset, error) {
	text, err := Read(src)
	if err != nil {
		return Dataset{}, err
	}
	d, err := Parse(text, f)
	if err != nil {
		return Dataset{}, errors.Trace(err)
	}
	return d, nil
}

// parseFloat accepts decimal and scientific notation plus inf and nan
// spellings, with an optional sign on both. Hexadecimal mantissas and
// underscore separators are rejected.
func parseFloat(token string) (float64, bool) {
	if strings.ContainsAny(token, "_xXpP") {
		return 0, false
	}
	if len(token) == 4 && strings.EqualFold(token[1:], "nan") {
		switch token[0] {
		case '+':
			return math.NaN(), true
		case '-':
			return math.Copysign(math.NaN(), -1), true
		}
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// out of range literals saturate to ±Inf
			return v, true
		}
		return 0, false
	}
	return v, true
}
