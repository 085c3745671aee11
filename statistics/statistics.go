// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package statistics computes the descriptive statistics of a dataset.
package statistics

import (
	"math"

	"github.com/signal18/cstats/dataset"
)

// StatData is the snapshot of the statistics of one dataset.
// It is computed once by New and never modified.
type StatData struct {
	Sum   float64
	Count int
	Avg   float64

	Min float64
	Max float64

	Sigma             float64 // population
	StandardDeviation float64 // sample
}

// New computes the statistics of d. Both deviations are derived from the
// average computed here, including when the sum stopped early on NaN.
func New(d dataset.Dataset) StatData {
	values := d.Values()
	sd := StatData{
		Sum:   Sum(values),
		Count: len(values),
		Avg:   Average(values),
		Min:   Min(values),
		Max:   Max(values),
	}
	sd.Sigma = sd.sigma(values)
	sd.StandardDeviation = sd.standardDeviation(values)
	return sd
}

// Sum adds values in order and stops as soon as the running total is NaN.
// Later values are not added.
func Sum(values []float64) float64 {
	var result float64
	for i := 0; !math.IsNaN(result) && i < len(values); i++ {
		result += values[i]
	}
	return result
}

// Average returns Sum(values)/len(values), NaN for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return Sum(values) / float64(len(values))
}

// Max returns the largest element. NaN elements never replace the running
// maximum. An empty slice yields 0.
func Max(values []float64) float64 {
	var relativeMax float64
	for i, v := range values {
		if i == 0 {
			relativeMax = v
		}
		if v > relativeMax {
			relativeMax = v
		}
	}
	return relativeMax
}

// Min is the counterpart of Max.
func Min(values []float64) float64 {
	var relativeMin float64
	for i, v := range values {
		if i == 0 {
			relativeMin = v
		}
		if v < relativeMin {
			relativeMin = v
		}
	}
	return relativeMin
}

func (sd StatData) squaredDeviations(values []float64) float64 {
	var acc float64
	for i := 0; i < sd.Count; i++ {
		d := values[i] - sd.Avg
		acc += d * d
	}
	return acc
}

func (sd StatData) sigma(values []float64) float64 {
	return math.Sqrt(sd.squaredDeviations(values) / float64(sd.Count))
}

// standardDeviation divides by n-1: a single sample gives 0/0, NaN.
func (sd StatData) standardDeviation(values []float64) float64 {
	return math.Sqrt(sd.squaredDeviations(values) / float64(sd.Count-1))
}

// Load reads src in format f and computes its statistics.
func Load(src dataset.Source, f dataset.Format) (StatData, error) {
	d, err := dataset.Load(src, f)
	if err != nil {
		return StatData{}, err
	}
	return New(d), nil
}
