// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package statistics

import (
	"math"
	"strings"
	"testing"

	onlinestats "github.com/dgryski/go-onlinestats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signal18/cstats/dataset"
)

func mustDataset(t *testing.T, values ...float64) dataset.Dataset {
	d, err := dataset.New(values)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	sd := New(mustDataset(t, 5.0, 5.0, 3.0, 3.0, 6.5))
	assert.Equal(22.5, sd.Sum)
	assert.Equal(5, sd.Count)
	assert.Equal(4.5, sd.Avg)
	assert.Equal(3.0, sd.Min)
	assert.Equal(6.5, sd.Max)
	assert.Equal(math.Sqrt(9.0/5.0), sd.Sigma)
	assert.Equal(1.5, sd.StandardDeviation)
}

func TestNewMatchesRunningStats(t *testing.T) {
	values := []float64{12.5, -3, 7.25, 0.001, 1e3, 42, 42, -17.75}
	sd := New(mustDataset(t, values...))

	r := onlinestats.NewRunning()
	sum := 0.0
	for _, v := range values {
		r.Push(v)
		sum += v
	}
	assert.Equal(t, sum, sd.Sum)
	assert.Equal(t, r.Len(), sd.Count)
	assert.InDelta(t, r.Mean(), sd.Avg, 1e-9)
	assert.InDelta(t, r.Stddev(), sd.StandardDeviation, 1e-9)
	n := float64(r.Len())
	assert.InDelta(t, math.Sqrt(r.Var()*(n-1)/n), sd.Sigma, 1e-9)
}

func TestAverageIsSumOverCount(t *testing.T) {
	table := [][]float64{
		{1, 2, 3},
		{0.1, 0.2, 0.3},
		{1e308, 1e308},
		{-1, 1},
	}
	for _, values := range table {
		sd := New(mustDataset(t, values...))
		assert.Equal(t, sd.Sum/float64(sd.Count), sd.Avg)
		for _, v := range values {
			assert.True(t, sd.Min <= v && v <= sd.Max)
		}
		assert.Contains(t, values, sd.Min)
		assert.Contains(t, values, sd.Max)
	}
}

func TestSingleSample(t *testing.T) {
	sd := New(mustDataset(t, 7))
	assert.Equal(t, 7.0, sd.Sum)
	assert.Equal(t, 1, sd.Count)
	assert.Equal(t, 7.0, sd.Avg)
	assert.Equal(t, 0.0, sd.Sigma)
	assert.True(t, math.IsNaN(sd.StandardDeviation))
}

func TestEqualSamples(t *testing.T) {
	sd := New(mustDataset(t, 2.5, 2.5, 2.5, 2.5))
	assert.Equal(t, 0.0, sd.Sigma)
	assert.Equal(t, 0.0, sd.StandardDeviation)
}

// The running total stops at the first NaN; min, max and count still see
// every sample.
func TestSumStopsOnNaN(t *testing.T) {
	sd := New(mustDataset(t, 1, math.NaN(), 5, -2))
	assert.True(t, math.IsNaN(sd.Sum))
	assert.True(t, math.IsNaN(sd.Avg))
	assert.True(t, math.IsNaN(sd.Sigma))
	assert.True(t, math.IsNaN(sd.StandardDeviation))
	assert.Equal(t, 4, sd.Count)
	assert.Equal(t, -2.0, sd.Min)
	assert.Equal(t, 5.0, sd.Max)

	// +Inf then -Inf turns the total into NaN before the last value.
	assert.True(t, math.IsNaN(Sum([]float64{math.Inf(1), math.Inf(-1), 3})))
	// Infinity alone does not stop the accumulation.
	assert.True(t, math.IsInf(Sum([]float64{math.Inf(1), 3}), 1))
}

func TestExtremaIgnoreNaN(t *testing.T) {
	values := []float64{3, math.NaN(), -1, 8}
	assert.Equal(t, -1.0, Min(values))
	assert.Equal(t, 8.0, Max(values))

	// the scan starts from the first element, a leading NaN is never replaced
	leading := []float64{math.NaN(), 1, 2}
	assert.True(t, math.IsNaN(Min(leading)))
	assert.True(t, math.IsNaN(Max(leading)))
}

func TestEmptySlices(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.True(t, math.IsNaN(Average(nil)))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
}

func TestLoad(t *testing.T) {
	src := dataset.NewSource(dataset.StdinName)
	src.Stdin = strings.NewReader("5.0,5.0,3.0\n3.0,6.5\n")
	sd, err := Load(src, dataset.Csv)
	require.NoError(t, err)
	assert.Equal(t, 22.5, sd.Sum)
	assert.Equal(t, 5, sd.Count)

	src.Stdin = strings.NewReader("5.0,5.0")
	_, err = Load(src, dataset.PlainText)
	assert.Equal(t, dataset.FormatMismatch, dataset.KindOf(err))
}
