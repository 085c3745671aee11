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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		tag    string
		format Format
	}{
		{"txt", PlainText},
		{"TXT", PlainText},
		{"csv", Csv},
		{"Csv", Csv},
	}
	for _, tc := range table {
		f, err := ParseFormat(tc.tag)
		assert.NoError(err, tc.tag)
		assert.Equal(tc.format, f, tc.tag)

		back, err := ParseFormat(f.Tag())
		assert.NoError(err)
		assert.Equal(f, back)
	}

	for _, tag := range []string{"", "json", "tsv", "text"} {
		_, err := ParseFormat(tag)
		assert.Error(err, tag)
		assert.Equal(InvalidFormatTag, KindOf(err), tag)
		assert.Equal("Not a valid filetype!", err.Error())
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1 2  3", Csv.Normalize("1,2, 3"))
	assert.Equal(t, "1,2, 3", PlainText.Normalize("1,2, 3"))
}

func TestParsePlainText(t *testing.T) {
	d, err := Parse("5.0 5.0\n3.0\t3.0   6.5\n", PlainText)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 3, 3, 6.5}, d.Values())
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 6.5, d.At(4))
}

func TestParseCsvMatchesPlainText(t *testing.T) {
	csv, err := Parse("1,2,3", Csv)
	require.NoError(t, err)
	txt, err := Parse("1 2 3", PlainText)
	require.NoError(t, err)
	assert.Equal(t, txt.Values(), csv.Values())

	multi, err := Parse("1,2\n3,,4\n", Csv)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, multi.Values())
}

func TestParseFormatMismatch(t *testing.T) {
	table := []string{
		"1,2",
		"1 2 3,4",
		"1 foo,bar",
	}
	for _, text := range table {
		_, err := Parse(text, PlainText)
		require.Error(t, err, text)
		assert.Equal(t, FormatMismatch, KindOf(err), text)
		assert.Contains(t, HintOf(err), "cstats stats -i=csv")
	}
}

func TestParseSkipsNonNumeric(t *testing.T) {
	d, err := Parse("1 foo 2 bar 3", PlainText)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, d.Values())

	d, err = Parse("0x10 1_000 1e3 -2.5E-1 +4 .5", PlainText)
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, -0.25, 4, 0.5}, d.Values())
}

func TestParseNonFinite(t *testing.T) {
	d, err := Parse("nan inf -inf infinity 1e400", PlainText)
	require.NoError(t, err)
	v := d.Values()
	require.Len(t, v, 5)
	assert.True(t, math.IsNaN(v[0]))
	assert.True(t, math.IsInf(v[1], 1))
	assert.True(t, math.IsInf(v[2], -1))
	assert.True(t, math.IsInf(v[3], 1))
	assert.True(t, math.IsInf(v[4], 1))
}

func TestParseSignedNaN(t *testing.T) {
	d, err := Parse("+nan -NaN 1 ++nan -nanx", PlainText)
	require.NoError(t, err)
	v := d.Values()
	require.Len(t, v, 3)
	assert.True(t, math.IsNaN(v[0]))
	assert.True(t, math.IsNaN(v[1]))
	assert.True(t, math.Signbit(v[1]))
	assert.Equal(t, 1.0, v[2])
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t", "foo bar", "1;2"} {
		_, err := Parse(text, PlainText)
		require.Error(t, err, text)
		assert.Equal(t, EmptyDataset, KindOf(err), text)
	}
	_, err := Parse(",,,", Csv)
	assert.Equal(t, EmptyDataset, KindOf(err))
}

func TestDatasetIsReadOnly(t *testing.T) {
	src := []float64{1, 2}
	d, err := New(src)
	require.NoError(t, err)
	src[0] = 42
	v := d.Values()
	v[1] = 42
	assert.Equal(t, []float64{1, 2}, d.Values())

	_, err = New(nil)
	assert.Equal(t, EmptyDataset, KindOf(err))
}
