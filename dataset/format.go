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
	"strings"
)

// Format selects the normalization applied to raw text before tokenization.
type Format int

const (
	PlainText Format = iota
	Csv
)

// Format tags accepted on the command line.
const (
	TagPlainText = "txt"
	TagCsv       = "csv"
)

// ParseFormat maps a format tag to its Format. Tags are case insensitive.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(tag) {
	case TagPlainText:
		return PlainText, nil
	case TagCsv:
		return Csv, nil
	}
	return PlainText, newError(InvalidFormatTag, "Not a valid filetype!")
}

// Tag returns the command line tag of the format.
func (f Format) Tag() string {
	switch f {
	case Csv:
		return TagCsv
	default:
		return TagPlainText
	}
}

func (f Format) String() string {
	switch f {
	case Csv:
		return "Csv"
	default:
		return "PlainText"
	}
}

// Normalize rewrites text so that splitting on whitespace yields the values.
func (f Format) Normalize(text string) string {
	switch f {
	case Csv:
		return strings.Replace(text, ",", " ", -1)
	default:
		return text
	}
}

// strictSeparator reports whether a comma left in a token means the
// input was mislabeled.
func (f Format) strictSeparator() bool {
	return f == PlainText
}
