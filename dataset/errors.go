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
	"github.com/juju/errors"
)

// Kind classifies the failures of the ingestion pipeline.
type Kind int

const (
	// KindNone is reported for nil errors and errors not raised by this package.
	KindNone Kind = iota
	// SourceUnreadable means the input could not be read to completion.
	SourceUnreadable
	// FormatMismatch means a plaintext input carried comma separated tokens.
	FormatMismatch
	// EmptyDataset means no token parsed as a number.
	EmptyDataset
	// InvalidFormatTag means the declared format is neither txt nor csv.
	InvalidFormatTag
)

func (k Kind) String() string {
	switch k {
	case SourceUnreadable:
		return "SourceUnreadable"
	case FormatMismatch:
		return "FormatMismatch"
	case EmptyDataset:
		return "EmptyDataset"
	case InvalidFormatTag:
		return "InvalidFormatTag"
	}
	return "None"
}

// Error is returned by every fallible operation of the package.
// Hint holds an optional user facing suggestion, printed apart from the message.
type Error struct {
	Kind    Kind
	Message string
	Hint    string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying I/O error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// KindOf returns the Kind carried by err, looking through juju annotations.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return KindNone
}

// HintOf returns the hint attached to err, or an empty string.
func HintOf(err error) string {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Hint
	}
	return ""
}
