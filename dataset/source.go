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
	"io"
	"io/ioutil"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
)

// StdinName is the dataset argument designating standard input.
const StdinName = "-"

// Source describes where the dataset is read from: a named file or standard input.
type Source struct {
	Path  string
	Stdin io.Reader // read when Path is empty or "-"; nil means os.Stdin
}

// NewSource builds a Source from a command line argument.
func NewSource(arg string) Source {
	return Source{Path: arg}
}

func (s Source) IsStdin() bool {
	return s.Path == "" || s.Path == StdinName
}

// Name returns a printable name for log messages.
func (s Source) Name() string {
	if s.IsStdin() {
		return "<stdin>"
	}
	return s.Path
}

// Read consumes the whole source and returns its content.
func Read(src Source) (string, error) {
	var r io.Reader
	if src.IsStdin() {
		r = src.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(src.Path)
		if err != nil {
			return "", errors.Trace(unreadable(err))
		}
		defer f.Close()
		r = f
	}
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Trace(unreadable(err))
	}
	log.WithFields(log.Fields{
		"source": src.Name(),
		"size":   humanize.Bytes(uint64(len(b))),
	}).Debug("Dataset read")
	return string(b), nil
}

func unreadable(cause error) *Error {
	e := newError(SourceUnreadable, "File could not be read!")
	e.cause = cause
	return e
}
