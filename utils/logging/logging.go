// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package logging configures the logrus standard logger for cstats.
package logging

import (
	"io"
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/signal18/cstats/config"
)

// SetLevel sets the level of the standard logger from its name.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Annotatef(err, "log level")
	}
	log.SetLevel(lvl)
	return nil
}

// Init sends log messages to out and, when conf.LogFile is set, to a rotated file.
// Verbose forces the debug level.
func Init(conf config.Config, out io.Writer) error {
	log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	log.SetOutput(out)
	level := conf.LogLevel
	if conf.Verbose {
		level = "debug"
	}
	if err := SetLevel(level); err != nil {
		return err
	}
	if conf.LogFile == "" {
		return nil
	}
	hook, err := NewRotateFileHook(RotateFileConfig{
		Filename:   conf.LogFile,
		MaxSize:    conf.LogRotateMaxSize,
		MaxBackups: conf.LogRotateMaxBackup,
		MaxAge:     conf.LogRotateMaxAge,
		Level:      log.GetLevel(),
		Formatter: &log.TextFormatter{
			DisableColors:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}
