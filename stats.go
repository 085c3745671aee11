// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package main

import (
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signal18/cstats/config"
	"github.com/signal18/cstats/dataset"
	"github.com/signal18/cstats/report"
	"github.com/signal18/cstats/statistics"
)

func newStatsCmd(v *viper.Viper, conf *config.Config) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Perform basic statistic calculations",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	def := config.Default()
	statsCmd.PersistentFlags().StringP("in-format", "i", def.InFormat, "Read the dataset in the specified format. Currently supported: csv, txt")
	statsCmd.PersistentFlags().StringP("out-format", "o", def.OutFormat, "Print the result in the specified format. Currently supported: "+strings.Join(report.Names(), ", "))
	v.BindPFlags(statsCmd.PersistentFlags())

	allCmd := &cobra.Command{
		Use:   "all [dataset]",
		Short: "Print all statistical information of a dataset",
		Long: `Print the sum, size, average, minimum, maximum, population (σ) and sample (s)
standard deviations of a dataset read from a file, or from standard input when
the file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, sd, err := parseFile(cmd, conf, args)
			if err != nil {
				return err
			}
			return r.All(cmd.OutOrStdout(), sd)
		},
	}
	sumCmd := &cobra.Command{
		Use:   "sum [dataset]",
		Short: "Print the sum only",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, sd, err := parseFile(cmd, conf, args)
			if err != nil {
				return err
			}
			return r.Sum(cmd.OutOrStdout(), sd.Sum)
		},
	}
	statsCmd.AddCommand(allCmd)
	statsCmd.AddCommand(sumCmd)
	return statsCmd
}

// parseFile checks the requested formats, then loads the dataset named by
// args and computes its statistics.
func parseFile(cmd *cobra.Command, conf *config.Config, args []string) (report.Renderer, statistics.StatData, error) {
	ftype, err := dataset.ParseFormat(conf.InFormat)
	if err != nil {
		return nil, statistics.StatData{}, err
	}
	r, err := report.New(conf.OutFormat)
	if err != nil {
		return nil, statistics.StatData{}, err
	}

	src := dataset.NewSource(dataset.StdinName)
	if len(args) > 0 {
		src = dataset.NewSource(args[0])
	}
	src.Stdin = cmd.InOrStdin()

	sd, err := statistics.Load(src, ftype)
	if err != nil {
		log.WithFields(log.Fields{
			"source": src.Name(),
			"kind":   dataset.KindOf(err).String(),
		}).Debug(errors.ErrorStack(err))
		return nil, statistics.StatData{}, err
	}
	log.WithFields(log.Fields{
		"source": src.Name(),
		"size":   sd.Count,
	}).Info("Statistics computed")
	return r, sd, nil
}
