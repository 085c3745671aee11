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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signal18/cstats/config"
	"github.com/signal18/cstats/dataset"
	"github.com/signal18/cstats/utils/logging"
)

var (
	// Version is the semantic version number, e.g. 1.0.1
	Version string = "dev"
	// FullVersion is the semantic version number + git commit hash
	FullVersion string
	// Build is the build date of cstats
	Build  string
	GoOS   string = "linux"
	GoArch string = "amd64"
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		if hint := dataset.HintOf(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags are bound to v, and the
// configuration is loaded once the command line is parsed.
func newRootCmd(v *viper.Viper) *cobra.Command {
	conf := new(config.Config)
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "cstats",
		Short: "Descriptive statistics for numeric datasets",
		Long: `cstats reads a flat list of numbers from a file or standard input, as plain
text or csv, and prints its sum, size, average, range and standard deviations.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			*conf = c
			return logging.Init(*conf, cmd.ErrOrStderr())
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default is $HOME/.cstats/config.toml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print detailed execution info")
	config.InitLogFlags(rootCmd.PersistentFlags())
	v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(conf))
	rootCmd.AddCommand(newStatsCmd(v, conf))
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cstats version number",
		Long:  `All software has versions. This is ours`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "cstats "+Version+" for "+GoOS+"/"+GoArch)
			fmt.Fprintln(out, "Full Version: ", FullVersion)
			fmt.Fprintln(out, "Build Time: ", Build)
		},
	}
}

func newConfigCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  `Print the configuration resolved from the config file, CSTATS_ environment variables and flags, as TOML.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return conf.Write(cmd.OutOrStdout())
		},
	}
}
