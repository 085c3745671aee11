// cstats - Descriptive statistics for numeric datasets
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by cstats, e.g. CSTATS_IN_FORMAT.
const EnvPrefix = "CSTATS"

type Config struct {
	ConfigFile         string `mapstructure:"config" toml:"-"`
	InFormat           string `mapstructure:"in-format" toml:"in-format"`
	OutFormat          string `mapstructure:"out-format" toml:"out-format"`
	Verbose            bool   `mapstructure:"verbose" toml:"verbose"`
	LogLevel           string `mapstructure:"log-level" toml:"log-level"`
	LogFile            string `mapstructure:"log-file" toml:"log-file"`
	LogRotateMaxSize   int    `mapstructure:"log-rotate-max-size" toml:"log-rotate-max-size"`
	LogRotateMaxBackup int    `mapstructure:"log-rotate-max-backup" toml:"log-rotate-max-backup"`
	LogRotateMaxAge    int    `mapstructure:"log-rotate-max-age" toml:"log-rotate-max-age"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		InFormat:           "txt",
		OutFormat:          "text",
		LogLevel:           "warning",
		LogRotateMaxSize:   5,
		LogRotateMaxBackup: 7,
		LogRotateMaxAge:    7,
	}
}

// SetDefaults registers every key of Default in v.
func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("in-format", def.InFormat)
	v.SetDefault("out-format", def.OutFormat)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-file", def.LogFile)
	v.SetDefault("log-rotate-max-size", def.LogRotateMaxSize)
	v.SetDefault("log-rotate-max-backup", def.LogRotateMaxBackup)
	v.SetDefault("log-rotate-max-age", def.LogRotateMaxAge)
}

// InitLogFlags adds the flags shared by every command that logs.
func InitLogFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("log-level", def.LogLevel, "Log verbosity level (debug, info, warning, error)")
	fs.String("log-file", def.LogFile, "Write log messages to file")
	fs.Int("log-rotate-max-size", def.LogRotateMaxSize, "Log rotate max size in MB")
	fs.Int("log-rotate-max-backup", def.LogRotateMaxBackup, "Log rotate max backup")
	fs.Int("log-rotate-max-age", def.LogRotateMaxAge, "Log rotate max age in days")
}

// Load reads the configuration file, the CSTATS_ environment and the flags
// bound to v. An explicit configFile must exist. The default location
// $HOME/.cstats/config.toml is optional and the working directory is never
// searched.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetConfigType("toml")
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return Config{}, errors.Annotatef(err, "no config file %s", configFile)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".cstats"))
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	switch err.(type) {
	case nil:
		log.WithField("file", v.ConfigFileUsed()).Debug("Using config file")
	case viper.ConfigFileNotFoundError:
	default:
		return Config{}, errors.Annotate(err, "could not parse config file")
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, errors.Trace(err)
	}
	conf.ConfigFile = v.ConfigFileUsed()
	return conf, nil
}

// Write dumps conf as TOML, in the layout Load reads back.
func (conf Config) Write(w io.Writer) error {
	return errors.Trace(toml.NewEncoder(w).Encode(conf))
}
