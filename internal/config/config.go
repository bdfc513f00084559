// Package config loads gosheet's runtime configuration: log level,
// default script path, and REPL prompt string. Flags are registered on
// the Cobra commands with pflag and bound into Viper so that either a
// flag, an environment variable (GOSHEET_*), or a config file can supply
// a value, in that order of precedence.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved set of values cmd/gosheet needs at startup.
type Config struct {
	LogLevel   string
	ScriptPath string
	Prompt     string
}

// BindFlags registers gosheet's configurable flags on flags and binds
// each one into v, so Load can later resolve flag > env > file > default.
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level: debug, info, warn, or error")
	flags.String("script", "", "path to a command script to run (run subcommand)")
	flags.String("prompt", "gosheet> ", "prompt string for the repl subcommand")

	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindPFlag("script_path", flags.Lookup("script"))
	v.BindPFlag("prompt", flags.Lookup("prompt"))
}

// Load configures v to read GOSHEET_-prefixed
// environment variables and, if present, a gosheet config file
// (./gosheet.yaml or $HOME/gosheet.yaml), then resolves a Config from
// flags bound via BindFlags.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("gosheet")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("gosheet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		LogLevel:   v.GetString("log_level"),
		ScriptPath: v.GetString("script_path"),
		Prompt:     v.GetString("prompt"),
	}, nil
}
