package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig            = "config"
	flagHashAlgorithm     = "hash-algorithm"
	flagLogLevel          = "log-level"
	flagLogFormat         = "log-format"
	flagSeed              = "seed"
	flagMinPasswordLength = "min-password-length"
	flagTop               = "top"
)

// RegisterFlags defines the configuration flags on fs. Defaults shown in
// help come from LoadDefaults; only flags the user sets override other
// sources.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to a JSON or YAML config file")
	fs.String(flagHashAlgorithm, d.HashAlgorithm, "password hash algorithm (sha256, sha3-256, blake2b-256)")
	fs.String(flagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(flagLogFormat, d.LogFormat, "log format (text, json)")
	fs.Bool(flagSeed, d.SeedDemoData, "load the demonstration catalog at startup")
	fs.Int(flagMinPasswordLength, d.MinPasswordLength, "minimum password length on registration")
	fs.Int(flagTop, d.TopN, "size of the cheapest and most expensive lists")
}

// parseFlags copies every explicitly set flag into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	if fs.Changed(flagHashAlgorithm) {
		if cfg.HashAlgorithm, err = fs.GetString(flagHashAlgorithm); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogFormat) {
		if cfg.LogFormat, err = fs.GetString(flagLogFormat); err != nil {
			return err
		}
	}
	if fs.Changed(flagSeed) {
		if cfg.SeedDemoData, err = fs.GetBool(flagSeed); err != nil {
			return err
		}
	}
	if fs.Changed(flagMinPasswordLength) {
		if cfg.MinPasswordLength, err = fs.GetInt(flagMinPasswordLength); err != nil {
			return err
		}
	}
	if fs.Changed(flagTop) {
		if cfg.TopN, err = fs.GetInt(flagTop); err != nil {
			return err
		}
	}
	return nil
}
