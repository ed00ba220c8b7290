package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envConfig            = "STAYKONNECT_CONFIG"
	envHashAlgorithm     = "STAYKONNECT_HASH_ALGORITHM"
	envLogLevel          = "STAYKONNECT_LOG_LEVEL"
	envLogFormat         = "STAYKONNECT_LOG_FORMAT"
	envSeed              = "STAYKONNECT_SEED"
	envMinPasswordLength = "STAYKONNECT_MIN_PASSWORD_LENGTH"
	envTopN              = "STAYKONNECT_TOP_N"
)

// envLookup returns a lookup over the process environment layered on top of
// the .env file, if one exists.
func envLookup(opts Options) (func(string) (string, bool), error) {
	base := opts.Lookup
	if base == nil {
		base = os.LookupEnv
	}

	file := opts.EnvFile
	if file == "" {
		file = ".env"
	}
	dotenv, err := godotenv.Read(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
		dotenv = nil
	}

	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// parseEnv overlays cfg with STAYKONNECT_* variables.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envHashAlgorithm); ok {
		cfg.HashAlgorithm = v
	}
	if v, ok := lookup(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := lookup(envSeed); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", envSeed, err)
		}
		cfg.SeedDemoData = b
	}
	if v, ok := lookup(envMinPasswordLength); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", envMinPasswordLength, err)
		}
		cfg.MinPasswordLength = n
	}
	if v, ok := lookup(envTopN); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", envTopN, err)
		}
		cfg.TopN = n
	}
	return nil
}
