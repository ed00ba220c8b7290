package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/cryptox"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the StayKonnect CLI.
type Config struct {
	HashAlgorithm     string
	SeedDemoData      bool
	LogLevel          string
	LogFormat         string
	MinPasswordLength int
	TopN              int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.HashAlgorithm = cryptox.AlgorithmSHA256
	c.SeedDemoData = true
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MinPasswordLength = 6
	c.TopN = 3
}

// Options selects the optional sources Load reads.
type Options struct {
	// EnvFile defaults to ".env"; a missing file is not an error.
	EnvFile string
	// Flags, when set, must have been populated through RegisterFlags.
	Flags *pflag.FlagSet
	// Lookup replaces os.LookupEnv, mainly for tests.
	Lookup func(string) (string, bool)
}

// Load builds a Config from defaults, environment, config file and flags,
// later sources taking precedence, and validates the result.
func Load(opts Options) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	lookup, err := envLookup(opts)
	if err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}

	path, _ := lookup(envConfig)
	if opts.Flags != nil && opts.Flags.Changed(flagConfig) {
		path, _ = opts.Flags.GetString(flagConfig)
	}
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := parseFlags(cfg, opts.Flags); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the application cannot start with.
func (c *Config) Validate() error {
	c.HashAlgorithm = strings.ToLower(strings.TrimSpace(c.HashAlgorithm))
	if _, err := cryptox.NewHasher(c.HashAlgorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}

	if c.MinPasswordLength < 1 {
		return fmt.Errorf("config: min password length must be positive, got %d", c.MinPasswordLength)
	}
	if c.TopN < 1 {
		return fmt.Errorf("config: top n must be positive, got %d", c.TopN)
	}
	return nil
}
