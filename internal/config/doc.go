// Package config loads runtime configuration for the StayKonnect CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with STAYKONNECT_. A .env file in the
//     working directory (or the one named by Options.EnvFile) is read first
//     with github.com/joho/godotenv; variables already set in the process win.
//  3. Optional JSON or YAML file, selected with -c/--config or
//     STAYKONNECT_CONFIG. Files ending in .yaml or .yml are read as YAML,
//     anything else as JSON. Keys missing from the file keep earlier values.
//  4. Command-line flags explicitly set by the user.
//
// Supported flags
//
//	-c, --config string            path to a JSON or YAML config file
//	    --hash-algorithm string    sha256 | sha3-256 | blake2b-256
//	    --log-level string         debug | info | warn | error
//	    --log-format string        text | json
//	    --seed                     load the demonstration catalog
//	    --min-password-length int  minimum password length on registration
//	    --top int                  size of the cheapest / most expensive lists
//
// # Environment
//
//	STAYKONNECT_CONFIG, STAYKONNECT_HASH_ALGORITHM, STAYKONNECT_LOG_LEVEL,
//	STAYKONNECT_LOG_FORMAT, STAYKONNECT_SEED, STAYKONNECT_MIN_PASSWORD_LENGTH,
//	STAYKONNECT_TOP_N
//
// # File schema
//
//	{
//	  "hash_algorithm": "sha256",
//	  "seed_demo_data": true,
//	  "log_level": "info",
//	  "log_format": "text",
//	  "min_password_length": 6,
//	  "top_n": 3
//	}
//
// Primary API
//
//   - type Config: resolved settings
//   - func Load(Options) (*Config, error)
//   - func RegisterFlags(*pflag.FlagSet)
//   - func (*Config) LoadDefaults(), (*Config) Validate() error
package config
