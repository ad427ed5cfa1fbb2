// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It wraps github.com/joho/godotenv (reading .env files) and
// github.com/caarlos0/env/v11 (parsing the environment into tagged structs).
// Each configuration type is parsed once and cached for the lifetime of the
// process; later calls to Load for the same type are served from the cache.
//
// # Usage
//
//	type Config struct {
//		Env            string `env:"APP_ENV" envDefault:"development"`
//		PasswordLength int    `env:"PASSWORD_LENGTH" envDefault:"16"`
//	}
//
//	if err := config.LoadEnv("config/.env"); err != nil {
//		return err
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Precedence
//
// Variables already present in the process environment always win. Among .env
// files passed to LoadEnv, later files override earlier ones. Load reads the
// default .env in the working directory once, silently ignoring a missing file.
//
// # Errors
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrNilPointer: a nil pointer was passed to Load.
//   - ErrLoadingEnvFile: an explicit .env file could not be read.
//
// # Testing
//
// ResetCache clears every cached type; ForceReloadConfig re-parses one type
// after the environment changed.
package config
