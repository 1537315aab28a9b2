package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into v using `env` struct tags.
//
// Without envFiles the optional ./.env file is read once per process and a
// missing file is ignored. Explicit envFiles must exist. Variables already set
// in the environment are never overridden by file values.
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	var cfg DatabaseConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(envFiles) == 0 {
		defaultEnvLoaded.Do(func() {
			// the default .env file is optional
			_ = godotenv.Load()
		})
	} else if err := godotenv.Load(envFiles...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
