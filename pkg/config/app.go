package config

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/entityforms/pkg/environment"
	"github.com/dmitrymomot/entityforms/pkg/httpserver"
)

// App is the process configuration shared by the serve and validate commands.
type App struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"entityforms"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT"`
	LocalesDir      string `env:"LOCALES_DIR"` // overrides the embedded catalogue when set
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	MaxBodyBytes    int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	HTTP httpserver.Config
}

// Environment returns the parsed APP_ENV.
func (a App) Environment() environment.Environment {
	return environment.Parse(a.Env)
}

func (a App) Validate() error {
	if a.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: MAX_BODY_BYTES must be positive, got %d", ErrInvalidConfig, a.MaxBodyBytes)
	}
	if a.DefaultLanguage == "" {
		return fmt.Errorf("%w: DEFAULT_LANGUAGE is empty", ErrInvalidConfig)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.LogLevel)); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL %q: %v", ErrInvalidConfig, a.LogLevel, err)
	}
	switch a.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be json or text, got %q", ErrInvalidConfig, a.LogFormat)
	}
	return nil
}

// LoadApp loads and validates App.
func LoadApp(envFiles ...string) (App, error) {
	var app App
	if err := Load(&app, envFiles...); err != nil {
		return App{}, err
	}
	if err := app.Validate(); err != nil {
		return App{}, err
	}
	return app, nil
}
