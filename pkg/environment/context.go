package environment

import (
	"context"
	"log/slog"
	"strings"
)

// Environment is the deployment environment named by APP_ENV.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps APP_ENV values, including the short forms dev, stage and prod.
// Unknown or empty values are treated as Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

func (e Environment) IsProduction() bool { return e == Production }

type contextKey struct{}

func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "".
func FromContext(ctx context.Context) Environment {
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	return FromContext(ctx).IsProduction()
}

// LoggerExtractor adds the "env" attribute when the context carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
