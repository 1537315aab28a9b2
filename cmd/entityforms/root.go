package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/entityforms/pkg/config"
	"github.com/dmitrymomot/entityforms/pkg/environment"
	"github.com/dmitrymomot/entityforms/pkg/i18n"
	"github.com/dmitrymomot/entityforms/pkg/logger"
	"github.com/dmitrymomot/entityforms/pkg/requestid"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "entityforms",
		Short:         "Validate admin dashboard entity payloads",
		Long:          `entityforms validates and normalizes create/update payloads for the admin dashboard entities, over HTTP or from files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSlice("env-file", nil, "Load environment variables from these files (default: optional ./.env)")

	root.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newKindsCmd(),
		newDescribeCmd(),
	)
	return root
}

// loadApp reads config.App, honouring --env-file.
func loadApp(cmd *cobra.Command) (config.App, error) {
	files, err := cmd.Flags().GetStringSlice("env-file")
	if err != nil {
		return config.App{}, err
	}
	return config.LoadApp(files...)
}

func newLogger(app config.App, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevelName(app.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if app.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(app.LogFormat)))
	}
	return logger.New(opts...)
}

// newTranslator loads LOCALES_DIR when set, otherwise the embedded catalogue.
func newTranslator(ctx context.Context, app config.App, log *slog.Logger) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.Catalog(), ".")
	if app.LocalesDir != "" {
		adapter = i18n.NewFSAdapter(os.DirFS(app.LocalesDir), ".")
	}
	return i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(app.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!app.Environment().IsProduction()),
	)
}
