package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/entityforms/pkg/entities"
	"github.com/dmitrymomot/entityforms/pkg/formapi"
	"github.com/dmitrymomot/entityforms/pkg/httpserver"
	"github.com/dmitrymomot/entityforms/pkg/logger"
	"github.com/dmitrymomot/entityforms/pkg/metrics"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP validation API",
		Long:  `Starts the JSON API serving /v1/entities, /healthz and /metrics until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				app.HTTP.Addr = addr
			}

			ctx := cmd.Context()
			log := newLogger(app, cmd.ErrOrStderr())

			registry, err := entities.NewRegistry()
			if err != nil {
				log.ErrorContext(ctx, "entity schemas are misconfigured", logger.Error(err))
				return err
			}
			log.InfoContext(ctx, "entity registry sealed", logger.Component("registry"), slog.Any("kinds", registry.Kinds()))

			tr, err := newTranslator(ctx, app, log)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			api := formapi.New(registry,
				formapi.WithTranslator(tr),
				formapi.WithMetrics(metrics.New(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
				formapi.WithLogger(log),
				formapi.WithEnvironment(app.Environment()),
				formapi.WithMaxBodyBytes(app.MaxBodyBytes),
			)

			srv := httpserver.New(app.HTTP, api.Router(), httpserver.WithLogger(log))
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDR)")
	return cmd
}
