// Package httpserver runs an http.Server bound to a context: cancelling the
// context triggers a graceful shutdown limited by Config.ShutdownTimeout.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	srv := httpserver.New(cfg.HTTP, router, httpserver.WithLogger(log))
//	if err := srv.Run(ctx); err != nil {
//	    return err
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
