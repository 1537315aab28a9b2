// Package logger builds slog loggers from functional options and provides
// attribute helpers with stable key names (kind, outcome, fields, request_id).
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "validated", logger.EntityKind("city"), logger.Outcome(true))
//
// Context extractors run on every record, so request-scoped values are read
// from the context passed to the *Context logging methods.
package logger
