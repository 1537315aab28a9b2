// Package config loads configuration from environment variables and optional
// .env files using github.com/caarlos0/env and github.com/joho/godotenv.
//
// App describes the variables read by the entityforms binary:
//
//	APP_ENV           development | staging | production (default development)
//	APP_NAME          service name attached to logs (default entityforms)
//	LOG_LEVEL         debug | info | warn | error (default info)
//	LOG_FORMAT        json | text (default depends on APP_ENV)
//	LOCALES_DIR       directory of YAML/JSON catalogues replacing the embedded one
//	DEFAULT_LANGUAGE  fallback message language (default en)
//	MAX_BODY_BYTES    request body limit of the HTTP API (default 1 MiB)
//	HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
//	HTTP_SHUTDOWN_TIMEOUT
//
// Any struct with `env` tags can be loaded the same way with Load.
package config
