package formapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/entityforms/pkg/environment"
	"github.com/dmitrymomot/entityforms/pkg/httpserver"
	"github.com/dmitrymomot/entityforms/pkg/i18n"
	"github.com/dmitrymomot/entityforms/pkg/logger"
	"github.com/dmitrymomot/entityforms/pkg/metrics"
	"github.com/dmitrymomot/entityforms/pkg/requestid"
	"github.com/dmitrymomot/entityforms/pkg/validator"
)

// DefaultMaxBodyBytes limits validate request bodies unless WithMaxBodyBytes is given.
const DefaultMaxBodyBytes int64 = 1 << 20

// API serves the entity registry over HTTP.
type API struct {
	registry       *validator.Registry
	translator     *i18n.Translator
	recorder       *metrics.Recorder
	metricsHandler http.Handler
	logger         *slog.Logger
	env            environment.Environment
	maxBodyBytes   int64
}

// Option configures an API.
type Option func(*API)

// WithTranslator localizes validation and error messages. Without it every
// message is the English literal.
func WithTranslator(tr *i18n.Translator) Option {
	return func(a *API) { a.translator = tr }
}

// WithMetrics records validation outcomes and request metrics on rec and
// serves h at /metrics when h is not nil.
func WithMetrics(rec *metrics.Recorder, h http.Handler) Option {
	return func(a *API) {
		a.recorder = rec
		a.metricsHandler = h
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithEnvironment hides decoder detail from error responses in production.
func WithEnvironment(env environment.Environment) Option {
	return func(a *API) { a.env = env }
}

func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodyBytes = n
		}
	}
}

// New returns an API over a sealed registry.
func New(registry *validator.Registry, opts ...Option) *API {
	a := &API{
		registry:     registry,
		logger:       logger.Discard(),
		env:          environment.Development,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router builds the chi router with the full middleware chain.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(a.env),
		i18n.Middleware(i18n.QueryOrHeaderExtractor(a.languages()...), a.defaultLanguage()),
		a.logRequests,
	)
	if a.recorder != nil {
		r.Use(a.recorder.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, http.StatusNotFound, CodeNotFound, "", http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "", http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(a.logger, a.ready))
	if a.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", a.metricsHandler)
	}

	r.Route("/v1/entities", func(r chi.Router) {
		r.Get("/", a.listKinds)
		r.Get("/{kind}", a.describeKind)
		r.Post("/{kind}/validate", a.validate)
	})
	return r
}

func (a *API) ready(context.Context) error {
	if a.registry == nil || !a.registry.Sealed() {
		return errors.New("entity registry is not sealed")
	}
	return nil
}

func (a *API) languages() []string {
	if a.translator == nil {
		return []string{i18n.DefaultLanguage}
	}
	return a.translator.SupportedLanguages()
}

func (a *API) defaultLanguage() string {
	if a.translator == nil {
		return i18n.DefaultLanguage
	}
	return a.translator.DefaultLanguage()
}

// text resolves key for the request locale, or returns fallback.
func (a *API) text(ctx context.Context, key, fallback string) string {
	lang := i18n.GetLocale(ctx)
	if a.translator == nil || !a.translator.HasTranslation(lang, key) {
		return fallback
	}
	return a.translator.T(lang, key)
}
