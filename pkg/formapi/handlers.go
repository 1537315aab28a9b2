package formapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/entityforms/pkg/environment"
	"github.com/dmitrymomot/entityforms/pkg/i18n"
	"github.com/dmitrymomot/entityforms/pkg/logger"
	"github.com/dmitrymomot/entityforms/pkg/validator"
)

func (a *API) listKinds(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, JSONResponse{Data: a.registry.Kinds()})
}

func (a *API) describeKind(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	schema, ok := a.schema(w, r, kind)
	if !ok {
		return
	}
	a.respond(w, r, http.StatusOK, JSONResponse{Data: EntityDescription{Kind: kind, Fields: schema.Describe()}})
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	schema, ok := a.schema(w, r, kind)
	if !ok {
		return
	}

	payload, err := decodePayload(w, r, a.maxBodyBytes)
	if err != nil {
		a.badBody(w, r, err)
		return
	}

	res := schema.Validate(payload)
	a.recorder.Observe(kind, res)
	a.logger.DebugContext(r.Context(), "payload validated",
		logger.EntityKind(kind),
		logger.Outcome(res.Valid()),
		logger.Fields(res.Errors.Fields()),
	)

	if res.Valid() {
		a.respond(w, r, http.StatusOK, JSONResponse{Data: res.Value})
		return
	}

	errs := res.Errors
	if a.translator != nil {
		errs = errs.Translate(a.translator.ValidationMessages(i18n.GetLocale(r.Context())))
	}
	fields := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, FieldError{Field: e.Field, Message: e.Message, Key: e.TranslationKey})
	}

	a.respond(w, r, http.StatusUnprocessableEntity, JSONResponse{Error: &ErrorDetail{
		Code:    CodeValidation,
		Message: a.text(r.Context(), "errors.validation_error", "validation failed"),
		Details: errs.Values(),
		Fields:  fields,
	}})
}

// schema writes a 404 and returns false for unregistered kinds.
func (a *API) schema(w http.ResponseWriter, r *http.Request, kind string) (*validator.Schema, bool) {
	schema, err := a.registry.Schema(kind)
	if err == nil {
		return schema, true
	}

	a.recorder.ObserveUnknown()
	a.logger.WarnContext(r.Context(), "unknown entity kind", logger.EntityKind(kind))
	a.fail(w, r, http.StatusNotFound, CodeUnknownEntityKind, "errors.unknown_entity_kind", err.Error())
	return nil, false
}

func (a *API) badBody(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		a.fail(w, r, http.StatusUnsupportedMediaType, CodeUnsupportedMediaType, "errors.unsupported_media_type", err.Error())
	case errors.Is(err, ErrBodyTooLarge):
		a.fail(w, r, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "", err.Error())
	default:
		a.fail(w, r, http.StatusBadRequest, CodeInvalidJSON, "errors.invalid_json", err.Error())
	}
}

// fail writes an error envelope. The message is translated when key is known;
// otherwise detail is used, except in production where the status text is.
func (a *API) fail(w http.ResponseWriter, r *http.Request, status int, code, key, detail string) {
	fallback := detail
	if environment.IsProduction(r.Context()) {
		fallback = http.StatusText(status)
	}
	message := fallback
	if key != "" {
		message = a.text(r.Context(), key, fallback)
	}
	a.respond(w, r, status, JSONResponse{Error: &ErrorDetail{Code: code, Message: message}})
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, body JSONResponse) {
	if err := writeJSON(w, status, body); err != nil {
		a.logger.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
