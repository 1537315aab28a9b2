package formapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityforms/pkg/entities"
	"github.com/dmitrymomot/entityforms/pkg/environment"
	"github.com/dmitrymomot/entityforms/pkg/formapi"
	"github.com/dmitrymomot/entityforms/pkg/i18n"
	"github.com/dmitrymomot/entityforms/pkg/metrics"
	"github.com/dmitrymomot/entityforms/pkg/requestid"
)

type envelope struct {
	Data  json.RawMessage       `json:"data"`
	Error *formapi.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T, opts ...formapi.Option) http.Handler {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.Catalog(), "."))
	require.NoError(t, err)

	opts = append([]formapi.Option{formapi.WithTranslator(tr)}, opts...)
	return formapi.New(entities.Default(), opts...).Router()
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestListKinds(t *testing.T) {
	t.Parallel()

	rec, body := do(t, newRouter(t), httptest.NewRequest(http.MethodGet, "/v1/entities", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var kinds []string
	require.NoError(t, json.Unmarshal(body.Data, &kinds))
	assert.Equal(t, entities.Default().Kinds(), kinds)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}

func TestDescribeKind(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/entities/city", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var desc struct {
		Kind   string `json:"kind"`
		Fields []struct {
			Path     string `json:"path"`
			Type     string `json:"type"`
			Required bool   `json:"required"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &desc))
	assert.Equal(t, "city", desc.Kind)
	require.NotEmpty(t, desc.Fields)
	assert.Equal(t, "name", desc.Fields[0].Path)
	assert.Equal(t, "object", desc.Fields[0].Type)

	rec, body = do(t, h, httptest.NewRequest(http.MethodGet, "/v1/entities/country", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, formapi.CodeUnknownEntityKind, body.Error.Code)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("valid payload is normalized", func(t *testing.T) {
		rec, body := do(t, h, postJSON("/v1/entities/city/validate",
			`{"name": {"en": "  Riyadh ", "ar": "الرياض"}, "country_id": "3", "status": "Draft", "extra": 1}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var city map[string]any
		require.NoError(t, json.Unmarshal(body.Data, &city))
		assert.Equal(t, map[string]any{
			"name":       map[string]any{"en": "Riyadh", "ar": "الرياض"},
			"country_id": float64(3),
			"status":     "Draft",
		}, city)
	})

	t.Run("large integer ids keep precision", func(t *testing.T) {
		rec, _ := do(t, h, postJSON("/v1/entities/brand_item/validate",
			`{"name": {"en": "A", "ar": "ب"}, "brand_id": 9007199254740993}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"brand_id":9007199254740993`)
	})

	t.Run("all field errors in english", func(t *testing.T) {
		rec, body := do(t, h, postJSON("/v1/entities/city/validate",
			`{"name": {"en": "Riyadh"}, "country_id": 0, "status": "Archived"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, body.Error)

		assert.Equal(t, formapi.CodeValidation, body.Error.Code)
		assert.Equal(t, "Please correct the highlighted fields", body.Error.Message)
		require.Len(t, body.Error.Fields, 3)
		assert.Equal(t, formapi.FieldError{
			Field:   "name.ar",
			Message: "Name (Arabic) is required",
			Key:     "validation.required",
		}, body.Error.Fields[0])
		assert.Equal(t, "country_id", body.Error.Fields[1].Field)
		assert.Equal(t, "status", body.Error.Fields[2].Field)
		assert.Equal(t, []string{"Country must be at least 1"}, body.Error.Details["country_id"])
	})

	t.Run("arabic messages", func(t *testing.T) {
		req := postJSON("/v1/entities/permission/validate", `{}`)
		req.Header.Set("Accept-Language", "ar-SA,en;q=0.5")

		rec, body := do(t, h, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"حقل الاسم مطلوب"}, body.Error.Details["name"])
		assert.Equal(t, []string{"حقل المجموعة مطلوب"}, body.Error.Details["group"])
	})

	t.Run("lang query parameter", func(t *testing.T) {
		rec, body := do(t, h, postJSON("/v1/entities/todo/validate?lang=ar", `{"title": "x", "status": "Done"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "validation.in_list", body.Error.Fields[0].Key)
		assert.Contains(t, body.Error.Fields[0].Message, "Pending, InProgress, Completed")
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec, body := do(t, h, postJSON("/v1/entities/country/validate", `{}`))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, formapi.CodeUnknownEntityKind, body.Error.Code)
	})

	t.Run("bad bodies", func(t *testing.T) {
		tests := []struct {
			name string
			req  *http.Request
			code int
			err  string
		}{
			{name: "malformed", req: postJSON("/v1/entities/todo/validate", `{"title":`), code: http.StatusBadRequest, err: formapi.CodeInvalidJSON},
			{name: "array", req: postJSON("/v1/entities/todo/validate", `[1, 2]`), code: http.StatusBadRequest, err: formapi.CodeInvalidJSON},
			{name: "null", req: postJSON("/v1/entities/todo/validate", `null`), code: http.StatusBadRequest, err: formapi.CodeInvalidJSON},
			{name: "empty", req: postJSON("/v1/entities/todo/validate", ``), code: http.StatusBadRequest, err: formapi.CodeInvalidJSON},
			{name: "trailing data", req: postJSON("/v1/entities/todo/validate", `{} {}`), code: http.StatusBadRequest, err: formapi.CodeInvalidJSON},
			{
				name: "form content type",
				req: func() *http.Request {
					req := httptest.NewRequest(http.MethodPost, "/v1/entities/todo/validate", strings.NewReader("title=x"))
					req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
					return req
				}(),
				code: http.StatusUnsupportedMediaType,
				err:  formapi.CodeUnsupportedMediaType,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec, body := do(t, h, tt.req)
				assert.Equal(t, tt.code, rec.Code)
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.err, body.Error.Code)
			})
		}
	})
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	h := newRouter(t, formapi.WithMaxBodyBytes(16))
	rec, body := do(t, h, postJSON("/v1/entities/todo/validate", `{"title": "a long enough title", "status": "Pending"}`))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, formapi.CodeBodyTooLarge, body.Error.Code)
}

func TestProductionHidesDecoderDetail(t *testing.T) {
	t.Parallel()

	h := formapi.New(entities.Default(), formapi.WithEnvironment(environment.Production)).Router()
	rec, body := do(t, h, postJSON("/v1/entities/todo/validate", `{"title":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusBadRequest), body.Error.Message)
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := newRouter(t, formapi.WithMetrics(metrics.New(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	do(t, h, postJSON("/v1/entities/todo/validate", `{"title": "x", "status": "Pending"}`))
	do(t, h, postJSON("/v1/entities/todo/validate", `{}`))

	rec, _ = do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `entityforms_validations_total{kind="todo",outcome="valid"} 1`)
	assert.Contains(t, out, `entityforms_validations_total{kind="todo",outcome="invalid"} 1`)
	assert.Contains(t, out, `entityforms_field_errors_total{field="status",kind="todo"} 1`)
	assert.Contains(t, out, `route="/v1/entities/{kind}/validate"`)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, formapi.CodeNotFound, body.Error.Code)

	rec, body = do(t, h, httptest.NewRequest(http.MethodDelete, "/v1/entities", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, formapi.CodeMethodNotAllowed, body.Error.Code)
}
