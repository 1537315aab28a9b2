package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityforms/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "ar"}
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty header", header: "", want: "en"},
		{name: "exact match", header: "ar", want: "ar"},
		{name: "quality order", header: "en;q=0.5, ar;q=0.9", want: "ar"},
		{name: "regional variant", header: "ar-SA,fr;q=0.8", want: "ar"},
		{name: "exact beats base", header: "ar-EG, en;q=0.1", want: "en"},
		{name: "unsupported", header: "fr, de", want: "en"},
		{name: "invalid quality ignored", header: "ar;q=abc", want: "ar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}
}

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "ar", i18n.GetLocale(i18n.SetLocale(context.Background(), "ar")))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	handler := i18n.Middleware(i18n.QueryOrHeaderExtractor("en", "ar"), "en")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}),
	)

	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "header", target: "/", header: "ar-SA", want: "ar"},
		{name: "query wins over header", target: "/?lang=en", header: "ar", want: "en"},
		{name: "unsupported query falls through to header", target: "/?lang=fr", header: "ar", want: "ar"},
		{name: "query base language", target: "/?lang=ar-EG", want: "ar"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if tt.header != "" {
			req.Header.Set("Accept-Language", tt.header)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
