package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor extracts a language code from a request, or returns "".
type LangExtractor func(r *http.Request) string

// QueryOrHeaderExtractor checks the "lang" query parameter, then
// Accept-Language, and only returns languages in supportedLangs.
func QueryOrHeaderExtractor(supportedLangs ...string) LangExtractor {
	return func(r *http.Request) string {
		if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
			if match := matchLanguage(lang, supportedLangs, false); match != "" {
				return match
			}
			if match := matchLanguage(lang, supportedLangs, true); match != "" {
				return match
			}
		}
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), supportedLangs, "")
	}
}

// Middleware stores the extracted language in the request context, falling
// back to defaultLang.
func Middleware(extr LangExtractor, defaultLang string) func(http.Handler) http.Handler {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = defaultLang
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
