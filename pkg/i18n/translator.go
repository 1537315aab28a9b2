package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/entityforms/pkg/validator"
)

// Translator resolves message keys for a language. Translations are loaded
// once by NewTranslator and never modified, so a Translator is safe for
// concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, values := range translations {
		if lang == "" || values == nil {
			return nil, fmt.Errorf("%w: empty language or nil map for %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the language used when none is requested.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. Missing keys fall back to the key itself unless
// WithFallbackToKey(false) was set.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return interpolate(tmpl, pairs(args))
}

// Message resolves a validation error for lang. The field placeholder is
// replaced with the field label when the catalogue has one. Errors without a
// translation key, or with an unknown key, keep their literal message.
func (t *Translator) Message(lang string, e validator.ValidationError) string {
	if e.TranslationKey == "" {
		return e.Message
	}

	tmpl, ok := t.lookup(lang, e.TranslationKey)
	if !ok {
		return e.Message
	}

	params := make(map[string]string, len(e.TranslationValues)+1)
	for k, v := range e.TranslationValues {
		params[k] = fmt.Sprint(v)
	}
	params["field"] = t.FieldLabel(lang, e.Field)
	return interpolate(tmpl, params)
}

// ValidationMessages returns a function for validator.ValidationErrors.Translate.
func (t *Translator) ValidationMessages(lang string) func(validator.ValidationError) string {
	return func(e validator.ValidationError) string {
		return t.Message(lang, e)
	}
}

// FieldLabel returns the human label for a dotted field path, or the path itself.
func (t *Translator) FieldLabel(lang, path string) string {
	key := "fields." + strings.ReplaceAll(path, validator.PathSeparator, "_")
	if label, ok := t.lookup(lang, key); ok {
		return label
	}
	return path
}

// lookup finds a string translation, falling back to the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	for _, l := range slices.Compact([]string{lang, t.defaultLang}) {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		if s, ok := nested(langMap, key).(string); ok {
			return s, true
		}
	}
	return "", false
}

// nested walks a dot-separated key through nested maps.
func nested(m map[string]any, key string) any {
	parts := strings.Split(key, ".")
	var current any = m
	for _, part := range parts {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case map[any]any:
			current = node[part]
		default:
			return nil
		}
	}
	return current
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} placeholders; unknown names are left intact.
func interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
