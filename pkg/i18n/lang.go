package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size that is parsed.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader returns the header's languages ordered by quality.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		lang, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" {
			continue
		}

		q := 1.0
		if qPart, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if qVal, err := strconv.ParseFloat(qPart, 64); err == nil && qVal >= 0 && qVal <= 1 {
				q = qVal
			}
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the best supported language from an Accept-Language
// header: exact matches first, then base-language matches (ar-SA → ar).
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	languages := parseAcceptLanguageHeader(header)
	for _, lq := range languages {
		if match := matchLanguage(lq.lang, supportedLangs, false); match != "" {
			return match
		}
	}
	for _, lq := range languages {
		if match := matchLanguage(lq.lang, supportedLangs, true); match != "" {
			return match
		}
	}
	return defaultLang
}

// matchLanguage returns the supported code equal to lang, or with base set,
// equal to lang's base language.
func matchLanguage(lang string, supportedLangs []string, base bool) string {
	lang = strings.ToLower(lang)
	if base {
		b, _, found := strings.Cut(lang, "-")
		if !found {
			return ""
		}
		lang = b
	}
	for _, s := range supportedLangs {
		if strings.EqualFold(s, lang) {
			return s
		}
	}
	return ""
}
