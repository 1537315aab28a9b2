// Package i18n resolves translation keys, including the keys carried by
// validator.ValidationError, into localized messages.
//
// Translations are loaded once through a TranslationAdapter: MapAdapter for
// in-memory data or FSAdapter for YAML/JSON files in any fs.FS. Catalog
// returns the embedded English and Arabic validation messages.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.Catalog(), "."))
//	if err != nil {
//	    return err
//	}
//	msgs := res.Errors.Translate(tr.ValidationMessages("ar"))
//
// Templates use %{name} placeholders. Keys are dot-separated paths into the
// nested maps of each language. Lookups for a missing language or key fall
// back to the default language before giving up.
//
// Middleware negotiates the request language (query parameter "lang", then
// Accept-Language) and stores it in the context; read it with GetLocale.
package i18n
