// Package i18n renders player-facing message templates per player language.
// Russian is the source language and the fallback for untranslated keys.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLang is used for unknown or empty player languages.
const DefaultLang = "ru"

var printers = map[string]*message.Printer{
	"ru": message.NewPrinter(language.Russian),
	"en": message.NewPrinter(language.English),
}

// Translator resolves message keys to formatted strings.
type Translator struct {
	catalogs map[string]map[string]string
}

// NewTranslator creates a translator over the built-in catalogs.
func NewTranslator() *Translator {
	return &Translator{catalogs: catalogs}
}

// T renders the message key for the language, formatting args with
// locale-aware number formatting. An unknown key is rendered verbatim so a
// missing translation degrades to a visible marker instead of an error.
func (t *Translator) T(lang, key string, args ...any) string {
	if _, ok := t.catalogs[lang]; !ok {
		lang = DefaultLang
	}
	tmpl, ok := t.catalogs[lang][key]
	if !ok {
		tmpl, ok = t.catalogs[DefaultLang][key]
		if !ok {
			return key
		}
	}
	p, ok := printers[lang]
	if !ok {
		p = printers[DefaultLang]
	}
	if len(args) == 0 {
		return tmpl
	}
	return p.Sprintf(tmpl, args...)
}

// FormatNumber renders n with the locale's digit grouping.
func (t *Translator) FormatNumber(lang string, n int) string {
	p, ok := printers[lang]
	if !ok {
		p = printers[DefaultLang]
	}
	return p.Sprintf("%d", n)
}
