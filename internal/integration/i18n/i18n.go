// Package i18n resolves the request locale and translates user facing messages.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported locales. The first one is the default.
const (
	Portuguese = "pt"
	French     = "fr"
)

// Default is used when nothing matches.
const Default = Portuguese

var supported = []language.Tag{
	language.Portuguese,
	language.French,
}

var matcher = language.NewMatcher(supported)

// Translator translates message keys for the supported locales.
type Translator struct {
	catalog *catalog.Builder
}

// NewTranslator builds the message catalogue.
func NewTranslator() *Translator {
	builder := catalog.NewBuilder(catalog.Fallback(language.Portuguese))
	for key, texts := range messages {
		_ = builder.SetString(language.Portuguese, string(key), texts[0])
		_ = builder.SetString(language.French, string(key), texts[1])
	}
	return &Translator{catalog: builder}
}

// Match resolves a locale code or an Accept-Language header to a supported locale.
func Match(preferences ...string) string {
	for _, preference := range preferences {
		preference = strings.TrimSpace(preference)
		if preference == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(preference)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return localeCode(supported[index])
	}
	return Default
}

// IsSupported reports whether locale is one of the supported codes.
func IsSupported(locale string) bool {
	return locale == Portuguese || locale == French
}

// T returns the translation of key in locale.
func (t *Translator) T(locale string, key Key, args ...interface{}) string {
	printer := message.NewPrinter(tagFor(locale), message.Catalog(t.catalog))
	return printer.Sprintf(string(key), args...)
}

// MonthLabel returns e.g. "Março 2026" for pt or "Mars 2026" for fr.
func (t *Translator) MonthLabel(locale string, month time.Time) string {
	names := monthNames[Default]
	if localized, ok := monthNames[locale]; ok {
		names = localized
	}
	name := cases.Title(tagFor(locale)).String(names[month.Month()-1])
	return fmt.Sprintf("%s %d", name, month.Year())
}

func tagFor(locale string) language.Tag {
	if locale == French {
		return language.French
	}
	return language.Portuguese
}

func localeCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

var monthNames = map[string][12]string{
	Portuguese: {
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	French: {
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
}
