package i18n

import (
	"golang.org/x/text/language"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// Binding idioma → etiqueta de locale de plataforma. Derivado, nunca
// persistido: se recalcula cada vez que cambia settings.language.
var langToLocale = map[string]string{
	entity.LangEN: "en-US",
	entity.LangRU: "ru-RU",
	entity.LangKY: "ky-KG",
}

// Locale devuelve la etiqueta de locale para un idioma del dashboard
// ("en" → "en-US"). Idiomas fuera del enum caen al locale del default.
func Locale(lang string) string {
	if loc, ok := langToLocale[lang]; ok {
		return loc
	}
	return langToLocale[entity.LangEN]
}

// LocaleTag devuelve el language.Tag de x/text para el idioma dado.
func LocaleTag(lang string) language.Tag {
	return language.MustParse(Locale(lang))
}
