// Package i18n implementa la capa de internacionalización del dashboard:
// motor de pluralización (en/ru/ky), resolución de traducciones de UI,
// label maps de dominio y formateadores de moneda/número/fecha derivados
// del locale activo.
package i18n

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// Categorías de plural según CLDR. El ruso usa one/few/many; inglés y
// kirguís solo distinguen singular/plural (one/other).
const (
	PluralOne   = "one"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// Forms agrupa las formas de una palabra por idioma: inglés y kirguís
// [singular, plural]; ruso [one, few, many].
type Forms struct {
	EN [2]string
	RU [3]string
	KY [2]string
}

// PluralCategory resuelve la categoría gramatical de plural para un conteo.
// Total para todo entero (los negativos se clasifican por valor absoluto).
func PluralCategory(lang string, n int) string {
	if n < 0 {
		n = -n
	}

	if lang == entity.LangRU {
		return russianCategory(n)
	}

	// en/ky: forma binaria singular/plural.
	if n == 1 {
		return PluralOne
	}
	return PluralOther
}

// Regla eslava estándar: n%10==1 && n%100!=11 → one;
// n%10 ∈ [2,4] && n%100 ∉ [12,14] → few; el resto → many.
// Clasifica 11-14 como many y 21, 101 como one.
func russianCategory(n int) string {
	mod10 := n % 10
	mod100 := n % 100

	if mod10 == 1 && mod100 != 11 {
		return PluralOne
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// PluralWord devuelve la forma flexionada de una palabra para un conteo.
// Para códigos de idioma no soportados aplica la regla binaria del inglés
// (los llamadores solo deben pasar códigos soportados).
func PluralWord(lang string, n int, forms Forms) string {
	switch lang {
	case entity.LangRU:
		switch russianCategory(abs(n)) {
		case PluralOne:
			return forms.RU[0]
		case PluralFew:
			return forms.RU[1]
		default:
			return forms.RU[2]
		}
	case entity.LangKY:
		if abs(n) == 1 {
			return forms.KY[0]
		}
		return forms.KY[1]
	default:
		if abs(n) == 1 {
			return forms.EN[0]
		}
		return forms.EN[1]
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
