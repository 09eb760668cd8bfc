package entity

// Idiomas soportados por el dashboard (enum cerrado).
const (
	LangEN = "en"
	LangRU = "ru"
	LangKY = "ky"
)

// Monedas soportadas (enum cerrado).
const (
	CurrencyUSD = "USD"
	CurrencyKGS = "KGS"
	CurrencyRUB = "RUB"
	CurrencyKZT = "KZT"
)

// Temas de la interfaz (enum cerrado).
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Settings es el registro global de configuración del dashboard.
// Instancia única: se siembra con defaults en el primer acceso y solo se
// muta vía saveSettings. Tras pasar por el normalizador, todos los campos
// están poblados y dentro de sus dominios enumerados.
type Settings struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	WeeklyDigest       bool   `json:"weeklyDigest"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
	Theme              string `json:"theme"`
}

// IsValidLanguage indica si lang pertenece a {ru, en, ky}.
func IsValidLanguage(lang string) bool {
	return lang == LangRU || lang == LangEN || lang == LangKY
}

// IsValidCurrency indica si cur pertenece a {USD, KGS, RUB, KZT}.
func IsValidCurrency(cur string) bool {
	return cur == CurrencyUSD || cur == CurrencyKGS || cur == CurrencyRUB || cur == CurrencyKZT
}

// IsValidTheme indica si theme pertenece a {light, dark, system}.
func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeSystem
}
