// Package settings implementa el contrato de normalización del registro de
// configuración: cualquier entrada no confiable (JSON parseado, parcial,
// malformado) produce siempre un registro completo y dentro de los dominios
// enumerados. La sustitución de defaults es campo a campo, nunca del
// registro completo, y la operación es idempotente.
package settings

import (
	"encoding/json"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// Default devuelve el registro semilla de configuración.
func Default() entity.Settings {
	return entity.Settings{
		FirstName:          "John",
		LastName:           "Doe",
		Email:              "john.doe@example.com",
		Phone:              "+1 (555) 123-4567",
		Company:            "Acme Inc.",
		EmailNotifications: true,
		PushNotifications:  false,
		WeeklyDigest:       true,
		Language:           entity.LangEN,
		Currency:           entity.CurrencyUSD,
		Theme:              entity.ThemeSystem,
	}
}

// Normalize asegura que los campos enumerados de un registro ya tipado
// queden dentro de su dominio; los valores fuera de rango se reemplazan por
// el default correspondiente. Los campos string/bool no enumerados se
// conservan tal cual (ya son del tipo correcto).
func Normalize(s entity.Settings) entity.Settings {
	def := Default()
	if !entity.IsValidLanguage(s.Language) {
		s.Language = def.Language
	}
	if !entity.IsValidCurrency(s.Currency) {
		s.Currency = def.Currency
	}
	if !entity.IsValidTheme(s.Theme) {
		s.Theme = def.Theme
	}
	return s
}

// Sanitize convierte un valor arbitrario (resultado de parsear JSON) en un
// registro válido. Campo a campo: si el valor existe, es del tipo correcto
// y (para enums) pertenece al dominio, se copia; si no, se usa el default.
// Nunca falla; un valor que no sea objeto produce exactamente Default().
func Sanitize(value any) entity.Settings {
	def := Default()
	m, ok := value.(map[string]any)
	if !ok {
		return def
	}

	return entity.Settings{
		FirstName:          str(m, "firstName", def.FirstName),
		LastName:           str(m, "lastName", def.LastName),
		Email:              str(m, "email", def.Email),
		Phone:              str(m, "phone", def.Phone),
		Company:            str(m, "company", def.Company),
		EmailNotifications: boolean(m, "emailNotifications", def.EmailNotifications),
		PushNotifications:  boolean(m, "pushNotifications", def.PushNotifications),
		WeeklyDigest:       boolean(m, "weeklyDigest", def.WeeklyDigest),
		Language:           enum(m, "language", def.Language, entity.IsValidLanguage),
		Currency:           enum(m, "currency", def.Currency, entity.IsValidCurrency),
		Theme:              enum(m, "theme", def.Theme, entity.IsValidTheme),
	}
}

// SanitizeJSON aplica Sanitize sobre un documento JSON crudo. Un documento
// ilegible equivale a entrada vacía (se devuelven los defaults).
func SanitizeJSON(raw json.RawMessage) entity.Settings {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return Default()
	}
	return Sanitize(value)
}

func str(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func boolean(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func enum(m map[string]any, key, def string, valid func(string) bool) string {
	if v, ok := m[key].(string); ok && valid(v) {
		return v
	}
	return def
}
