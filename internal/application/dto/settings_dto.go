package dto

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// SaveSettingsRequest payload completo de settings. Todos los campos van
// como punteros: el PUT valida estrictamente que cada campo esté presente
// y sea del tipo correcto antes de llegar al normalizador (el gate
// estricto del borde; el normalizador queda como red de seguridad para
// los demás caminos).
type SaveSettingsRequest struct {
	FirstName          *string `json:"firstName"`
	LastName           *string `json:"lastName"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Company            *string `json:"company"`
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
	WeeklyDigest       *bool   `json:"weeklyDigest"`
	Language           *string `json:"language"`
	Currency           *string `json:"currency"`
	Theme              *string `json:"theme"`
}

// Valid indica si el payload está estructuralmente completo: todos los
// campos presentes y los enumerados dentro de su dominio.
func (r SaveSettingsRequest) Valid() bool {
	if r.FirstName == nil || r.LastName == nil || r.Email == nil ||
		r.Phone == nil || r.Company == nil ||
		r.EmailNotifications == nil || r.PushNotifications == nil || r.WeeklyDigest == nil ||
		r.Language == nil || r.Currency == nil || r.Theme == nil {
		return false
	}
	return entity.IsValidLanguage(*r.Language) &&
		entity.IsValidCurrency(*r.Currency) &&
		entity.IsValidTheme(*r.Theme)
}

// ToEntity materializa el payload ya validado como registro de dominio.
func (r SaveSettingsRequest) ToEntity() entity.Settings {
	return entity.Settings{
		FirstName:          *r.FirstName,
		LastName:           *r.LastName,
		Email:              *r.Email,
		Phone:              *r.Phone,
		Company:            *r.Company,
		EmailNotifications: *r.EmailNotifications,
		PushNotifications:  *r.PushNotifications,
		WeeklyDigest:       *r.WeeklyDigest,
		Language:           *r.Language,
		Currency:           *r.Currency,
		Theme:              *r.Theme,
	}
}

// SettingsResponse respuesta con el registro de settings normalizado.
type SettingsResponse struct {
	Settings entity.Settings `json:"settings"`
}
