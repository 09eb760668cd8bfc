package usecase

import (
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/filestore"
)

// SettingsUseCase lectura y escritura del registro único de settings.
type SettingsUseCase struct {
	store *filestore.Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *filestore.Store) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Get devuelve el registro vigente, ya saneado por la capa de lectura.
func (uc *SettingsUseCase) Get() *dto.SettingsResponse {
	return &dto.SettingsResponse{Settings: uc.store.GetSettings()}
}

// Save reemplaza el registro completo. El payload llega validado desde el
// borde HTTP; el store aplica además la normalización de enumerados.
func (uc *SettingsUseCase) Save(in dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	saved, err := uc.store.SaveSettings(in.ToEntity())
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Settings: saved}, nil
}
