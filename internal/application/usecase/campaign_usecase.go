package usecase

import (
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain/seed"
)

// CampaignUseCase catálogo de campañas de marketing. Las campañas son
// datos de referencia fijos: no hay escritura, se sirven desde la semilla.
type CampaignUseCase struct{}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase() *CampaignUseCase {
	return &CampaignUseCase{}
}

// List devuelve el catálogo completo de campañas.
func (uc *CampaignUseCase) List() *dto.CampaignListResponse {
	return &dto.CampaignListResponse{Campaigns: seed.Campaigns()}
}
