package usecase

import (
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/seed"
	"github.com/jhoicas/dashboard-api/internal/i18n"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/filestore"
)

// DashboardUseCase resumen localizado del dashboard: conteos renderizados
// en el idioma y moneda guardados en settings.
type DashboardUseCase struct {
	store *filestore.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *filestore.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary calcula los conteos y los flexiona con las reglas de plural
// del idioma activo. Se rearma en cada llamada: el idioma puede cambiar
// entre peticiones vía PUT de settings.
func (uc *DashboardUseCase) Summary() *dto.DashboardSummaryResponse {
	cfg := uc.store.GetSettings()
	loc := i18n.New(cfg.Language, cfg.Currency)

	users := uc.store.GetUsers()
	pro := 0
	for _, u := range users {
		if u.Plan == entity.PlanPro {
			pro++
		}
	}

	return &dto.DashboardSummaryResponse{
		Language:  cfg.Language,
		Locale:    i18n.Locale(cfg.Language),
		Products:  loc.CountLabel(i18n.CountProducts, len(uc.store.GetProducts())),
		Users:     loc.CountLabel(i18n.CountUsers, len(users)),
		ProUsers:  loc.CountLabel(i18n.CountProUsers, pro),
		Campaigns: loc.CountLabel(i18n.CountCampaigns, len(seed.Campaigns())),
	}
}
