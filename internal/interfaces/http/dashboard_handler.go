package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/usecase"
)

// DashboardHandler sirve el resumen localizado del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Conteos de productos, usuarios, usuarios Pro y campañas,
// @Description  formateados en el idioma guardado en settings.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}
