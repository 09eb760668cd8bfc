package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/usecase"
)

// CampaignHandler sirve el catálogo estático de campañas.
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// List godoc
// @Summary      Listar campañas de marketing
// @Tags         campaigns
// @Produce      json
// @Success      200  {object}  dto.CampaignListResponse
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
