package dto

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// CampaignListResponse catálogo estático de campañas de marketing.
type CampaignListResponse struct {
	Campaigns []entity.Campaign `json:"campaigns"`
}
