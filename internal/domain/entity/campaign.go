package entity

// Tipos de campaña de marketing (enum cerrado).
const (
	CampaignPush        = "push-notification"
	CampaignInApp       = "in-app"
	CampaignAcquisition = "acquisition"
	CampaignRetargeting = "retargeting"
)

// Frecuencias de envío (enum cerrado; vacío = campaña puntual).
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"
	FrequencyMonthly  = "monthly"
)

// Estados de campaña (enum cerrado).
const (
	CampaignActive = "active"
	CampaignPaused = "paused"
	CampaignDraft  = "draft"
)

// Campaign representa una campaña de marketing del catálogo estático.
// Solo lectura desde la API; no se persiste en el store.
type Campaign struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Frequency      string  `json:"frequency,omitempty"`
	Status         string  `json:"status"`
	TargetUsers    int     `json:"targetUsers"`
	LastSent       string  `json:"lastSent,omitempty"` // YYYY-MM-DD
	NextSend       string  `json:"nextSend,omitempty"` // YYYY-MM-DD
	ConversionRate float64 `json:"conversionRate,omitempty"`
	EngagementRate float64 `json:"engagementRate,omitempty"`
}
