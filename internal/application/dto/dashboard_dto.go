package dto

// DashboardSummaryResponse resumen localizado del dashboard: conteos ya
// renderizados con el número agrupado según locale y el sustantivo
// correctamente flexionado para el idioma activo.
type DashboardSummaryResponse struct {
	Language  string `json:"language"`
	Locale    string `json:"locale"`
	Products  string `json:"products"`
	Users     string `json:"users"`
	ProUsers  string `json:"proUsers"`
	Campaigns string `json:"campaigns"`
}
