package i18n

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// Label maps de dominio: enum de dominio → texto visible por idioma.
// Las categorías de producto son un conjunto abierto (texto libre), por lo
// que una categoría sin traducción devuelve la clave cruda; el resto de
// enums es cerrado y está cubierto completo.

var productCategoryLabels = map[string]map[string]string{
	"Electronics":   {entity.LangEN: "Electronics", entity.LangRU: "Электроника", entity.LangKY: "Электроника"},
	"Footwear":      {entity.LangEN: "Footwear", entity.LangRU: "Обувь", entity.LangKY: "Бут кийим"},
	"Accessories":   {entity.LangEN: "Accessories", entity.LangRU: "Аксессуары", entity.LangKY: "Аксессуарлар"},
	"Bags":          {entity.LangEN: "Bags", entity.LangRU: "Сумки", entity.LangKY: "Сумкалар"},
	"Clothing":      {entity.LangEN: "Clothing", entity.LangRU: "Одежда", entity.LangKY: "Кийим"},
	"Home & Living": {entity.LangEN: "Home & Living", entity.LangRU: "Дом и быт", entity.LangKY: "Үй жана турмуш"},
}

var productStatusLabels = map[string]map[string]string{
	entity.StatusInStock:    {entity.LangEN: "In Stock", entity.LangRU: "В наличии", entity.LangKY: "Бар"},
	entity.StatusLowStock:   {entity.LangEN: "Low Stock", entity.LangRU: "Мало на складе", entity.LangKY: "Аз калды"},
	entity.StatusOutOfStock: {entity.LangEN: "Out of Stock", entity.LangRU: "Нет в наличии", entity.LangKY: "Жок"},
}

var userPlanLabels = map[string]map[string]string{
	entity.PlanFree: {entity.LangEN: "Free", entity.LangRU: "Бесплатный", entity.LangKY: "Акысыз"},
	entity.PlanPro:  {entity.LangEN: "Pro", entity.LangRU: "Pro", entity.LangKY: "Pro"},
}

var campaignTypeLabels = map[string]map[string]string{
	entity.CampaignPush:        {entity.LangEN: "Push", entity.LangRU: "Push", entity.LangKY: "Push"},
	entity.CampaignInApp:       {entity.LangEN: "In-App", entity.LangRU: "In-App", entity.LangKY: "In-App"},
	entity.CampaignAcquisition: {entity.LangEN: "Acquisition", entity.LangRU: "Привлечение", entity.LangKY: "Тартуу"},
	entity.CampaignRetargeting: {entity.LangEN: "Retargeting", entity.LangRU: "Ретаргетинг", entity.LangKY: "Ретаргетинг"},
}

var campaignFrequencyLabels = map[string]map[string]string{
	entity.FrequencyDaily:    {entity.LangEN: "Daily", entity.LangRU: "Ежедневно", entity.LangKY: "Күн сайын"},
	entity.FrequencyWeekly:   {entity.LangEN: "Weekly", entity.LangRU: "Еженедельно", entity.LangKY: "Жума сайын"},
	entity.FrequencyBiWeekly: {entity.LangEN: "Bi-Weekly", entity.LangRU: "Раз в 2 недели", entity.LangKY: "2 жумада бир"},
	entity.FrequencyMonthly:  {entity.LangEN: "Monthly", entity.LangRU: "Ежемесячно", entity.LangKY: "Ай сайын"},
}

var campaignStatusLabels = map[string]map[string]string{
	entity.CampaignActive: {entity.LangEN: "Active", entity.LangRU: "Активна", entity.LangKY: "Активдүү"},
	entity.CampaignPaused: {entity.LangEN: "Paused", entity.LangRU: "Пауза", entity.LangKY: "Токтотулган"},
	entity.CampaignDraft:  {entity.LangEN: "Draft", entity.LangRU: "Черновик", entity.LangKY: "Каралама"},
}

func (l *Localizer) lookupLabel(table map[string]map[string]string, value string) string {
	if byLang, ok := table[value]; ok {
		if label, ok := byLang[l.lang]; ok {
			return label
		}
	}
	return value
}

// ProductCategoryLabel traduce una categoría de producto; las categorías
// sin entrada en la tabla se devuelven sin cambios (conjunto abierto).
func (l *Localizer) ProductCategoryLabel(category string) string {
	return l.lookupLabel(productCategoryLabels, category)
}

// ProductStatusLabel traduce un estado de stock.
func (l *Localizer) ProductStatusLabel(status string) string {
	return l.lookupLabel(productStatusLabels, status)
}

// UserPlanLabel traduce un plan de usuario.
func (l *Localizer) UserPlanLabel(plan string) string {
	return l.lookupLabel(userPlanLabels, plan)
}

// CampaignTypeLabel traduce un tipo de campaña.
func (l *Localizer) CampaignTypeLabel(typ string) string {
	return l.lookupLabel(campaignTypeLabels, typ)
}

// CampaignFrequencyLabel traduce una frecuencia de envío; vacía → "-".
func (l *Localizer) CampaignFrequencyLabel(frequency string) string {
	if frequency == "" {
		return "-"
	}
	return l.lookupLabel(campaignFrequencyLabels, frequency)
}

// CampaignStatusLabel traduce un estado de campaña.
func (l *Localizer) CampaignStatusLabel(status string) string {
	return l.lookupLabel(campaignStatusLabels, status)
}
