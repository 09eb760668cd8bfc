package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/dashboard-api/internal/i18n"
)

func TestProductCategoryLabel_Traducida(t *testing.T) {
	ru := i18n.New("ru", "RUB")
	assert.Equal(t, "Электроника", ru.ProductCategoryLabel("Electronics"))
	assert.Equal(t, "Дом и быт", ru.ProductCategoryLabel("Home & Living"))

	ky := i18n.New("ky", "KGS")
	assert.Equal(t, "Бут кийим", ky.ProductCategoryLabel("Footwear"))
}

// Las categorías son texto libre: una categoría sin traducción debe volver
// tal cual, no vacía ni con error.
func TestProductCategoryLabel_SinTraduccionDevuelveClave(t *testing.T) {
	ru := i18n.New("ru", "RUB")
	assert.Equal(t, "Garden Tools", ru.ProductCategoryLabel("Garden Tools"))
}

func TestProductStatusLabel(t *testing.T) {
	ru := i18n.New("ru", "RUB")
	assert.Equal(t, "В наличии", ru.ProductStatusLabel("In Stock"))
	assert.Equal(t, "Мало на складе", ru.ProductStatusLabel("Low Stock"))
	assert.Equal(t, "Нет в наличии", ru.ProductStatusLabel("Out of Stock"))

	en := i18n.New("en", "USD")
	assert.Equal(t, "In Stock", en.ProductStatusLabel("In Stock"))
}

func TestUserPlanLabel(t *testing.T) {
	assert.Equal(t, "Бесплатный", i18n.New("ru", "RUB").UserPlanLabel("Free"))
	assert.Equal(t, "Pro", i18n.New("ky", "KGS").UserPlanLabel("Pro"))
}

func TestCampaignLabels(t *testing.T) {
	ru := i18n.New("ru", "RUB")
	assert.Equal(t, "Привлечение", ru.CampaignTypeLabel("acquisition"))
	assert.Equal(t, "Еженедельно", ru.CampaignFrequencyLabel("weekly"))
	assert.Equal(t, "Активна", ru.CampaignStatusLabel("active"))
}

// Frecuencia vacía (campaña puntual) se muestra como guion.
func TestCampaignFrequencyLabel_Vacia(t *testing.T) {
	assert.Equal(t, "-", i18n.New("en", "USD").CampaignFrequencyLabel(""))
}
