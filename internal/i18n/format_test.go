package i18n_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/internal/i18n"
)

func TestNew_ValoresInvalidosCaenAlDefault(t *testing.T) {
	loc := i18n.New("fr", "EUR")
	assert.Equal(t, "en", loc.Lang())
	assert.Equal(t, "USD", loc.Currency())
	assert.Equal(t, "en-US", loc.Locale())
}

func TestLocale_Binding(t *testing.T) {
	assert.Equal(t, "en-US", i18n.Locale("en"))
	assert.Equal(t, "ru-RU", i18n.Locale("ru"))
	assert.Equal(t, "ky-KG", i18n.Locale("ky"))
	assert.Equal(t, "en-US", i18n.Locale("zz"))
}

func TestFormatCurrency_RublosContieneSimbolo(t *testing.T) {
	loc := i18n.New("ru", "RUB")
	got := loc.FormatCurrency(decimal.NewFromInt(100))
	assert.True(t, strings.Contains(got, "₽") || strings.Contains(got, "RUB"),
		"precio en rublos debe contener ₽ o RUB, fue %q", got)
}

func TestFormatCurrency_Dolares(t *testing.T) {
	loc := i18n.New("en", "USD")
	got := loc.FormatCurrency(decimal.NewFromFloat(129.99))
	assert.True(t, strings.Contains(got, "$") || strings.Contains(got, "USD"),
		"precio en dólares debe contener $ o USD, fue %q", got)
	assert.Contains(t, got, "129.99")
}

func TestFormatNumber_AgrupacionEnUS(t *testing.T) {
	loc := i18n.New("en", "USD")
	assert.Equal(t, "1,500", loc.FormatNumber(1500))
	assert.Equal(t, "450,000", loc.FormatNumber(450000))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas: anclaje UTC de fechas sin componente horario
// ──────────────────────────────────────────────────────────────────────────────

// Una fecha YYYY-MM-DD debe renderizar el mismo día calendario sin importar
// la zona horaria de la máquina (medianoche UTC, no local).
func TestParseStoredDate_FechaSolaEsMedianocheUTC(t *testing.T) {
	parsed, ok := i18n.ParseStoredDate("2024-01-23")
	require.True(t, ok)
	assert.Equal(t, 23, parsed.UTC().Day())
	assert.Equal(t, time.January, parsed.UTC().Month())
	assert.Equal(t, 2024, parsed.UTC().Year())
	assert.Equal(t, 0, parsed.UTC().Hour())
}

func TestParseStoredDate_RFC3339(t *testing.T) {
	parsed, ok := i18n.ParseStoredDate("2024-01-23T18:30:00-07:00")
	require.True(t, ok)
	// 18:30 en UTC-7 ya es 24 de enero en UTC.
	assert.Equal(t, 24, parsed.Day())
}

func TestParseStoredDate_ValorIlegible(t *testing.T) {
	_, ok := i18n.ParseStoredDate("ayer")
	assert.False(t, ok)
}

func TestFormatStoredDate_MismoDiaEnTodosLosIdiomas(t *testing.T) {
	const fecha = "2024-01-23"

	assert.Equal(t, "Jan 23, 2024", i18n.New("en", "USD").FormatStoredDate(fecha))
	assert.Equal(t, "23 янв. 2024 г.", i18n.New("ru", "RUB").FormatStoredDate(fecha))
	assert.Equal(t, "23-янв. 2024-ж.", i18n.New("ky", "KGS").FormatStoredDate(fecha))
}

func TestFormatStoredDate_ValorNoFechaSeDevuelveTalCual(t *testing.T) {
	loc := i18n.New("en", "USD")
	assert.Equal(t, "pendiente", loc.FormatStoredDate("pendiente"))
}

func TestFormatDate_EstiloCorto(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5", i18n.New("en", "USD").FormatDate(d, i18n.DateShort))
	assert.Equal(t, "5 мар.", i18n.New("ru", "RUB").FormatDate(d, i18n.DateShort))
}
