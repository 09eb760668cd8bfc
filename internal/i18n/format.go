package i18n

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// DateStyle controla la forma de la fecha renderizada.
type DateStyle int

const (
	// DateShort día + mes abreviado ("Jan 23", "23 янв.").
	DateShort DateStyle = iota
	// DateMedium día + mes abreviado + año ("Jan 23, 2024", "23 янв. 2024 г.").
	DateMedium
)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Localizer agrupa los formateadores derivados del par (idioma, moneda)
// activo. Inmutable: ante un cambio de settings se construye uno nuevo
// (el sincronizador los memoiza por par).
type Localizer struct {
	lang    string
	tag     language.Tag
	printer *message.Printer
	unit    currency.Unit
}

// New construye el Localizer para un idioma y una moneda del dashboard.
// Valores fuera de los enums caen a los defaults (en / USD).
func New(lang, cur string) *Localizer {
	if !entity.IsValidLanguage(lang) {
		lang = entity.LangEN
	}
	if !entity.IsValidCurrency(cur) {
		cur = entity.CurrencyUSD
	}
	tag := LocaleTag(lang)
	unit, err := currency.ParseISO(cur)
	if err != nil {
		unit = currency.USD
	}
	return &Localizer{
		lang:    lang,
		tag:     tag,
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Lang devuelve el idioma activo del localizer.
func (l *Localizer) Lang() string { return l.lang }

// Currency devuelve el código ISO de la moneda activa.
func (l *Localizer) Currency() string { return l.unit.String() }

// Locale devuelve la etiqueta de locale activa ("ru-RU").
func (l *Localizer) Locale() string { return Locale(l.lang) }

// FormatNumber renderiza un entero con agrupación de miles del locale.
func (l *Localizer) FormatNumber(n int) string {
	return l.printer.Sprint(number.Decimal(n))
}

// FormatFloat renderiza un número con decimales según el locale.
func (l *Localizer) FormatFloat(v float64) string {
	return l.printer.Sprint(number.Decimal(v))
}

// FormatCurrency renderiza un monto con el símbolo de la moneda activa.
func (l *Localizer) FormatCurrency(v decimal.Decimal) string {
	f, _ := v.Float64()
	return l.printer.Sprint(currency.Symbol(l.unit.Amount(f)))
}

// ParseStoredDate interpreta una fecha persistida. Las fechas sin
// componente horario (YYYY-MM-DD) se anclan a medianoche UTC: evita el
// corrimiento de un día al renderizar en zonas horarias negativas.
func ParseStoredDate(value string) (time.Time, bool) {
	if dateOnlyRe.MatchString(value) {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, false
		}
		return t, true // time.Parse sin zona ya produce UTC
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// FormatDate renderiza una fecha en el estilo pedido usando las tablas de
// meses del idioma activo. La fecha se lee siempre en UTC.
func (l *Localizer) FormatDate(t time.Time, style DateStyle) string {
	t = t.UTC()
	month := monthNames[l.lang][t.Month()-1]
	day := t.Day()
	year := t.Year()

	switch l.lang {
	case entity.LangRU:
		if style == DateShort {
			return fmt.Sprintf("%d %s", day, month)
		}
		return fmt.Sprintf("%d %s %d г.", day, month, year)
	case entity.LangKY:
		if style == DateShort {
			return fmt.Sprintf("%d-%s", day, month)
		}
		return fmt.Sprintf("%d-%s %d-ж.", day, month, year)
	default:
		if style == DateShort {
			return fmt.Sprintf("%s %d", month, day)
		}
		return fmt.Sprintf("%s %d, %d", month, day, year)
	}
}

// FormatStoredDate renderiza una fecha persistida en estilo medium.
// Si el valor no es una fecha reconocible se devuelve sin cambios.
func (l *Localizer) FormatStoredDate(value string) string {
	t, ok := ParseStoredDate(value)
	if !ok {
		return value
	}
	return l.FormatDate(t, DateMedium)
}

// Meses abreviados por idioma (formato CLDR).
var monthNames = map[string][12]string{
	entity.LangEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	entity.LangRU: {"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
	entity.LangKY: {"янв.", "фев.", "мар.", "апр.", "май", "июн.", "июл.", "авг.", "сен.", "окт.", "ноя.", "дек."},
}
