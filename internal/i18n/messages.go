package i18n

import (
	"strings"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// M son los parámetros de interpolación de una traducción (%{name}).
type M map[string]string

// Diccionario de copy de la UI, clave plana con puntos. Cadena de
// resolución: idioma pedido → inglés → clave cruda.
var messages = map[string]map[string]string{
	entity.LangEN: {
		"common.actions":    "Actions",
		"common.cancel":     "Cancel",
		"common.category":   "Category",
		"common.image":      "Image",
		"common.new":        "New",
		"common.price":      "Price",
		"common.status":     "Status",
		"common.stock":      "Stock",
		"login.and":         "and",
		"login.or":          "or",
		"login.password":    "Password",
		"login.privacy":     "Privacy Policy",
		"login.terms":       "Terms of Service",
		"marketing.frequency": "Frequency",
		"marketing.launch":    "Launch campaign",
		"marketing.next":      "Next send",
		"marketing.recurring": "Recurring",
		"marketing.showing":   "Showing %{count} of %{total} campaigns",
		"marketing.status":    "Status",
		"marketing.title":     "Marketing",
		"marketing.type":      "Type",
		"products.description": "Manage your product catalog",
		"products.loading":     "Loading products…",
		"products.product":     "Product",
		"products.showing":     "Showing %{count} of %{total} products",
		"products.sku":         "SKU",
		"products.title":       "Products",
		"settings.appearance":    "Appearance",
		"settings.company":       "Company",
		"settings.currency":      "Currency",
		"settings.dark":          "Dark",
		"settings.email":         "Email",
		"settings.language":      "Language",
		"settings.light":         "Light",
		"settings.notifications": "Notifications",
		"settings.password":      "Password",
		"settings.phone":         "Phone",
		"settings.preferences":   "Preferences",
		"settings.saved":         "Settings saved",
		"settings.saving":        "Saving…",
	},
	entity.LangRU: {
		"common.actions":    "Действия",
		"common.cancel":     "Отмена",
		"common.category":   "Категория",
		"common.image":      "Изображение",
		"common.new":        "Создать",
		"common.price":      "Цена",
		"common.status":     "Статус",
		"common.stock":      "Остаток",
		"login.and":         "и",
		"login.or":          "или",
		"login.password":    "Пароль",
		"login.privacy":     "Политикой конфиденциальности",
		"login.terms":       "Условиями использования",
		"marketing.frequency": "Частота",
		"marketing.launch":    "Запустить кампанию",
		"marketing.next":      "Следующая отправка",
		"marketing.recurring": "Повторяющаяся",
		"marketing.showing":   "Показано %{count} из %{total} кампаний",
		"marketing.status":    "Статус",
		"marketing.title":     "Маркетинг",
		"marketing.type":      "Тип",
		"products.description": "Управление каталогом товаров",
		"products.loading":     "Загрузка товаров…",
		"products.product":     "Товар",
		"products.showing":     "Показано %{count} из %{total} товаров",
		"products.sku":         "Артикул",
		"products.title":       "Товары",
		"settings.appearance":    "Оформление",
		"settings.company":       "Компания",
		"settings.currency":      "Валюта",
		"settings.dark":          "Тёмная",
		"settings.email":         "Эл. почта",
		"settings.language":      "Язык",
		"settings.light":         "Светлая",
		"settings.notifications": "Уведомления",
		"settings.password":      "Пароль",
		"settings.phone":         "Телефон",
		"settings.preferences":   "Предпочтения",
		"settings.saved":         "Настройки сохранены",
		"settings.saving":        "Сохранение…",
	},
	entity.LangKY: {
		"common.actions":    "Аракеттер",
		"common.cancel":     "Жокко чыгаруу",
		"common.category":   "Категория",
		"common.image":      "Сүрөт",
		"common.new":        "Жаңы",
		"common.price":      "Баасы",
		"common.status":     "Абалы",
		"common.stock":      "Калдык",
		"login.and":         "жана",
		"login.or":          "же",
		"login.password":    "Сырсөз",
		"login.privacy":     "Купуялык саясаты",
		"login.terms":       "Колдонуу шарттары",
		"marketing.frequency": "Жыштыгы",
		"marketing.launch":    "Кампанияны баштоо",
		"marketing.next":      "Кийинки жөнөтүү",
		"marketing.recurring": "Кайталануучу",
		"marketing.showing":   "%{total} кампаниянын %{count} көрсөтүлдү",
		"marketing.status":    "Абалы",
		"marketing.title":     "Маркетинг",
		"marketing.type":      "Түрү",
		"products.description": "Товар каталогун башкаруу",
		"products.loading":     "Товарлар жүктөлүүдө…",
		"products.product":     "Товар",
		"products.showing":     "%{total} товардын %{count} көрсөтүлдү",
		"products.sku":         "Артикул",
		"products.title":       "Товарлар",
		"settings.appearance":    "Көрүнүшү",
		"settings.company":       "Компания",
		"settings.currency":      "Валюта",
		"settings.dark":          "Караңгы",
		"settings.email":         "Эл. почта",
		"settings.language":      "Тил",
		"settings.light":         "Жарык",
		"settings.notifications": "Билдирмелер",
		"settings.password":      "Сырсөз",
		"settings.phone":         "Телефон",
		"settings.preferences":   "Жөндөөлөр",
		"settings.saved":         "Жөндөөлөр сакталды",
		"settings.saving":        "Сакталууда…",
	},
}

// T resuelve una clave de traducción para un idioma, interpolando los
// parámetros %{name}. Si la clave no existe en el idioma pedido se busca
// en inglés; si tampoco, se devuelve la clave sin cambios.
func T(lang, key string, params ...M) string {
	value, ok := lookupMessage(lang, key)
	if !ok {
		if value, ok = lookupMessage(entity.LangEN, key); !ok {
			value = key
		}
	}
	for _, p := range params {
		for name, v := range p {
			value = strings.ReplaceAll(value, "%{"+name+"}", v)
		}
	}
	return value
}

// T resuelve una clave con el idioma del localizer.
func (l *Localizer) T(key string, params ...M) string {
	return T(l.lang, key, params...)
}

func lookupMessage(lang, key string) (string, bool) {
	if byKey, ok := messages[lang]; ok {
		if value, ok := byKey[key]; ok {
			return value, true
		}
	}
	return "", false
}
