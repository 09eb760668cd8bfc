package i18n

// CountEntity identifica las clases de sustantivo con tabla de formas
// propia. Enumeración cerrada: agregar una clase implica agregar su tabla.
type CountEntity string

const (
	CountProducts  CountEntity = "products"
	CountUsers     CountEntity = "users"
	CountProUsers  CountEntity = "proUsers"
	CountCampaigns CountEntity = "campaigns"
	CountDays      CountEntity = "days"
)

var countForms = map[CountEntity]Forms{
	CountProducts: {
		EN: [2]string{"product", "products"},
		RU: [3]string{"товар", "товара", "товаров"},
		KY: [2]string{"товар", "товар"},
	},
	CountUsers: {
		EN: [2]string{"user", "users"},
		RU: [3]string{"пользователь", "пользователя", "пользователей"},
		KY: [2]string{"колдонуучу", "колдонуучу"},
	},
	CountProUsers: {
		EN: [2]string{"user", "users"},
		RU: [3]string{"пользователь", "пользователя", "пользователей"},
		KY: [2]string{"колдонуучу", "колдонуучу"},
	},
	CountCampaigns: {
		EN: [2]string{"campaign", "campaigns"},
		RU: [3]string{"кампания", "кампании", "кампаний"},
		KY: [2]string{"кампания", "кампания"},
	},
	CountDays: {
		EN: [2]string{"day", "days"},
		RU: [3]string{"день", "дня", "дней"},
		KY: [2]string{"күн", "күн"},
	},
}

// CountLabel compone el número formateado según el locale con el
// sustantivo correctamente flexionado ("5 товаров", "1 product").
// Para proUsers intercala la marca del plan ("3 Pro пользователя").
// Una clase desconocida devuelve solo el número.
func (l *Localizer) CountLabel(ent CountEntity, n int) string {
	forms, ok := countForms[ent]
	if !ok {
		return l.FormatNumber(n)
	}
	word := PluralWord(l.lang, n, forms)
	if ent == CountProUsers {
		return l.FormatNumber(n) + " Pro " + word
	}
	return l.FormatNumber(n) + " " + word
}
