package entity

import "github.com/shopspring/decimal"

// Estados de stock válidos para Product (enum cerrado).
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Product representa un producto del catálogo del dashboard.
// Category es texto libre (conjunto abierto: los labels de i18n hacen
// fallback al valor crudo si no hay traducción). SKU no se valida por
// unicidad en este dominio.
type Product struct {
	ID       int             `json:"id"`
	Image    string          `json:"image"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"` // precio de venta, no negativo
	Stock    int             `json:"stock"` // unidades, no negativo
	Status   string          `json:"status"`
	SKU      string          `json:"sku"`
}

// IsValidProductStatus indica si status pertenece a {In Stock, Low Stock, Out of Stock}.
func IsValidProductStatus(status string) bool {
	return status == StatusInStock || status == StatusLowStock || status == StatusOutOfStock
}
