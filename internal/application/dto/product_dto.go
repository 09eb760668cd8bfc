package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Price y Stock van
// como punteros para distinguir "ausente" de cero en la validación.
type CreateProductRequest struct {
	Image    string           `json:"image"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	Status   string           `json:"status"`
	SKU      string           `json:"sku"`
}

// ProductResponse respuesta con un producto creado.
type ProductResponse struct {
	Product entity.Product `json:"product"`
}

// ProductListResponse lista completa de productos.
type ProductListResponse struct {
	Products []entity.Product `json:"products"`
}
