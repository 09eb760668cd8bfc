package usecase

import (
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/filestore"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	store *filestore.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *filestore.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el catálogo completo (más reciente primero).
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	return &dto.ProductListResponse{Products: uc.store.GetProducts()}
}

// Create da de alta un producto ya validado en el borde HTTP.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	created, err := uc.store.AddProduct(filestore.NewProduct{
		Image:    in.Image,
		Name:     in.Name,
		Category: in.Category,
		Price:    *in.Price,
		Stock:    *in.Stock,
		Status:   in.Status,
		SKU:      in.SKU,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{Product: created}, nil
}
