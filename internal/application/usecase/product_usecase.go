package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/pkg/textutil"
)

// ProductUseCase casos de uso CRUD para productos. Stock se maneja vía
// movimientos; aquí solo se fija el stock inicial al crear.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, movements repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{products: products, movements: movements}
}

// Create crea un producto con ID propio. InitialStock negativo se trata como 0;
// si es positivo se sintetiza además un movimiento de entrada "Estoque Inicial"
// con su propio ID (los UUID hacen innecesario el truco de timestamp+1 para
// distinguir los dos registros co-creados).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	initialStock := in.InitialStock
	if initialStock < 0 {
		initialStock = 0
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Category:      in.Category,
		MinStock:      in.MinStock,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Description:   in.Description,
		Stock:         initialStock,
		CreatedAt:     now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}

	if initialStock > 0 {
		movement := &entity.Movement{
			ID:          uuid.New().String(),
			Type:        entity.MovementTypeEntry,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    initialStock,
			Notes:       entity.InitialStockNote,
			Date:        now,
		}
		if err := uc.movements.Prepend(movement); err != nil {
			return nil, err
		}
	}

	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables del producto preservando el stock
// actual, que solo cambia por movimientos. (nil, nil) si el ID no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos filtrados por término de búsqueda: substring sobre
// nombre o código, ignorando mayúsculas y acentos. Término vacío lista todo.
func (uc *ProductUseCase) List(term string) (*dto.ProductListResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		p := &list[i]
		if term != "" && !textutil.ContainsFold(p.Name, term) && !textutil.ContainsFold(p.Code, term) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina el producto y, en cascada, todos sus movimientos.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.products.Delete(id); err != nil {
		return err
	}
	return uc.movements.DeleteByProduct(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Category:      p.Category,
		MinStock:      p.MinStock,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Description:   p.Description,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
		Margin:        p.MarginPercent().Round(1),
		LowStock:      p.LowStock(),
	}
}
