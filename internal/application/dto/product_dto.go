package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Las claves JSON de esta API son camelCase: son las mismas claves con las que
// las colecciones se persisten y exportan, así un cliente trabaja con una sola
// forma de los datos.

// CreateProductRequest alta de producto. InitialStock < 0 se trata como 0;
// si es > 0 se sintetiza un movimiento de entrada "Estoque Inicial".
type CreateProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	MinStock      int             `json:"minStock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Description   string          `json:"description"`
	InitialStock  int             `json:"initialStock"`
}

// UpdateProductRequest edición de producto. El stock nunca se edita por esta
// vía: aunque el cliente envíe un campo stock, se ignora.
type UpdateProductRequest struct {
	Code          *string          `json:"code"`
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	MinStock      *int             `json:"minStock"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	Description   *string          `json:"description"`
}

// ProductResponse producto con sus derivados de presentación.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	MinStock      int             `json:"minStock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Description   string          `json:"description"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"createdAt"`
	Margin        decimal.Decimal `json:"margin"`   // porcentaje, signo = ganancia/pérdida
	LowStock      bool            `json:"lowStock"` // stock <= minStock
}

// ProductListResponse respuesta de listado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
