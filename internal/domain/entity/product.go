package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Stock se mantiene únicamente
// vía la aritmética de movimientos (entradas suman, salidas restan); las
// ediciones de producto nunca lo tocan.
//
// Los tags JSON conservan las claves camelCase del formato persistido
// histórico, de modo que los respaldos antiguos se importan sin conversión.
type Product struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"` // código de búsqueda; no se exige único
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	MinStock      int             `json:"minStock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Description   string          `json:"description"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"createdAt"`
}

var hundred = decimal.NewFromInt(100)

// MarginPercent margen de ganancia: (venta − compra) / compra × 100.
// Devuelve 0 cuando el precio de compra es ≤ 0 (no hay base de cálculo).
func (p Product) MarginPercent() decimal.Decimal {
	if p.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return p.SalePrice.Sub(p.PurchasePrice).Div(p.PurchasePrice).Mul(hundred)
}

// LowStock indica si el stock actual está en o por debajo del mínimo configurado.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
