package dto

import (
	"time"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// RegisterMovementRequest registro de entrada o salida de stock.
type RegisterMovementRequest struct {
	Type      string `json:"type"` // entry | exit
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// MovementFilter filtros del listado de movimientos. Type "all" o vacío no
// filtra; From/To son límites inclusivos (To compara solo la porción de fecha).
type MovementFilter struct {
	Type string
	From time.Time
	To   entity.Date
}

// MovementResponse movimiento tal como se muestra en el historial.
type MovementResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	Date        time.Time `json:"date"`
}

// MovementListResponse respuesta de listado.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
