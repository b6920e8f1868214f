package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// La lista es semánticamente una pila: los movimientos se insertan al frente y
// List los devuelve en su orden actual (más reciente primero). No hay borrado
// individual; solo la cascada por producto.
//
// Apply registra el movimiento y su ajuste de stock como una sola operación
// atómica: la verificación de stock disponible, la mutación del producto y la
// inserción del movimiento ocurren bajo el mismo lock, de modo que dos
// peticiones concurrentes nunca operan sobre un stock desactualizado.
// Devuelve ErrNotFound si el producto no existe y ErrInsufficientStock si una
// salida pide más de lo disponible; en ambos casos no queda rastro. Completa
// movement.ProductName con el nombre vigente del producto.
//
// Prepend inserta el movimiento al frente SIN tocar stock; es para movimientos
// cuyo efecto ya está aplicado (el registro sintético de stock inicial).
type MovementRepository interface {
	Apply(movement *entity.Movement) error
	Prepend(movement *entity.Movement) error
	List() ([]entity.Movement, error)
	DeleteByProduct(productID string) error
}
