package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada: suma stock
	MovementTypeExit  = "exit"  // salida: resta stock
)

// InitialStockNote nota del movimiento sintético creado junto con un producto
// cuyo stock inicial es mayor que cero.
const InitialStockNote = "Estoque Inicial"

// Movement representa un evento que afecta stock. Es inmutable una vez creado;
// solo desaparece por borrado en cascada cuando se elimina su producto.
//
// ProductName es una copia del nombre al momento de crear el movimiento y se
// mantiene desactualizada a propósito: el historial debe seguir siendo legible
// aunque el producto se renombre o se elimine.
type Movement struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	Date        time.Time `json:"date"`
}
