// Package storage implementa el adaptador de persistencia: un almacén opaco
// clave→texto con get/set síncronos. El resto del sistema solo conoce esta
// interfaz; el medio concreto (archivo local, Redis, PostgreSQL o memoria) se
// elige por configuración.
package storage

import "context"

// Claves fijas bajo las que se persisten las tres colecciones (arrays JSON).
const (
	KeyProducts   = "products"
	KeyMovements  = "movements"
	KeyFinancials = "financials"
)

// KV contrato de persistencia. Get devuelve found=false cuando la clave no
// existe; ausencia no es error.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
