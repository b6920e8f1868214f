package datastore

import (
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el Store.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create agrega el producto y persiste la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, *product)
	return r.s.saveProducts()
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			p := r.s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto con el mismo ID y persiste.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == product.ID {
			r.s.products[i] = *product
			return r.s.saveProducts()
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias de todos los productos en orden natural de colección.
func (r *ProductRepo) List() ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

// Delete elimina solo el producto; la cascada de movimientos la orquesta el caso de uso.
func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return r.s.saveProducts()
		}
	}
	return domain.ErrNotFound
}
