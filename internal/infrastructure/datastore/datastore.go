// Package datastore mantiene las tres colecciones (productos, movimientos,
// entradas financieras) como única fuente de verdad de la sesión. Toda
// mutación pasa por aquí: se aplica en memoria y se guarda la colección
// afectada en el almacén clave→valor antes de soltar el lock.
//
// Cada colección se persiste como un array JSON independiente; no existe
// transacción entre colecciones (mismo contrato que el formato original).
package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/internal/infrastructure/storage"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

var _ repository.BackupRepository = (*Store)(nil)

// Store snapshot en memoria respaldado por el adaptador de persistencia.
// Los repositorios por entidad (NewProductRepository, etc.) comparten este
// estado y su lock.
type Store struct {
	mu  sync.RWMutex
	kv  storage.KV
	log *logger.Logger

	products   []entity.Product
	movements  []entity.Movement
	financials []entity.FinancialEntry
}

// Open carga las tres colecciones desde el almacén. Una colección cuyo texto
// no decodifica como array se resetea a vacía y se registra el incidente
// (recuperación local, nunca fatal). Un error del medio sí lo es: sin almacén
// no hay aplicación.
func Open(kv storage.KV, log *logger.Logger) (*Store, error) {
	s := &Store{kv: kv, log: log}
	ctx := context.Background()

	var err error
	if s.products, err = loadCollection[entity.Product](ctx, s, storage.KeyProducts); err != nil {
		return nil, err
	}
	if s.movements, err = loadCollection[entity.Movement](ctx, s, storage.KeyMovements); err != nil {
		return nil, err
	}
	if s.financials, err = loadCollection[entity.FinancialEntry](ctx, s, storage.KeyFinancials); err != nil {
		return nil, err
	}

	log.Info().
		Int("products", len(s.products)).
		Int("movements", len(s.movements)).
		Int("financials", len(s.financials)).
		Msg("estado cargado")
	return s, nil
}

// loadCollection lee una clave y decodifica su array JSON. Cualquier error de
// decodificación (sintaxis o tipos) resetea la colección COMPLETA a vacía:
// json.Unmarshal puebla parcialmente el destino antes de fallar, y un estado a
// medias se persistiría en el siguiente guardado.
func loadCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("datastore: cargar %s: %w", key, err)
	}
	if !found || raw == "" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// estado corrupto: resetear la colección y seguir (pérdida silenciosa asumida)
		s.log.Warn().Str("key", key).Err(err).Msg("colección corrupta, reseteada a vacía")
		return nil, nil
	}
	return out, nil
}

// save serializa y persiste una colección; llamar con el lock tomado.
func (s *Store) save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("datastore: serializar %s: %w", key, err)
	}
	if err := s.kv.Set(context.Background(), key, string(b)); err != nil {
		return fmt.Errorf("datastore: guardar %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveProducts() error   { return s.save(storage.KeyProducts, s.products) }
func (s *Store) saveMovements() error  { return s.save(storage.KeyMovements, s.movements) }
func (s *Store) saveFinancials() error { return s.save(storage.KeyFinancials, s.financials) }

// Snapshot copia consistente de las tres colecciones.
func (s *Store) Snapshot() (repository.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := repository.Snapshot{
		Products:   make([]entity.Product, len(s.products)),
		Movements:  make([]entity.Movement, len(s.movements)),
		Financials: make([]entity.FinancialEntry, len(s.financials)),
	}
	copy(snap.Products, s.products)
	copy(snap.Movements, s.movements)
	copy(snap.Financials, s.financials)
	return snap, nil
}

// ReplaceAll sustituye las tres colecciones en bloque (importación, sin merge)
// y las persiste en orden products, movements, financials.
func (s *Store) ReplaceAll(snap repository.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product(nil), snap.Products...)
	s.movements = append([]entity.Movement(nil), snap.Movements...)
	s.financials = append([]entity.FinancialEntry(nil), snap.Financials...)
	if err := s.saveProducts(); err != nil {
		return err
	}
	if err := s.saveMovements(); err != nil {
		return err
	}
	return s.saveFinancials()
}

// ClearAll deja las tres colecciones vacías y persiste el reset.
func (s *Store) ClearAll() error {
	return s.ReplaceAll(repository.Snapshot{})
}
