package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ KV = (*FileStore)(nil)

// FileStore almacén clave→valor sobre el sistema de archivos local: un archivo
// JSON por clave bajo el directorio de datos. Es el medio por defecto del modo
// local-first (equivalente al storage local del navegador).
//
// La escritura es write-then-rename para no dejar un archivo a medias si el
// proceso muere durante el guardado.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore crea el directorio de datos si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get lee el archivo de la clave; ausencia del archivo no es error.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return string(b), true, nil
}

// Set escribe el valor en un archivo temporal y lo renombra sobre el definitivo.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: temporal para %s: %w", key, err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: renombrar %s: %w", key, err)
	}
	return nil
}

// Close no mantiene recursos abiertos.
func (s *FileStore) Close() error { return nil }
