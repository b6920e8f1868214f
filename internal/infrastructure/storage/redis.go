package storage

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

var _ KV = (*RedisStore)(nil)

// RedisStore almacén clave→valor sobre Redis. Los valores se guardan sin TTL:
// son el estado de la aplicación, no un cache.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore conecta y verifica con un Ping.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage: ping redis %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient envuelve un cliente ya construido (tests con miniredis).
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get devuelve el valor de la clave; redis.Nil se traduce a ausencia.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return val, true, nil
}

// Set guarda el valor sin expiración.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error { return s.client.Close() }
