// Package nationalid кэширует ответы RENIEC в Redis
package nationalid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FieldService/internal/integrations/reniec"
)

const keyPrefix = "fieldservice:reniec:"

var (
	// ErrCacheMiss записи нет в кэше
	ErrCacheMiss = errors.New("nationalid.cache: miss")

	// ErrCache ошибка Redis или десериализации
	ErrCache = errors.New("nationalid.cache: redis error")
)

// Store подмножество команд Redis, используемых кэшем
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cache кэш результатов поиска по DNI
type Cache struct {
	store Store
	ttl   time.Duration
}

// New создаёт кэш с временем жизни записей ttl
func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

// Get возвращает закэшированные данные по DNI или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, nationalID string) (*reniec.Person, error) {
	raw, err := c.store.Get(ctx, keyPrefix+nationalID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	var person reniec.Person
	if err := json.Unmarshal(raw, &person); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCache, err)
	}
	return &person, nil
}

// Set сохраняет данные по DNI
func (c *Cache) Set(ctx context.Context, person *reniec.Person) error {
	raw, err := json.Marshal(person)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCache, err)
	}
	if err := c.store.Set(ctx, keyPrefix+person.NationalID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}
	return nil
}
