package nationalid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/integrations/reniec"
)

type fakeStore struct {
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func (f *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestCache_RoundTrip(t *testing.T) {
	store := &fakeStore{data: map[string]string{}}
	c := New(store, time.Hour)
	ctx := context.Background()

	_, err := c.Get(ctx, "12345678")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, &reniec.Person{NationalID: "12345678", Name: "JUAN PEREZ"}))
	assert.Equal(t, time.Hour, store.ttl)
	assert.Contains(t, store.data, "fieldservice:reniec:12345678")

	person, err := c.Get(ctx, "12345678")
	require.NoError(t, err)
	assert.Equal(t, "JUAN PEREZ", person.Name)
}

func TestCache_RedisError(t *testing.T) {
	c := New(&fakeStore{data: map[string]string{}, getErr: errors.New("connection refused")}, time.Hour)

	_, err := c.Get(context.Background(), "12345678")
	assert.ErrorIs(t, err, ErrCache)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
