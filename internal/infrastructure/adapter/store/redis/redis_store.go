// Package redis persists each collection as a single redis string value,
// keyed by collection name. SET is atomic, which satisfies the document
// store's whole-document replacement contract without extra coordination.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

const keyPrefix = "casino:"

// Store implements persistence.DocumentStore on a redis instance.
type Store struct {
	client *goredis.Client
}

// NewStore creates a redis-backed document store and verifies connectivity.
func NewStore(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: connecting to redis at %s: %v", errs.ErrStore, addr, err)
	}
	return &Store{client: client}, nil
}

func key(collection persistence.Collection) string {
	return keyPrefix + string(collection)
}

// Load returns the document stored under the collection key.
func (s *Store) Load(ctx context.Context, collection persistence.Collection) ([]byte, error) {
	data, err := s.client.Get(ctx, key(collection)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, fmt.Errorf("%w: collection %s", errs.ErrNotFound, collection)
		}
		return nil, fmt.Errorf("%w: loading %s from redis: %v", errs.ErrStore, collection, err)
	}
	return data, nil
}

// Save replaces the document under the collection key.
func (s *Store) Save(ctx context.Context, collection persistence.Collection, data []byte) error {
	if err := s.client.Set(ctx, key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: saving %s to redis: %v", errs.ErrStore, collection, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
