// Package redis implements the slot store on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces slot keys inside a shared Redis database.
const DefaultPrefix = "storefront:slot:"

// Store implements domain.SlotStore on a Redis client.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ domain.SlotStore = (*Store)(nil)

// Options configures Open.
type Options struct {
	Addr   string
	DB     int
	Prefix string
	// TTL expires slots that are not rewritten in time. Zero keeps them forever.
	TTL time.Duration
}

// Open connects to Redis and pings it.
func Open(opts Options) (*Store, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address required")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(rdb, opts.Prefix, opts.TTL), nil
}

// New wraps an existing client.
func New(rdb goredis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Key returns the Redis key used for a slot key.
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Put stores value under key, refreshing its TTL.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.Key(key), value, s.ttl).Err()
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.Key(key)).Err()
}
