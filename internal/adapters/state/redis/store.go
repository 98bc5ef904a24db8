package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long an abandoned session survives in Redis.
const DefaultTTL = 30 * 24 * time.Hour

type Store struct {
	client goredis.Cmdable
	ttl    time.Duration
}

var _ ports.BatchStateStore = (*Store)(nil)

func NewStore(client goredis.Cmdable, ttl time.Duration) *Store {
	if ttl < 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Open parses a redis:// URL and checks the connection before returning.
func Open(ctx context.Context, redisURL string, ttl time.Duration) (*Store, *goredis.Client, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, nil, errors.New("redis url is required")
	}

	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewStore(client, ttl), client, nil
}

// Put refreshes the TTL of the written key. A zero TTL keeps keys forever.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// PutAll sends every SET inside one MULTI/EXEC transaction.
func (s *Store) PutAll(ctx context.Context, entries []ports.StateEntry) error {
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, entry := range entries {
			pipe.Set(ctx, entry.Key, entry.Value, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi set: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", fmt.Errorf("state %q: %w", key, domain.ErrStateKeyNotFound)
		}
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}
