// README: Report cache backed by Redis string keys with a TTL.
package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	runKeyPrefix = "dispatchsim:run:%s"
	// DefaultTTL bounds how long a finished report can be fetched again.
	DefaultTTL = 24 * time.Hour
)

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{redis: redis, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, run *Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, runKey(run.ID), b, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	val, err := s.redis.Get(ctx, runKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var run Run
	if err := json.Unmarshal(val, &run); err != nil {
		return nil, fmt.Errorf("decoding run %s: %w", id, err)
	}
	return &run, nil
}

func runKey(id string) string {
	return fmt.Sprintf(runKeyPrefix, id)
}
