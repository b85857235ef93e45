// Package session stores bearer-token sessions in Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

const defaultTTL = 30 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) Store {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return Store{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s Store) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	return token, nil
}

func (s Store) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("fetching session: %w", err)
	}

	return userID, nil
}

func (s Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	return nil
}

func key(token string) string {
	return "session:" + token
}
