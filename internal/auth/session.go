package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dom "sgc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

// SessionStore binds identities to opaque session tokens.
// Get reports false for unknown or expired tokens. Delete of an unknown token is not an error.
type SessionStore interface {
	Create(ctx context.Context, id dom.Identity) (string, error)
	Get(ctx context.Context, token string) (dom.Identity, bool, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore manages sessions in Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a new session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Create stores a new session for id and returns its token.
func (s *RedisStore) Create(ctx context.Context, id dom.Identity) (string, error) {
	token, err := newSessionID()
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (dom.Identity, bool, error) {
	b, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return dom.Identity{}, false, nil
	}
	if err != nil {
		return dom.Identity{}, false, fmt.Errorf("redis get session: %w", err)
	}
	var id dom.Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return dom.Identity{}, false, fmt.Errorf("decode session: %w", err)
	}
	return id, true, nil
}

// Delete removes a session by token.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
