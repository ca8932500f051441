package auth

import (
	"context"
	"time"

	dom "sgc/internal/domain"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on restart
// and are not shared between instances.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	return &MemoryStore{c: cache.New(ttl, 10*time.Minute)}
}

func (s *MemoryStore) Create(_ context.Context, id dom.Identity) (string, error) {
	token, err := newSessionID()
	if err != nil {
		return "", err
	}
	s.c.Set(sessionKeyPrefix+token, id, cache.DefaultExpiration)
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (dom.Identity, bool, error) {
	v, ok := s.c.Get(sessionKeyPrefix + token)
	if !ok {
		return dom.Identity{}, false, nil
	}
	id, ok := v.(dom.Identity)
	return id, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.c.Delete(sessionKeyPrefix + token)
	return nil
}
