package verification

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps codes in process memory. Entries are evicted by the cache
// once ttl has passed.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New(ttl, 2*ttl)}
}

func (s *MemoryStore) Put(ctx context.Context, code Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code.Consumed = false
	s.cache.Set(code.Identity, &code, cache.DefaultExpiration)

	return nil
}

func (s *MemoryStore) Take(ctx context.Context, identity string, now time.Time, ttl time.Duration) (Code, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, found := s.cache.Get(identity)
	if !found {
		return Code{}, false, nil
	}

	entry := cached.(*Code)

	if entry.Consumed || now.Sub(entry.ReceivedAt) > ttl {
		return Code{}, false, nil
	}

	entry.Consumed = true

	return *entry, true, nil
}
