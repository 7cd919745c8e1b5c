package dnscheck

import (
	"context"
	"time"

	"github.com/dmitrymomot/valkit/pkg/cache"
)

// Store persists lookup outcomes for Cached.
// Get reports hit=false for keys it does not hold.
type Store interface {
	Get(ctx context.Context, key string) (found, hit bool, err error)
	Set(ctx context.Context, key string, found bool, ttl time.Duration) error
}

// MemoryStore keeps outcomes in a process-local LRU.
type MemoryStore struct {
	lru *cache.LRUCache[string, bool]
}

// NewMemoryStore holds at most size entries. Non-positive sizes use 1024.
func NewMemoryStore(size int, opts ...cache.Option) *MemoryStore {
	if size <= 0 {
		size = 1024
	}
	return &MemoryStore{lru: cache.NewLRUCache[string, bool](size, opts...)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (bool, bool, error) {
	found, hit := s.lru.Get(key)
	return found, hit, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, found bool, ttl time.Duration) error {
	s.lru.PutWithTTL(key, found, ttl)
	return nil
}

// Len reports how many outcomes are stored.
func (s *MemoryStore) Len() int { return s.lru.Len() }
