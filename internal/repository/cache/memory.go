package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain/repository"
)

type memoryEntry struct {
	value    []byte
	deadline time.Time
}

// memoryRepository is the in-process fallback used when Redis is not
// configured. Entries carry their own deadline; the LRU bounds memory.
type memoryRepository struct {
	entries *lru.Cache[string, memoryEntry]
	logger  *zap.Logger
}

// NewMemoryRepository creates an LRU-backed CacheRepository with the given
// capacity.
func NewMemoryRepository(capacity int, logger *zap.Logger) (repository.CacheRepository, error) {
	entries, err := lru.New[string, memoryEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &memoryRepository{
		entries: entries,
		logger:  logger,
	}, nil
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := r.entries.Get(key)
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	if !entry.deadline.IsZero() && time.Now().After(entry.deadline) {
		r.entries.Remove(key)
		return nil, repository.ErrCacheMiss
	}
	return entry.value, nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl != 0 {
		entry.deadline = time.Now().Add(ttl)
	}
	r.entries.Add(key, entry)
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) error {
	r.entries.Remove(key)
	return nil
}

func (r *memoryRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.Get(ctx, key)
	if err == repository.ErrCacheMiss {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
