package graphql

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

const (
	cacheMaxEntries = 1 << 10
	// ristretto recommends ten counters per entry
	cacheCounters = cacheMaxEntries * 10
)

// Cache serves repeated operations from memory before asking the wrapped client.
// Only successful responses are stored, and each of them expires after ttl.
type Cache struct {
	client Client
	ttl    time.Duration
	store  *ristretto.Cache[uint64, any]
}

// NewCache wraps client with a cache-first policy
func NewCache(client Client, ttl time.Duration) (*Cache, error) {
	store, err := ristretto.NewCache(&ristretto.Config[uint64, any]{
		NumCounters: cacheCounters,
		MaxCost:     cacheMaxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating response cache")
	}
	return &Cache{client: client, ttl: ttl, store: store}, nil
}

// Execute implements Client
func (c *Cache) Execute(ctx context.Context, op Operation, variables map[string]any) (any, error) {
	key, err := cacheKey(op, variables)
	if err != nil {
		return nil, err
	}
	if data, found := c.store.Get(key); found {
		return data, nil
	}

	data, err := c.client.Execute(ctx, op, variables)
	if err != nil {
		return nil, err
	}
	c.store.SetWithTTL(key, data, 1, c.ttl)
	c.store.Wait()
	return data, nil
}

// Close releases the resources held by the cache
func (c *Cache) Close() {
	c.store.Close()
}

func cacheKey(op Operation, variables map[string]any) (uint64, error) {
	vars, err := json.Marshal(variables)
	if err != nil {
		return 0, errors.Wrapf(err, "encoding %s variables", op.Name)
	}
	key := make([]byte, 0, len(op.Name)+len(op.Query)+len(vars)+2)
	key = append(key, op.Name...)
	key = append(key, 0)
	key = append(key, op.Query...)
	key = append(key, 0)
	key = append(key, vars...)
	return farm.Fingerprint64(key), nil
}
