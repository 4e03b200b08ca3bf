package cache

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes values by key for its whole lifetime. Concurrent callers asking
// for the same key share one call to the create function; failed creations are
// not stored.
type Cache[V any] struct {
	data      sync.Map
	group     singleflight.Group
	itemCount int32
}

func NewCache[V any]() *Cache[V] {
	return &Cache[V]{}
}

func (c *Cache[V]) GetOrCreate(key string, createFn func() (V, error)) (V, error) {
	if value, ok := c.data.Load(key); ok {
		return value.(V), nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		if value, ok := c.data.Load(key); ok {
			return value, nil
		}

		v, err := createFn()
		if err != nil {
			return nil, err
		}

		if _, loaded := c.data.LoadOrStore(key, v); !loaded {
			atomic.AddInt32(&c.itemCount, 1)
		}
		return v, nil
	})

	if err != nil {
		var zero V
		return zero, err
	}

	return value.(V), nil
}

func (c *Cache[V]) Len() int {
	return int(atomic.LoadInt32(&c.itemCount))
}
