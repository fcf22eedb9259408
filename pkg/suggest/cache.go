package suggest

import (
	lru "github.com/hashicorp/golang-lru"
)

// resultCache is a bounded, thread-safe cache of previously computed
// suggestion sets keyed by the query string the suggester walks (the
// normalized input for AvroSuggester, the input as given for
// BanglaSuggester). It never changes a
// suggester's output, only whether a repeat query re-walks the indices.
// hashicorp/golang-lru already serializes access internally, so no
// additional locking is needed here.
type resultCache struct {
	lru *lru.Cache
}

func newResultCache(size int) *resultCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New(size)
	if err != nil {
		// size <= 0 is the only failure mode of lru.New and is already
		// excluded above, so this path is unreachable in practice.
		return nil
	}
	return &resultCache{lru: c}
}

func (c *resultCache) get(key string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]string), true
}

func (c *resultCache) add(key string, words []string) {
	if c == nil {
		return
	}
	c.lru.Add(key, words)
}

// Option configures a suggester at construction time.
type Option func(*settings)

type settings struct {
	cacheSize int
}

// WithCache enables a bounded LRU result cache of the given size in front
// of Suggest. Size must be positive; a non-positive size leaves caching
// disabled.
func WithCache(size int) Option {
	return func(s *settings) {
		s.cacheSize = size
	}
}

func applyOptions(opts []Option) *resultCache {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return newResultCache(s.cacheSize)
}
