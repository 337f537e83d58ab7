package rankcode

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache keeps recently trained models keyed by a digest of their training
// text. It is safe for concurrent use.
type Cache struct {
	opts   []Option
	models *lru.Cache[uint64, *Model]
}

// NewCache creates a cache holding at most size models, each trained with opts.
func NewCache(size int, opts ...Option) (*Cache, error) {
	models, err := lru.New[uint64, *Model](size)
	if err != nil {
		return nil, err
	}
	return &Cache{opts: opts, models: models}, nil
}

// Model returns the model trained on text, training and storing it on a miss.
//
// Entries are keyed by xxhash digest only. A collision returns a model trained
// on another text; Encode then fails with ErrUnmappedSymbol or produces bytes
// that still decode through the same model.
func (c *Cache) Model(text string) (*Model, error) {
	key := xxhash.Sum64String(text)
	if m, ok := c.models.Get(key); ok {
		return m, nil
	}
	m, err := TrainModel(text, c.opts...)
	if err != nil {
		return nil, err
	}
	c.models.Add(key, m)
	return m, nil
}

// Len returns the number of cached models.
func (c *Cache) Len() int {
	return c.models.Len()
}

// Purge drops every cached model.
func (c *Cache) Purge() {
	c.models.Purge()
}
