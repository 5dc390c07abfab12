package haar2d

import (
	"fmt"

	"github.com/yyyoichi/haar2d/internal/dwt"
)

type Option func(*config) error

type config struct {
	workers int
	cache   *LayoutCache
}

// WithWorkers splits the rows of every level across n goroutines. Levels
// still run strictly one after another. n of 0 or 1 runs sequentially.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidOption, n)
		}
		c.workers = n
		return nil
	}
}

// WithLayoutCache shares the mosaic layout maps used by
// Transformer.DebugUnpack between transformers.
func WithLayoutCache(cache *LayoutCache) Option {
	return func(c *config) error {
		if cache == nil {
			return fmt.Errorf("%w: nil layout cache", ErrInvalidOption)
		}
		c.cache = cache
		return nil
	}
}

func (c *config) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.workers == 0 {
		c.workers = 1
	}
	if c.cache == nil {
		c.cache = defaultLayoutCache
	}
	return nil
}

// LayoutCache holds one mosaic layout map per grid size. It is safe for
// concurrent use.
type LayoutCache struct {
	c *dwt.Cache
}

func NewLayoutCache() *LayoutCache {
	return &LayoutCache{c: dwt.NewCache()}
}

var defaultLayoutCache = NewLayoutCache()
