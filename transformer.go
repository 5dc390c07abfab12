package haar2d

import (
	"github.com/yyyoichi/haar2d/internal/dwt"
)

// Transformer runs the transform for one grid size, owning its scratch
// buffer and optionally spreading each level over several goroutines.
//
// A Transformer is not safe for concurrent use; create one per goroutine.
type Transformer[T Number] struct {
	size    int
	scratch []T
	run     dwt.Runner
	cache   *LayoutCache
}

// New allocates a Transformer for size x size grids.
func New[T Number](size int, opts ...Option) (*Transformer[T], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	var c config
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return &Transformer[T]{
		size:    size,
		scratch: make([]T, size*size),
		run:     dwt.Parallel(c.workers),
		cache:   c.cache,
	}, nil
}

// Size returns the grid dimension.
func (t *Transformer[T]) Size() int { return t.size }

// Forward is the package-level Forward using the Transformer's scratch.
func (t *Transformer[T]) Forward(in, out []T) error {
	if err := validate(t.size, buffer[T]{"in", in}, buffer[T]{"scratch", t.scratch}, buffer[T]{"out", out}); err != nil {
		return err
	}
	dwt.HaarForward(t.size, in, t.scratch, out, t.run)
	return nil
}

// Inverse is the package-level Inverse using the Transformer's scratch.
func (t *Transformer[T]) Inverse(in, out []T) error {
	if err := validate(t.size, buffer[T]{"in", in}, buffer[T]{"scratch", t.scratch}, buffer[T]{"out", out}); err != nil {
		return err
	}
	dwt.HaarInverse(t.size, in, t.scratch, out, t.run)
	return nil
}

// DebugUnpack produces the same mosaic as the package-level DebugUnpack
// through a cached index map.
func (t *Transformer[T]) DebugUnpack(in, out []T, bias T) error {
	if err := validate(t.size, buffer[T]{"in", in}, buffer[T]{"out", out}); err != nil {
		return err
	}
	dwt.Scatter(t.cache.c.Map(t.size), in, out, bias)
	return nil
}
