package dwt

import "sync"

// Cache shares layout maps between callers. Returned maps must not be
// modified.
type Cache struct {
	data sync.Map
}

func NewCache() *Cache {
	var c Cache
	return &c
}

func (c *Cache) Map(size int) []int {
	if v, ok := c.data.Load(size); ok {
		return v.([]int)
	}
	m := NewLayout(size).GetMap()
	actual, loaded := c.data.LoadOrStore(size, m)
	if loaded {
		return actual.([]int)
	}
	return m
}
