package haar2d

import (
	"fmt"
	"unsafe"
)

type buffer[T Number] struct {
	name string
	data []T
}

// validate checks size and that every buffer holds size*size elements with
// no two of them sharing memory in that range.
func validate[T Number](size int, bufs ...buffer[T]) error {
	if err := validateSize(size); err != nil {
		return err
	}
	n := size * size
	for _, b := range bufs {
		if b.data == nil {
			return fmt.Errorf("%w: %s is nil", ErrInvalidBuffer, b.name)
		}
		if len(b.data) < n {
			return fmt.Errorf("%w: %s has %d elements, want %d", ErrInvalidBuffer, b.name, len(b.data), n)
		}
	}
	for i := range bufs {
		for j := i + 1; j < len(bufs); j++ {
			if overlaps(bufs[i].data[:n], bufs[j].data[:n]) {
				return fmt.Errorf("%w: %s overlaps %s", ErrInvalidBuffer, bufs[i].name, bufs[j].name)
			}
		}
	}
	return nil
}

func overlaps[T Number](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}
