package dwt

import "math/bits"

// Layout maps positions of the packed coefficient buffer to positions of the
// spatial mosaic produced by HaarDebug.
type Layout struct {
	size int // grid dimension
	area int // size * size
}

func NewLayout(size int) Layout {
	return Layout{size: size, area: size * size}
}

// GetMap returns m where m[p] is the row-major mosaic index of packed index p.
func (l Layout) GetMap() []int {
	result := make([]int, l.area)
	for p := range result {
		result[p] = l.get(p)
	}
	return result
}

func (l Layout) get(p int) int {
	if p == 0 {
		// coarsest LL
		return 0
	}
	// half*half <= p < 4*half*half
	half := 1 << ((bits.Len(uint(p)) - 1) / 2)
	block := half * half
	band, r := p/block, p%block
	y, x := r/half, r%half
	switch band {
	case 1: // HL, top-right
		x += half
	case 2: // LH, bottom-left
		y += half
	default: // HH, bottom-right
		x += half
		y += half
	}
	return y*l.size + x
}
