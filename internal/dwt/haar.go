package dwt

import "golang.org/x/exp/constraints"

// Number is the set of sample types the Haar kernels operate on.
type Number interface {
	constraints.Signed | constraints.Float
}

// HaarForward decomposes the size x size grid in into the packed coefficient
// layout in out, finest level first.
//
// Every level writes its LL band into scratch at an advancing offset, so each
// level owns its own sub-range of the arena. The last (2x2) level writes its
// LL straight into out[0]. Callers must validate size and buffers.
func HaarForward[T Number](size int, in, scratch, out []T, run Runner) {
	src := in
	offset := 0
	for dim := size; dim >= 2; dim /= 2 {
		half := dim / 2
		block := half * half

		var ll []T
		if dim == 2 {
			ll = out[:1:1]
		} else {
			ll = scratch[offset : offset+block : offset+block]
		}
		s := src
		run(half, func(y0, y1 int) {
			forwardRows(s, ll, out, dim, half, block, y0, y1)
		})

		src = ll
		offset += block
	}
}

func forwardRows[T Number](src, ll, coef []T, dim, half, block, y0, y1 int) {
	for y := y0; y < y1; y++ {
		i := 2 * y * dim
		o := y * half
		for range half {
			a, b := src[i], src[i+1]
			c, d := src[i+dim], src[i+dim+1]

			ll[o] = (a + b + c + d) / 4
			coef[o+block] = (a - b + c - d) / 4
			coef[o+2*block] = (a + b - c - d) / 4
			coef[o+3*block] = (a - b - c + d) / 4

			i += 2
			o++
		}
	}
}

// HaarInverse reconstructs the size x size grid from the packed coefficients
// in, coarsest level first. Levels alternate between scratch and out; when the
// finest level lands in scratch it is copied into out.
func HaarInverse[T Number](size int, in, scratch, out []T, run Runner) {
	src := in
	dst, dstIsOut := scratch, false
	for half := 1; half < size; half *= 2 {
		dim := half * 2
		block := half * half

		s, d := src, dst
		run(half, func(y0, y1 int) {
			inverseRows(s, in, d, dim, half, block, y0, y1)
		})

		src = dst
		if dstIsOut {
			dst, dstIsOut = scratch, false
		} else {
			dst, dstIsOut = out, true
		}
	}
	// dstIsOut means the last level was written to scratch.
	if dstIsOut {
		n := size * size
		copy(out[:n], src[:n])
	}
}

func inverseRows[T Number](src, coef, dst []T, dim, half, block, y0, y1 int) {
	for y := y0; y < y1; y++ {
		i := 2 * y * dim
		o := y * half
		for range half {
			ll := src[o]
			hl, lh, hh := coef[o+block], coef[o+2*block], coef[o+3*block]

			dst[i] = ll + hl + lh + hh
			dst[i+1] = ll - hl + lh - hh
			dst[i+dim] = ll + hl - lh - hh
			dst[i+dim+1] = ll - hl - lh + hh

			i += 2
			o++
		}
	}
}

// HaarDebug lays the packed coefficients out as a spatial mosaic: every
// level's HL, LH and HH blocks go to the top-right, bottom-left and
// bottom-right of the square its LL occupied. bias is added to every detail
// sample. It reads one sample at a time and is meant for inspection only.
func HaarDebug[T Number](size int, in, out []T, bias T) {
	p := 0
	out[0] = in[p]
	p++
	for half := 1; half < size; half *= 2 {
		for _, q := range [3][2]int{{0, half}, {half, 0}, {half, half}} {
			top, left := q[0], q[1]
			for y := range half {
				for x := range half {
					out[size*(top+y)+left+x] = in[p] + bias
					p++
				}
			}
		}
	}
}

// Scatter is HaarDebug driven by a precomputed layout map (see Layout).
func Scatter[T Number](indexMap []int, in, out []T, bias T) {
	out[indexMap[0]] = in[0]
	for p := 1; p < len(indexMap); p++ {
		out[indexMap[p]] = in[p] + bias
	}
}
