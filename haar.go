// Package haar2d implements a multi-level 2D Haar wavelet transform over
// square, power-of-two grids stored as flat row-major slices.
//
// Forward packs the coefficients recursively: for an N x N grid the
// top-right, bottom-left and bottom-right (N/2)x(N/2) quadrants, each stored
// as a contiguous row-major block, hold the HL, LH and HH details of the
// finest level, and the top-left quadrant holds the same packing one level
// coarser, down to a single [LL, HL, LH, HH] quadruple at the start of the
// buffer. Inverse undoes it exactly, up to floating-point rounding.
//
// The package functions never allocate and keep no state; the caller passes
// every buffer, including a scratch buffer of N*N elements.
package haar2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/yyyoichi/haar2d/internal/dwt"
)

var (
	ErrInvalidSize   = errors.New("size must be a power of two and at least 2")
	ErrInvalidBuffer = errors.New("buffer is missing, too short or overlapping")
	ErrInvalidOption = errors.New("invalid option")
)

// Number is any signed integer or floating-point sample type.
//
// Integer samples are divided by 4 with truncation at every level, so
// round-trips are exact only when every intermediate sum is divisible by 4.
type Number = dwt.Number

// Forward computes the packed Haar coefficients of the size x size grid in
// and stores them in out. scratch holds the intermediate LL bands; its
// contents are unspecified afterwards.
//
// in, scratch and out must each hold at least size*size elements and must not
// overlap. Only the first size*size elements are touched.
func Forward[T Number](size int, in, scratch, out []T) error {
	if err := validate(size, buffer[T]{"in", in}, buffer[T]{"scratch", scratch}, buffer[T]{"out", out}); err != nil {
		return err
	}
	dwt.HaarForward(size, in, scratch, out, dwt.Sequential)
	return nil
}

// Inverse reconstructs the size x size grid from the packed coefficients in
// and stores it in out. The buffer requirements are those of Forward.
func Inverse[T Number](size int, in, scratch, out []T) error {
	if err := validate(size, buffer[T]{"in", in}, buffer[T]{"scratch", scratch}, buffer[T]{"out", out}); err != nil {
		return err
	}
	dwt.HaarInverse(size, in, scratch, out, dwt.Sequential)
	return nil
}

// DebugUnpack rearranges packed coefficients into a spatial mosaic for
// viewing: each level's HL, LH and HH blocks are placed at the top-right,
// bottom-left and bottom-right of the region the next finer level occupies,
// and the global mean lands at (0, 0).
//
// bias is added to every detail coefficient, typically to shift signed
// details into a displayable range. The mean is copied unchanged.
//
// DebugUnpack moves one sample at a time and is not meant for hot paths; see
// Transformer.DebugUnpack for a cached variant.
func DebugUnpack[T Number](size int, in, out []T, bias T) error {
	if err := validate(size, buffer[T]{"in", in}, buffer[T]{"out", out}); err != nil {
		return err
	}
	dwt.HaarDebug(size, in, out, bias)
	return nil
}

// Levels returns the number of decomposition levels of a size x size grid.
func Levels(size int) (int, error) {
	if err := validateSize(size); err != nil {
		return 0, err
	}
	n := 0
	for s := size; s > 1; s /= 2 {
		n++
	}
	return n, nil
}

func validateSize(size int) error {
	if size < 2 || size&(size-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > math.MaxInt/size {
		return fmt.Errorf("%w: %d x %d overflows", ErrInvalidSize, size, size)
	}
	return nil
}
