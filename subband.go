package haar2d

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Level is one decomposition level of a packed coefficient buffer. The bands
// are views into that buffer, each a Size x Size row-major block.
type Level[T Number] struct {
	// Size is the half-dimension of the level: 1 for the coarsest level,
	// N/2 for the finest.
	Size int

	HL, LH, HH []T
}

// Subbands returns views of the detail bands of every level in coeffs,
// coarsest first.
func Subbands[T Number](size int, coeffs []T) ([]Level[T], error) {
	if err := validate(size, buffer[T]{"coeffs", coeffs}); err != nil {
		return nil, err
	}
	var levels []Level[T]
	for half := 1; half < size; half *= 2 {
		b := half * half
		levels = append(levels, Level[T]{
			Size: half,
			HL:   coeffs[b : 2*b : 2*b],
			LH:   coeffs[2*b : 3*b : 3*b],
			HH:   coeffs[3*b : 4*b : 4*b],
		})
	}
	return levels, nil
}

// Mean returns the coarsest LL coefficient, the mean of the source grid.
func Mean[T Number](size int, coeffs []T) (T, error) {
	if err := validate(size, buffer[T]{"coeffs", coeffs}); err != nil {
		var zero T
		return zero, fmt.Errorf("mean: %w", err)
	}
	return coeffs[0], nil
}

// Energy returns the sums of squares of the HL, LH and HH bands.
func (l Level[T]) Energy() [3]float64 {
	return [3]float64{energy(l.HL), energy(l.LH), energy(l.HH)}
}

func energy[T Number](band []T) float64 {
	v := make([]float64, len(band))
	for i, s := range band {
		v[i] = float64(s)
	}
	return floats.Dot(v, v)
}
