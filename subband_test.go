package haar2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/haar2d"
)

func TestSubbands(t *testing.T) {
	const size = 8
	coef := make([]int, size*size)
	for i := range coef {
		coef[i] = i
	}
	levels, err := haar2d.Subbands(size, coef)
	require.NoError(t, err)
	require.Len(t, levels, 3)

	assert.Equal(t, 1, levels[0].Size)
	assert.Equal(t, []int{1}, levels[0].HL)
	assert.Equal(t, []int{2}, levels[0].LH)
	assert.Equal(t, []int{3}, levels[0].HH)

	assert.Equal(t, 2, levels[1].Size)
	assert.Equal(t, []int{4, 5, 6, 7}, levels[1].HL)
	assert.Equal(t, []int{12, 13, 14, 15}, levels[1].HH)

	assert.Equal(t, 4, levels[2].Size)
	assert.Len(t, levels[2].LH, 16)
	assert.Equal(t, 32, levels[2].LH[0])
	assert.Equal(t, 63, levels[2].HH[15])

	// views share the buffer
	levels[2].HH[0] = -1
	assert.Equal(t, -1, coef[48])
	// and cannot grow into the next band
	assert.Equal(t, 16, cap(levels[2].LH))
}

func TestSubbands_Energy(t *testing.T) {
	// 2x2 diagonal pattern repeated: only the finest HH band is non-zero
	const size = 4
	src := []float64{
		1, -1, 1, -1,
		-1, 1, -1, 1,
		1, -1, 1, -1,
		-1, 1, -1, 1,
	}
	coef := make([]float64, size*size)
	require.NoError(t, haar2d.Forward(size, src, make([]float64, size*size), coef))

	levels, err := haar2d.Subbands(size, coef)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 0, 0}, levels[0].Energy())
	assert.Equal(t, [3]float64{0, 0, 4}, levels[1].Energy())

	mean, err := haar2d.Mean(size, coef)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mean)
}

func TestSubbands_Invalid(t *testing.T) {
	_, err := haar2d.Subbands(5, make([]float32, 25))
	require.ErrorIs(t, err, haar2d.ErrInvalidSize)
	_, err = haar2d.Subbands(4, make([]float32, 15))
	require.ErrorIs(t, err, haar2d.ErrInvalidBuffer)
	_, err = haar2d.Mean[float32](4, nil)
	require.ErrorIs(t, err, haar2d.ErrInvalidBuffer)
}
