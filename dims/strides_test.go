package dims

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContiguousStrides(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		itemSize int64
		want     Strides
	}{
		{"rank3", MustNew(2, 3, 4), 4, MustNew(48, 16, 4)},
		{"rank1", MustNew(7), 4, MustNew(4)},
		{"scalar", MustNew(), 8, MustNew()},
		{"float64", MustNew(2, 3, 4), 8, MustNew(96, 32, 8)},
		{"unitExtents", MustNew(1, 1, 1), 4, MustNew(4, 4, 4)},
		{"zeroExtent", MustNew(3, 0, 5), 4, MustNew(0, 20, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContiguousStrides(tt.shape, tt.itemSize)
			require.NoError(t, err)
			assert.Equal(t, tt.shape.Ndim(), got.Ndim())
			assert.True(t, got.Equal(tt.want), "strides = %v, want %v", got, tt.want)
		})
	}
}

func TestContiguousStridesOf(t *testing.T) {
	shape := MustNew(2, 3, 4)

	got, err := ContiguousStridesOf(shape, Int32)
	require.NoError(t, err)
	assert.True(t, got.Equal(MustNew(48, 16, 4)))

	// Must agree with the explicit item-size form.
	explicit, err := ContiguousStrides(shape, int64(Int32.Size()))
	require.NoError(t, err)
	require.NoError(t, CheckEqual(got, explicit))
}

func TestContiguousStridesOverflow(t *testing.T) {
	// Two near-max extents push the stride chain past int64.
	shape := MustNew(math.MaxInt64/2, math.MaxInt64/2, 2)

	_, err := ContiguousStrides(shape, 8)
	require.Error(t, err)
	var dimErr *DimensionError
	assert.ErrorAs(t, err, &dimErr)
}

func TestTotalSize(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int64
	}{
		{MustNew(), 1},
		{MustNew(5), 5},
		{MustNew(3, 4), 12},
		{MustNew(2, 3, 4), 24},
		{MustNew(3, 0, 5), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.TotalSize(), "TotalSize of %v", tt.shape)
	}
}
