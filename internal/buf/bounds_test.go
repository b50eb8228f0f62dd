package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(1, 2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok)
}

func TestMulOverflowSafe(t *testing.T) {
	v, ok := MulOverflowSafe(100, 16)
	require.True(t, ok)
	require.Equal(t, 1600, v)

	v, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	require.Equal(t, 0, v)

	_, ok = MulOverflowSafe(math.MaxInt/2, 3)
	require.False(t, ok)
}

func TestCheckListBounds(t *testing.T) {
	end, err := CheckListBounds(100, 80, 1, 16)
	require.NoError(t, err)
	require.Equal(t, 96, end)

	_, err = CheckListBounds(100, 80, 2, 16)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bounds")

	_, err = CheckListBounds(100, -1, 1, 16)
	require.Error(t, err)

	_, err = CheckListBounds(100, 0, math.MaxInt, 16)
	require.Error(t, err)
	require.Contains(t, err.Error(), "overflow")
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}

	s, ok := Slice(b, 0, 4)
	require.True(t, ok)
	require.Equal(t, b, s)

	s, ok = Slice(b, 1, 2)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, s)

	_, ok = Slice(b, 3, 2)
	require.False(t, ok)

	_, ok = Slice(b, -1, 1)
	require.False(t, ok)

	_, ok = Slice(b, 0, 5)
	require.False(t, ok)
}
