package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlign4(t *testing.T) {
	require.Equal(t, uint64(0), Align4(0))
	require.Equal(t, uint64(4), Align4(1))
	require.Equal(t, uint64(4), Align4(4))
	require.Equal(t, uint64(8), Align4(5))
}

func TestAlign8(t *testing.T) {
	require.Equal(t, uint64(0), Align8(0))
	require.Equal(t, uint64(8), Align8(1))
	require.Equal(t, uint64(8), Align8(8))
	require.Equal(t, uint64(16), Align8(9))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint64(96), AlignUp(96, 4))
	require.Equal(t, uint64(104), AlignUp(97, 8))
	require.Equal(t, uint64(97), AlignUp(97, 1))
}
