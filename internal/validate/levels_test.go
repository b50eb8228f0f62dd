package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

// undefinedFile builds a file on the "minimal" level validation path:
// vkFormat UNDEFINED with no supercompression, so level offsets are
// pinned down by the layout alone.
func undefinedFile() []byte {
	return fileSpec{format: vkformat.FormatUndefined, dfdLen: 44, imageLen: 8}.build()
}

func TestLevels_CleanUndefined(t *testing.T) {
	reports, code := run(t, undefinedFile(), false)
	require.Equal(t, 0, code)
	require.Len(t, reports, 1) // only the KTXwriter nudge
	require.Equal(t, uint16(7125), reports[0].ID)
}

func TestLevels_ZeroOffsetOrLength(t *testing.T) {
	data := undefinedFile()
	buf.PutU64LE(data, HeaderSize+8, 0) // byteLength = 0

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 4001)
	require.Contains(t, r.Details, "Level 0")
}

func TestLevels_IncorrectByteOffset(t *testing.T) {
	data := undefinedFile()
	off := buf.U64LE(data[HeaderSize:])
	buf.PutU64LE(data, HeaderSize, off+4)

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 4002)
	require.Contains(t, r.Details, "Level 0")
}

func TestLevels_UnalignedOffset(t *testing.T) {
	data := undefinedFile()
	off := buf.U64LE(data[HeaderSize:])
	buf.PutU64LE(data, HeaderSize, off+2)

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	requireHasID(t, reports, 4002) // expected offset no longer matches
	requireHasID(t, reports, 4003) // and the alignment itself is broken
}

func TestLevels_IncorrectDataSize(t *testing.T) {
	data := append(undefinedFile(), 0, 0, 0, 0) // trailing slack

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 2003)
	require.Contains(t, r.Details, "level index adds up")
}

func TestLevels_SupercompressedLevelsPacked(t *testing.T) {
	// Two levels under Zstd: offsets are exact but there is no
	// alignment or ordering requirement between compressed levels.
	data := fileSpec{
		format:     vkformat.FormatUndefined,
		scheme:     vkformat.SchemeZstd,
		width:      2,
		height:     2,
		levelCount: 2,
		dfdLen:     44,
		imageLen:   8,
	}.build()
	// The builder only fills level 0; point level 1 right behind the
	// header regions and level 0 after it.
	dataOff := buf.U64LE(data[HeaderSize:])
	buf.PutU64LE(data, HeaderSize+LevelIndexEntrySize, dataOff) // level 1
	buf.PutU64LE(data, HeaderSize+LevelIndexEntrySize+8, 3)
	buf.PutU64LE(data, HeaderSize, dataOff+3) // level 0
	buf.PutU64LE(data, HeaderSize+8, 5)

	reports, code := run(t, data, false)
	require.Equal(t, 0, code, "unexpected reports: %v", reportIDs(reports))
}
