package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

func TestIndices_DFDRequired(t *testing.T) {
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm}.build()
	buf.PutU32LE(data, 0x30, 0) // dfdByteOffset = 0
	buf.PutU32LE(data, 0x34, 0) // dfdByteLength = 0

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	requireHasID(t, reports, 3020)
	requireHasID(t, reports, 3022)
}

func TestIndices_DFDAlignment(t *testing.T) {
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm}.build()
	buf.PutU32LE(data, 0x30, 97)

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	requireHasID(t, reports, 3021)
	requireHasID(t, reports, 3032) // continuity also broken
}

func TestIndices_DFDOutOfBounds(t *testing.T) {
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm}.build()
	buf.PutU32LE(data, 0x34, uint32(len(data))) // length runs past the file

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 3023)
	require.Contains(t, r.Details, "but the file is only")
}

func TestIndices_KVDOffsetWithoutLength(t *testing.T) {
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm}.build()
	buf.PutU32LE(data, 0x38, 188) // kvdByteOffset without length

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	requireHasID(t, reports, 3024)
}

func TestIndices_KVDLengthWithoutOffset(t *testing.T) {
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm}.build()
	buf.PutU32LE(data, 0x3C, 16) // kvdByteLength without offset

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 3035)
	require.Contains(t, r.Details, "keyValueData.byteLength is 16")
	// The header bytes at offset 0 must not be scanned as KVD entries.
	for _, rep := range reports {
		require.NotEqual(t, uint16(7005), rep.ID, "KVD scan ran on a zero-offset region")
	}
}

func TestIndices_SGDLengthWithoutOffset(t *testing.T) {
	data := fileSpec{
		format: vkformat.FormatUndefined,
		scheme: vkformat.SchemeBasisLZ,
		sgd:    make([]byte, 16),
	}.build()
	buf.PutU64LE(data, 0x40, 0) // sgdByteLength without offset

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 3036)
	require.Contains(t, r.Details, "supercompressionGlobalData.byteLength is 16")
}

func TestIndices_SGDForbiddenWithoutScheme(t *testing.T) {
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm}.build()
	buf.PutU64LE(data, 0x48, 8) // sgdByteLength without a global-data scheme

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 3030)
	require.Contains(t, r.Details, "KTX_SS_NONE")
}

func TestIndices_SGDAlignment(t *testing.T) {
	data := fileSpec{
		format: vkformat.FormatUndefined,
		scheme: vkformat.SchemeBasisLZ,
		sgd:    make([]byte, 16),
	}.build()
	// Knock the SGD offset off its 8-byte alignment.
	sgdOff := buf.U64LE(data[0x40:])
	buf.PutU64LE(data, 0x40, sgdOff+4)

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	requireHasID(t, reports, 3028)
	requireHasID(t, reports, 3034) // continuity also broken
}

func TestIndices_ContinuityKVD(t *testing.T) {
	kvd := kvBlock(kvEntry("KTXwriter", []byte("tests\x00")))
	data := fileSpec{format: vkformat.FormatR8G8B8A8Unorm, kvd: kvd}.build()
	kvdOff := buf.U32LE(data[0x38:])
	buf.PutU32LE(data, 0x38, kvdOff+4)

	reports, code := run(t, data, false)
	require.Equal(t, 3, code)
	r := requireHasID(t, reports, 3033)
	require.Contains(t, r.Details, "KVD region must immediately follow")
}

func TestIndices_BasisLZRoundTrip(t *testing.T) {
	// A structurally clean BasisLZ file: UNDEFINED format, SGD present.
	data := fileSpec{
		format: vkformat.FormatUndefined,
		scheme: vkformat.SchemeBasisLZ,
		sgd:    make([]byte, 16),
	}.build()

	reports, code := run(t, data, false)
	require.Equal(t, 0, code, "unexpected reports: %v", reportIDs(reports))
}
