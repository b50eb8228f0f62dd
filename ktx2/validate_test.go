package ktx2

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/pkg/types"
)

// minimalKTX2 returns the smallest well-formed file the validator fully
// accepts: 2D RGBA8 UNORM, 1x1, one level, no KVD, no SGD.
func minimalKTX2() []byte {
	const (
		headerSize = 80
		dfdOff     = 96
		dfdLen     = 92
		dataOff    = 188
		imageLen   = 4
	)
	b := make([]byte, dataOff+imageLen)
	copy(b, []byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A})
	buf.PutU32LE(b, 0x0C, 37) // VK_FORMAT_R8G8B8A8_UNORM
	buf.PutU32LE(b, 0x10, 1)  // typeSize
	buf.PutU32LE(b, 0x14, 1)  // pixelWidth
	buf.PutU32LE(b, 0x18, 1)  // pixelHeight
	buf.PutU32LE(b, 0x24, 1)  // faceCount
	buf.PutU32LE(b, 0x28, 1)  // levelCount
	buf.PutU32LE(b, 0x30, dfdOff)
	buf.PutU32LE(b, 0x34, dfdLen)
	buf.PutU64LE(b, headerSize, dataOff)
	buf.PutU64LE(b, headerSize+8, imageLen)
	buf.PutU32LE(b, dfdOff, dfdLen)
	return b
}

func collect(reports *[]types.ValidationReport) Options {
	return Options{Report: func(r types.ValidationReport) { *reports = append(*reports, r) }}
}

func TestValidateBytes_Minimal(t *testing.T) {
	var reports []types.ValidationReport
	code := ValidateBytes(minimalKTX2(), collect(&reports))

	require.Equal(t, ExitSuccess, code)
	require.Len(t, reports, 1)
	require.Equal(t, uint16(7125), reports[0].ID)
	require.Equal(t, types.SevWarning, reports[0].Type)
}

func TestValidateBytes_NotKTX2(t *testing.T) {
	data := minimalKTX2()
	data[0] = 0x00

	var reports []types.ValidationReport
	code := ValidateBytes(data, collect(&reports))

	require.Equal(t, ExitValidationFailure, code)
	require.Len(t, reports, 1)
	require.Equal(t, uint16(2001), reports[0].ID)
	require.Equal(t, types.SevFatal, reports[0].Type)
}

func TestValidateBytes_ShortBuffer(t *testing.T) {
	var reports []types.ValidationReport
	code := ValidateBytes(make([]byte, 10), collect(&reports))

	require.Equal(t, ExitValidationFailure, code)
	require.Len(t, reports, 1)
	require.Equal(t, uint16(1003), reports[0].ID)
}

func TestValidateBytes_WarningsAsErrors(t *testing.T) {
	var plain, strict []types.ValidationReport
	ValidateBytes(minimalKTX2(), collect(&plain))

	opts := collect(&strict)
	opts.WarningsAsErrors = true
	code := ValidateBytes(minimalKTX2(), opts)

	require.Equal(t, ExitValidationFailure, code)
	require.Len(t, strict, len(plain))
	for i := range plain {
		require.Equal(t, plain[i].ID, strict[i].ID)
		require.Equal(t, types.SevError, strict[i].Type)
	}
}

func TestValidateReader(t *testing.T) {
	var reports []types.ValidationReport
	code := ValidateReader(bytes.NewReader(minimalKTX2()), collect(&reports))

	require.Equal(t, ExitSuccess, code)
	require.Len(t, reports, 1)
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.ktx2")
	require.NoError(t, os.WriteFile(path, minimalKTX2(), 0o644))

	var reports []types.ValidationReport
	code := ValidateFile(path, collect(&reports))

	require.Equal(t, ExitSuccess, code)
	require.Len(t, reports, 1)
}

func TestValidateFile_Missing(t *testing.T) {
	var reports []types.ValidationReport
	code := ValidateFile(filepath.Join(t.TempDir(), "nope.ktx2"), collect(&reports))

	require.Equal(t, ExitIOFailure, code)
	require.Len(t, reports, 1)
	require.Equal(t, uint16(1001), reports[0].ID)
	require.Equal(t, types.SevFatal, reports[0].Type)
}

func TestValidateBytes_NilCallback(t *testing.T) {
	require.Equal(t, ExitSuccess, ValidateBytes(minimalKTX2(), Options{}))
}
