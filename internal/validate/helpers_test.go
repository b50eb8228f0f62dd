package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/vkformat"
	"github.com/ktxkit/ktxkit/pkg/types"
)

// fileSpec builds a well-formed KTX2 byte buffer with a single populated
// mip level. Tests mutate the result to provoke specific diagnostics.
type fileSpec struct {
	format     vkformat.Format
	typeSize   uint32
	width      uint32
	height     uint32
	depth      uint32
	layerCount uint32
	faceCount  uint32
	levelCount uint32
	scheme     vkformat.SupercompressionScheme
	dfdLen     uint32
	kvd        []byte
	sgd        []byte
	imageLen   uint64
}

func (s fileSpec) build() []byte {
	if s.typeSize == 0 {
		s.typeSize = 1
	}
	if s.width == 0 {
		s.width = 1
	}
	if s.height == 0 {
		s.height = 1
	}
	if s.faceCount == 0 {
		s.faceCount = 1
	}
	if s.levelCount == 0 {
		s.levelCount = 1
	}
	if s.dfdLen == 0 {
		s.dfdLen = 92
	}
	if s.imageLen == 0 {
		s.imageLen = 4
	}

	dfdOff := uint64(HeaderSize) + uint64(LevelIndexEntrySize)*uint64(s.levelCount)
	end := dfdOff + uint64(s.dfdLen)

	var kvdOff uint64
	if len(s.kvd) > 0 {
		kvdOff = buf.Align4(end)
		end = kvdOff + uint64(len(s.kvd))
	}

	var sgdOff uint64
	if len(s.sgd) > 0 {
		sgdOff = buf.Align8(end)
		end = sgdOff + uint64(len(s.sgd))
	}

	levelAlign := uint64(4)
	if s.scheme != vkformat.SchemeNone {
		levelAlign = 1
	}
	dataOff := buf.AlignUp(end, levelAlign)

	b := make([]byte, dataOff+s.imageLen)
	copy(b, identifierRef[:])
	buf.PutU32LE(b, 0x0C, uint32(s.format))
	buf.PutU32LE(b, 0x10, s.typeSize)
	buf.PutU32LE(b, 0x14, s.width)
	buf.PutU32LE(b, 0x18, s.height)
	buf.PutU32LE(b, 0x1C, s.depth)
	buf.PutU32LE(b, 0x20, s.layerCount)
	buf.PutU32LE(b, 0x24, s.faceCount)
	buf.PutU32LE(b, 0x28, s.levelCount)
	buf.PutU32LE(b, 0x2C, uint32(s.scheme))
	buf.PutU32LE(b, 0x30, uint32(dfdOff))
	buf.PutU32LE(b, 0x34, s.dfdLen)
	buf.PutU32LE(b, 0x38, uint32(kvdOff))
	buf.PutU32LE(b, 0x3C, uint32(len(s.kvd)))
	buf.PutU64LE(b, 0x40, sgdOff)
	buf.PutU64LE(b, 0x48, uint64(len(s.sgd)))

	// Level index: only the base level is populated; tests asking for
	// more levels get zero entries and the diagnostics that go with them.
	buf.PutU64LE(b, HeaderSize, dataOff)
	buf.PutU64LE(b, HeaderSize+8, s.imageLen)

	// A DFD region whose totalSize matches the index entry.
	buf.PutU32LE(b, int(dfdOff), s.dfdLen)

	copy(b[kvdOff:], s.kvd)
	copy(b[sgdOff:], s.sgd)
	return b
}

// kvEntry encodes one key/value pair in the KVD wire format, including
// the trailing 4-byte alignment padding.
func kvEntry(key string, value []byte) []byte {
	length := len(key) + 1 + len(value)
	out := make([]byte, 4+int(buf.Align4(uint64(length))))
	buf.PutU32LE(out, 0, uint32(length))
	copy(out[4:], key)
	copy(out[4+len(key)+1:], value)
	return out
}

func kvBlock(entries ...[]byte) []byte {
	var out []byte
	for _, e := range entries {
		out = append(out, e...)
	}
	return out
}

// run executes the validator over data and derives the exit status the
// way the orchestrator does.
func run(t *testing.T, data []byte, warningsAsErrors bool) ([]types.ValidationReport, int) {
	t.Helper()
	var reports []types.ValidationReport
	sink := issue.NewSink(warningsAsErrors, func(r types.ValidationReport) {
		reports = append(reports, r)
	})
	err := New(data, sink).Run()
	if err != nil {
		require.True(t, issue.IsFatal(err))
		return reports, 3
	}
	if sink.ErrorCount() > 0 {
		return reports, 3
	}
	return reports, 0
}

func reportIDs(reports []types.ValidationReport) []uint16 {
	ids := make([]uint16, len(reports))
	for i, r := range reports {
		ids[i] = r.ID
	}
	return ids
}

func findReport(reports []types.ValidationReport, id uint16) (types.ValidationReport, bool) {
	for _, r := range reports {
		if r.ID == id {
			return r, true
		}
	}
	return types.ValidationReport{}, false
}

func requireHasID(t *testing.T, reports []types.ValidationReport, id uint16) types.ValidationReport {
	t.Helper()
	r, ok := findReport(reports, id)
	require.True(t, ok, "expected report %d in %v", id, reportIDs(reports))
	return r
}
