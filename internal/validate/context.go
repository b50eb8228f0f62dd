// Package validate implements the KTX2 validation engine: a single pass
// over an in-memory file that checks the header, the index entries, the
// level index and the key/value metadata, reporting every deviation
// through an issue sink.
package validate

import (
	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

// The KTX2 file layout. All header fields are little-endian.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------
//	 0x00    12   identifier
//	 0x0C     4   vkFormat
//	 0x10     4   typeSize
//	 0x14     4   pixelWidth
//	 0x18     4   pixelHeight
//	 0x1C     4   pixelDepth
//	 0x20     4   layerCount
//	 0x24     4   faceCount
//	 0x28     4   levelCount
//	 0x2C     4   supercompressionScheme
//	 0x30     4   dfdByteOffset
//	 0x34     4   dfdByteLength
//	 0x38     4   kvdByteOffset
//	 0x3C     4   kvdByteLength
//	 0x40     8   sgdByteOffset
//	 0x48     8   sgdByteLength
const (
	HeaderSize          = 80
	IdentifierSize      = 12
	LevelIndexEntrySize = 16
)

// identifierRef is the exact 12-byte KTX2 file identifier:
// «KTX 20»\r\n\x1A\n.
var identifierRef = [IdentifierSize]byte{
	0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A,
}

// IndexEntry32 is a (byteOffset, byteLength) pair with 32-bit fields, used
// for the DFD and KVD regions.
type IndexEntry32 struct {
	ByteOffset uint32
	ByteLength uint32
}

// IndexEntry64 is a (byteOffset, byteLength) pair with 64-bit fields, used
// for the SGD region.
type IndexEntry64 struct {
	ByteOffset uint64
	ByteLength uint64
}

// Header is the parsed 80-byte KTX2 header.
type Header struct {
	Identifier             [IdentifierSize]byte
	VkFormat               vkformat.Format
	TypeSize               uint32
	PixelWidth             uint32
	PixelHeight            uint32
	PixelDepth             uint32
	LayerCount             uint32
	FaceCount              uint32
	LevelCount             uint32
	SupercompressionScheme vkformat.SupercompressionScheme
	DFD                    IndexEntry32
	KVD                    IndexEntry32
	SGD                    IndexEntry64
}

// Context is the state of one validation run: the input buffer, a
// forward-only cursor, the sink, and the header state later stages read.
// A Context is used for exactly one file and must not be reused.
type Context struct {
	data   []byte
	cursor int
	sink   *issue.Sink

	hdr Header

	// Derived by validateHeader, read by every later stage.
	layerCount     uint32 // effective: max(hdr.LayerCount, 1)
	levelCount     uint32 // effective: max(hdr.LevelCount, 1)
	dimensionCount uint32

	// Metadata cross-check state.
	cubemapIncompleteFound bool
	writerFound            bool
	writerScParamsFound    bool
}

// New returns a context validating data through sink.
func New(data []byte, sink *issue.Sink) *Context {
	return &Context{data: data, sink: sink}
}

// Run performs the full validation pass. The returned error is non-nil
// only for the fatal-abort unwind; ordinary errors accumulate in the sink.
func (c *Context) Run() error {
	if err := c.validateHeader(); err != nil {
		return err
	}
	if err := c.validateIndices(); err != nil {
		return err
	}
	if err := c.validateLevelIndex(); err != nil {
		return err
	}
	return c.validateMetadata()
}

// seekTo moves the cursor to off. Seeking past the end of the buffer is a
// fatal diagnostic. Backward seeks never happen; the callers advance
// strictly region by region.
func (c *Context) seekTo(off uint64, name string) error {
	if off > uint64(len(c.data)) {
		return c.sink.Fatal(issue.UnexpectedEOFSeek, off, name, len(c.data))
	}
	c.cursor = int(off)
	return nil
}

// read returns n bytes at the cursor without advancing it. Running past
// the end of the buffer is a fatal diagnostic.
func (c *Context) read(n int, name string) ([]byte, error) {
	b, ok := buf.Slice(c.data, c.cursor, n)
	if !ok {
		available := len(c.data) - c.cursor
		if available < 0 {
			available = 0
		}
		return nil, c.sink.Fatal(issue.UnexpectedEOF, n, name, available)
	}
	return b, nil
}

// checkPaddingZeros emits one PaddingNotZero per non-zero byte in pad.
// location describes where the padding sits, for the details string.
func (c *Context) checkPaddingZeros(pad []byte, location string) {
	for _, v := range pad {
		if v != 0 {
			c.sink.Error(issue.PaddingNotZero, v, location)
		}
	}
}
