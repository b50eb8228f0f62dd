package validate

import (
	"bytes"

	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

// parseHeader decodes the fixed 80-byte prefix into a Header.
func parseHeader(b []byte) Header {
	var h Header
	copy(h.Identifier[:], b[:IdentifierSize])
	h.VkFormat = vkformat.Format(buf.U32LE(b[0x0C:]))
	h.TypeSize = buf.U32LE(b[0x10:])
	h.PixelWidth = buf.U32LE(b[0x14:])
	h.PixelHeight = buf.U32LE(b[0x18:])
	h.PixelDepth = buf.U32LE(b[0x1C:])
	h.LayerCount = buf.U32LE(b[0x20:])
	h.FaceCount = buf.U32LE(b[0x24:])
	h.LevelCount = buf.U32LE(b[0x28:])
	h.SupercompressionScheme = vkformat.SupercompressionScheme(buf.U32LE(b[0x2C:]))
	h.DFD = IndexEntry32{ByteOffset: buf.U32LE(b[0x30:]), ByteLength: buf.U32LE(b[0x34:])}
	h.KVD = IndexEntry32{ByteOffset: buf.U32LE(b[0x38:]), ByteLength: buf.U32LE(b[0x3C:])}
	h.SGD = IndexEntry64{ByteOffset: buf.U64LE(b[0x40:]), ByteLength: buf.U64LE(b[0x48:])}
	return h
}

// validateHeader reads and checks the header, deriving the dimension count
// and the effective layer and level counts for the later stages.
func (c *Context) validateHeader() error {
	raw, err := c.read(HeaderSize, "the header")
	if err != nil {
		return err
	}
	c.hdr = parseHeader(raw)
	format := c.hdr.VkFormat
	scheme := c.hdr.SupercompressionScheme

	// The identifier decides whether anything else is worth checking.
	if !bytes.Equal(c.hdr.Identifier[:], identifierRef[:]) {
		return c.sink.Fatal(issue.NotKTX2)
	}

	// vkFormat
	if vkformat.IsProhibited(format) {
		c.sink.Error(issue.ProhibitedFormat, format)
	}
	if !vkformat.IsValid(format) {
		switch {
		case uint32(format) >= 0x80000000:
			// A negative value in a signed-enum producer.
			c.sink.Error(issue.InvalidFormat, format)
		case format < vkformat.FirstExtensionFormat:
			c.sink.Error(issue.InvalidFormat, format)
		default:
			c.sink.Warning(issue.UnknownFormat, format)
		}
	}

	if scheme == vkformat.SchemeBasisLZ && format != vkformat.FormatUndefined {
		c.sink.Error(issue.VkFormatAndBasis, format)
	}

	// typeSize
	if format == vkformat.FormatUndefined || vkformat.IsBlockCompressed(format) {
		if c.hdr.TypeSize != 1 {
			c.sink.Error(issue.TypeSizeNotOne, c.hdr.TypeSize, format)
		}
	}

	// Image dimensions
	if c.hdr.PixelWidth == 0 {
		c.sink.Error(issue.WidthZero)
	}

	if vkformat.IsBlockCompressed(format) || vkformat.SchemeIsBlockCompressed(scheme) {
		if c.hdr.PixelHeight == 0 {
			c.sink.Error(issue.BlockCompressedNoHeight, format)
		}
	}

	if c.hdr.FaceCount == 6 && c.hdr.PixelWidth != c.hdr.PixelHeight {
		c.sink.Error(issue.CubeHeightWidthMismatch, c.hdr.PixelWidth, c.hdr.PixelHeight)
	}

	if c.hdr.PixelDepth != 0 && c.hdr.PixelHeight == 0 {
		c.sink.Error(issue.DepthNoHeight, c.hdr.PixelDepth)
	}

	if vkformat.Is3DBlockCompressed(format) && c.hdr.PixelDepth == 0 {
		c.sink.Error(issue.DepthBlockCompressedNoDepth, format)
	}

	if (vkformat.IsDepth(format) || vkformat.IsStencil(format)) && c.hdr.PixelDepth != 0 {
		c.sink.Error(issue.DepthStencilFormatWithDepth, c.hdr.PixelDepth, format)
	}

	if c.hdr.FaceCount == 6 && c.hdr.PixelDepth != 0 {
		c.sink.Error(issue.CubeWithDepth, c.hdr.PixelDepth)
	}

	// Dimension count
	switch {
	case c.hdr.PixelDepth != 0 && c.hdr.LayerCount != 0:
		// 3D array textures are legal but nothing can consume them.
		c.sink.Warning(issue.ThreeDArray)
		c.dimensionCount = 4
	case c.hdr.PixelDepth != 0:
		c.dimensionCount = 3
	case c.hdr.PixelHeight != 0:
		c.dimensionCount = 2
	default:
		c.dimensionCount = 1
	}

	c.layerCount = max(c.hdr.LayerCount, 1)

	// faceCount. Cube map faces being 2D is covered by
	// CubeHeightWidthMismatch and CubeWithDepth.
	if c.hdr.FaceCount != 6 && c.hdr.FaceCount != 1 {
		c.sink.Error(issue.InvalidFaceCount, c.hdr.FaceCount)
	}

	// levelCount. A raw value of 0 denotes one level without mipmaps.
	c.levelCount = max(c.hdr.LevelCount, 1)

	if vkformat.IsBlockCompressed(format) || vkformat.SchemeIsBlockCompressed(scheme) {
		if c.hdr.LevelCount == 0 {
			c.sink.Error(issue.BlockCompressedNoLevel, format)
		}
	}

	// This test works for arrays too because height or depth will be 0.
	maxDim := max(c.hdr.PixelWidth, c.hdr.PixelHeight, c.hdr.PixelDepth)
	if c.levelCount > 32 || uint64(maxDim) < uint64(1)<<(c.levelCount-1) {
		// Can't have more levels than 1 + log2(max(width, height, depth)).
		c.sink.Error(issue.TooManyMipLevels, c.levelCount, maxDim)
	}

	// supercompressionScheme
	if vkformat.SchemeIsVendor(scheme) {
		c.sink.Warning(issue.VendorSupercompression, uint32(scheme))
	} else if scheme > vkformat.SchemeEndRange {
		c.sink.Error(issue.InvalidSupercompression, uint32(scheme))
	}

	return nil
}
