package validate

import (
	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

// validateIndices checks the DFD, KVD and SGD index entries: required /
// optional presence, alignment, in-bounds, and the continuity of the
// region layout after the level index.
func (c *Context) validateIndices() error {
	size := uint64(len(c.data))
	dfd := c.hdr.DFD
	kvd := c.hdr.KVD
	sgd := c.hdr.SGD
	scheme := c.hdr.SupercompressionScheme

	// DFD: required, 4-byte aligned, in-bounds.
	if dfd.ByteOffset == 0 {
		c.sink.Error(issue.IndexDFDZeroOffset)
	}
	if dfd.ByteLength == 0 {
		c.sink.Error(issue.IndexDFDZeroLength)
	}
	if dfd.ByteOffset%4 != 0 {
		c.sink.Error(issue.IndexDFDAlignment, dfd.ByteOffset)
	}
	if uint64(dfd.ByteOffset)+uint64(dfd.ByteLength) > size {
		c.sink.Error(issue.IndexDFDInvalid, dfd.ByteOffset, dfd.ByteLength, size)
	}

	// KVD: optional, offset 0 iff length 0, 4-byte aligned, in-bounds.
	if kvd.ByteLength == 0 && kvd.ByteOffset != 0 {
		c.sink.Error(issue.IndexKVDOffsetWithoutLength, kvd.ByteOffset)
	}
	if kvd.ByteOffset == 0 && kvd.ByteLength != 0 {
		c.sink.Error(issue.IndexKVDLengthWithoutOffset, kvd.ByteLength)
	}
	if kvd.ByteOffset%4 != 0 {
		c.sink.Error(issue.IndexKVDAlignment, kvd.ByteOffset)
	}
	if kvd.ByteLength != 0 && uint64(kvd.ByteOffset)+uint64(kvd.ByteLength) > size {
		c.sink.Error(issue.IndexKVDInvalid, kvd.ByteOffset, kvd.ByteLength, size)
	}

	// SGD: presence is dictated by the supercompression scheme.
	if sgd.ByteLength == 0 && sgd.ByteOffset != 0 {
		c.sink.Error(issue.IndexSGDOffsetWithoutLength, sgd.ByteOffset)
	}
	if sgd.ByteOffset == 0 && sgd.ByteLength != 0 {
		c.sink.Error(issue.IndexSGDLengthWithoutOffset, sgd.ByteLength)
	}
	if sgd.ByteOffset%8 != 0 {
		c.sink.Error(issue.IndexSGDAlignment, sgd.ByteOffset)
	}
	if vkformat.SchemeHasGlobalData(scheme) {
		if sgd.ByteLength == 0 {
			c.sink.Error(issue.IndexSGDMissing, scheme)
		}
	} else {
		if sgd.ByteLength != 0 {
			c.sink.Error(issue.IndexSGDExists, sgd.ByteLength, scheme)
		}
	}
	if sgd.ByteLength != 0 && sgd.ByteOffset+sgd.ByteLength > size {
		c.sink.Error(issue.IndexSGDInvalid, sgd.ByteOffset, sgd.ByteLength, size)
	}

	// Continuity: header, level index, DFD, KVD, SGD are laid out back to
	// back with only the alignment padding between them.
	expected := uint64(HeaderSize) + uint64(LevelIndexEntrySize)*uint64(c.levelCount)

	if dfd.ByteOffset != 0 {
		at := buf.Align4(expected)
		if uint64(dfd.ByteOffset) != at {
			c.sink.Error(issue.IndexDFDContinuity, dfd.ByteOffset, at)
		}
		expected = at + uint64(dfd.ByteLength)
	}

	if kvd.ByteOffset != 0 {
		at := buf.Align4(expected)
		if uint64(kvd.ByteOffset) != at {
			c.sink.Error(issue.IndexKVDContinuity, kvd.ByteOffset, at)
		}
		expected = at + uint64(kvd.ByteLength)
	}

	if sgd.ByteOffset != 0 {
		at := buf.Align8(expected)
		if sgd.ByteOffset != at {
			c.sink.Error(issue.IndexSGDContinuity, sgd.ByteOffset, at)
		}
	}

	return nil
}

// metadataEnd returns the file offset one past the last header region
// (SGD if present, else KVD, else DFD, else the level index). The image
// data of the smallest mip level starts here after level alignment.
func (c *Context) metadataEnd() uint64 {
	end := uint64(HeaderSize) + uint64(LevelIndexEntrySize)*uint64(c.levelCount)
	if c.hdr.DFD.ByteOffset != 0 {
		end = uint64(c.hdr.DFD.ByteOffset) + uint64(c.hdr.DFD.ByteLength)
	}
	if c.hdr.KVD.ByteOffset != 0 {
		end = uint64(c.hdr.KVD.ByteOffset) + uint64(c.hdr.KVD.ByteLength)
	}
	if c.hdr.SGD.ByteOffset != 0 {
		end = c.hdr.SGD.ByteOffset + c.hdr.SGD.ByteLength
	}
	return end
}
