package validate

import (
	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

// levelEntry is one 16-byte record of the level index.
type levelEntry struct {
	byteOffset uint64
	byteLength uint64
}

// requiredLevelAlignment returns the alignment level byteOffsets must
// satisfy. Supercompressed payloads have no alignment requirement; for
// uncompressed payloads the requirement is lcm(texelBlockByteSize, 4), of
// which 4 is the part checkable without a DFD parser.
func (c *Context) requiredLevelAlignment() uint64 {
	if c.hdr.SupercompressionScheme != vkformat.SchemeNone {
		return 1
	}
	return 4
}

// validateLevelIndex reads the level index and checks the per-level
// offsets and lengths. Level sizes are only computable from the DFD, so
// exact offsets are validated for the cases where the index itself pins
// them down: files whose vkFormat is UNDEFINED or that are
// supercompressed store levels back to back, smallest level first, with
// only alignment padding between them.
func (c *Context) validateLevelIndex() error {
	if err := c.seekTo(HeaderSize, "the level index"); err != nil {
		return err
	}
	end, err := buf.CheckListBounds(len(c.data), HeaderSize, int(c.levelCount), LevelIndexEntrySize)
	if err != nil {
		need := uint64(c.levelCount) * LevelIndexEntrySize
		avail := uint64(len(c.data) - HeaderSize)
		return c.sink.Fatal(issue.UnexpectedEOF, need, "the level index", avail)
	}
	raw, err := c.read(end-HeaderSize, "the level index")
	if err != nil {
		return err
	}

	levels := make([]levelEntry, c.levelCount)
	for i := range levels {
		e := raw[i*LevelIndexEntrySize:]
		levels[i] = levelEntry{
			byteOffset: buf.U64LE(e),
			byteLength: buf.U64LE(e[8:]),
		}
	}
	return c.checkLevels(levels)
}

// checkLevels walks the parsed level index last level first, the order
// the level regions appear in the file.
func (c *Context) checkLevels(levels []levelEntry) error {
	scheme := c.hdr.SupercompressionScheme
	// Exact offsets are only predictable without per-format size tables
	// when the levels are opaque byte runs.
	minimal := c.hdr.VkFormat == vkformat.FormatUndefined || scheme != vkformat.SchemeNone

	alignment := c.requiredLevelAlignment()
	dataStart := buf.AlignUp(c.metadataEnd(), alignment)
	expectedOffset := dataStart

	clean := true
	var lastByteLength uint64
	var lastEnd uint64

	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]

		if lvl.byteOffset == 0 || lvl.byteLength == 0 {
			c.sink.Error(issue.LevelZeroOffsetOrLength, i, lvl.byteOffset, lvl.byteLength)
			clean = false
			continue
		}

		if minimal {
			if lvl.byteOffset != expectedOffset {
				c.sink.Error(issue.LevelIncorrectByteOffset, i, lvl.byteOffset, expectedOffset)
				clean = false
			}
			if scheme == vkformat.SchemeNone {
				if lvl.byteLength < lastByteLength {
					c.sink.Error(issue.LevelIncorrectLevelOrder, i, lvl.byteLength, lastByteLength)
					clean = false
				}
				if lvl.byteOffset%alignment != 0 {
					c.sink.Error(issue.LevelUnalignedOffset, i, lvl.byteOffset, alignment)
					clean = false
				}
				lastByteLength = lvl.byteLength
			}
			expectedOffset = buf.AlignUp(expectedOffset+lvl.byteLength, alignment)
		}

		lastEnd = lvl.byteOffset + lvl.byteLength
	}

	// With trusted byteLengths the index pins down the total image data
	// size; compare it against what the file actually holds.
	if minimal && clean && lastEnd != 0 {
		fileEnd := uint64(len(c.data))
		if lastEnd != fileEnd {
			c.sink.Error(issue.IncorrectDataSize, fileEnd-dataStart, lastEnd-dataStart)
		}
	}

	return nil
}
