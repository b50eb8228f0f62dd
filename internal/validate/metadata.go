package validate

import (
	"bytes"
	"fmt"
	"math/bits"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/ktxkit/ktxkit/internal/buf"
	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/vkformat"
)

// maxKVEntries bounds the scan so completely bogus length fields cannot
// turn the entry walk into an unbounded loop.
const maxKVEntries = 100

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// keyValueEntry is one parsed metadata record. key and value reference the
// KVD block of the input buffer and do not outlive the validation call.
type keyValueEntry struct {
	key   []byte
	value []byte
}

// metadataValidators maps each recognized reserved key to its value
// validator. Any other KTX/ktx-prefixed key is a reserved-key violation.
var metadataValidators = map[string]func(*Context, []byte){
	"KTXcubemapIncomplete": (*Context).validateCubemapIncomplete,
	"KTXorientation":       (*Context).validateOrientation,
	"KTXglFormat":          (*Context).validateGlFormat,
	"KTXdxgiFormat__":      (*Context).validateDxgiFormat,
	"KTXmetalPixelFormat":  (*Context).validateMetalPixelFormat,
	"KTXswizzle":           (*Context).validateSwizzle,
	"KTXwriter":            (*Context).validateWriter,
	"KTXwriterScParams":    (*Context).validateWriterScParams,
	"KTXastcDecodeMode":    (*Context).validateAstcDecodeMode,
	"KTXanimData":          (*Context).validateAnimData,
}

// validateMetadata scans the key/value data block entry by entry,
// checks the wire encoding, then runs the global ordering/uniqueness
// checks and the per-key validators.
func (c *Context) validateMetadata() error {
	kvd := c.hdr.KVD
	// A zero offset with a non-zero length is an index error already
	// reported; there is no KVD region to scan either way.
	if kvd.ByteLength == 0 || kvd.ByteOffset == 0 {
		c.checkWriterPresence()
		return nil
	}
	if err := c.seekTo(uint64(kvd.ByteOffset), "Key/Value Data"); err != nil {
		return err
	}
	block, err := c.read(int(kvd.ByteLength), "Key/Value Data")
	if err != nil {
		return err
	}

	entries, processed, capped := c.scanEntries(block)

	if !capped && processed != len(block) {
		c.sink.Error(issue.SizesDontAddUp, processed, len(block))
	}

	// When an SGD region follows, the gap up to its 8-byte alignment is
	// padding and must be zero.
	if c.hdr.SGD.ByteLength != 0 {
		kvdEnd := uint64(kvd.ByteOffset) + uint64(kvd.ByteLength)
		padEnd := buf.Align8(kvdEnd)
		if pad, ok := buf.Slice(c.data, int(kvdEnd), int(padEnd-kvdEnd)); ok {
			c.checkPaddingZeros(pad, "between the keyValueData and the supercompressionGlobalData")
		}
	}

	// Entries must arrive sorted; sort in memory afterwards so the
	// duplicate and per-key checks still run on unsorted files.
	for i := 1; i < len(entries); i++ {
		if bytes.Compare(entries[i-1].key, entries[i].key) > 0 {
			c.sink.Error(issue.OutOfOrder)
			sort.SliceStable(entries, func(a, b int) bool {
				return bytes.Compare(entries[a].key, entries[b].key) < 0
			})
			break
		}
	}

	for i := 1; i < len(entries); i++ {
		if bytes.Equal(entries[i-1].key, entries[i].key) {
			c.sink.Error(issue.DuplicateKey)
		}
	}

	// KTXanimData's compatibility check needs to know about
	// KTXcubemapIncomplete no matter where the two keys sort.
	for _, e := range entries {
		if string(e.key) == "KTXcubemapIncomplete" {
			c.cubemapIncompleteFound = true
		}
	}

	for _, e := range entries {
		key := string(e.key)
		if validator, ok := metadataValidators[key]; ok {
			validator(c, e.value)
			continue
		}
		if strings.HasPrefix(key, "KTX") || strings.HasPrefix(key, "ktx") {
			c.sink.Error(issue.UnknownReservedKey, sanitize(e.key))
		} else {
			c.sink.Warning(issue.CustomMetadata, sanitize(e.key))
		}
	}

	c.checkWriterPresence()
	return nil
}

// scanEntries walks the wire format: per entry a 4-byte little-endian
// keyAndValueByteLength, the key, a NUL, the value, and zero padding to
// the next 4-byte boundary. Returns the parsed entries, the number of
// bytes consumed, and whether the entry cap stopped the scan.
func (c *Context) scanEntries(block []byte) (entries []keyValueEntry, processed int, capped bool) {
	ptr := 0
	for ptr < len(block) {
		if len(entries) >= maxKVEntries {
			c.sink.Error(issue.TooManyEntry, maxKVEntries)
			return entries, ptr, true
		}

		remaining := len(block) - ptr
		if remaining < 6 {
			c.sink.Error(issue.NotEnoughDataForAnEntry, remaining)
			if remaining < 4 {
				return entries, ptr, false
			}
		}

		length := buf.U32LE(block[ptr:])
		ptr += 4

		if length > uint32(len(block)-ptr) {
			c.sink.Error(issue.KeyValuePairSizeTooBig, length, len(block)-ptr)
			length = uint32(len(block) - ptr)
		}
		if length < 2 {
			c.sink.Error(issue.KeyValuePairSizeTooSmall, length)
		}

		pair := block[ptr : ptr+int(length)]
		entries = append(entries, c.parseEntry(pair))
		ptr += int(length)

		padded := int(buf.Align4(uint64(length)))
		padLen := padded - int(length)
		if padLen > len(block)-ptr {
			padLen = len(block) - ptr
		}
		c.checkPaddingZeros(block[ptr:ptr+padLen], "after a key/value entry")
		ptr += padLen
	}
	return entries, ptr, false
}

// parseEntry splits one key\0value pair and checks the key encoding.
// A missing NUL terminator degrades to an empty value so the scan can
// keep extracting diagnostics.
func (c *Context) parseEntry(pair []byte) keyValueEntry {
	var key, value []byte
	if idx := bytes.IndexByte(pair, 0); idx < 0 {
		c.sink.Error(issue.KeyMissingNullTerminator, sanitize(pair))
		key = pair
	} else {
		key = pair[:idx]
		value = pair[idx+1:]
	}

	if bytes.HasPrefix(key, utf8BOM) {
		c.sink.Error(issue.KeyForbiddenBOM, sanitize(key))
		key = key[len(utf8BOM):]
	}

	if pos, ok := firstInvalidUTF8(key); !ok {
		c.sink.Error(issue.KeyInvalidUTF8, sanitize(key), pos)
	}

	return keyValueEntry{key: key, value: value}
}

// checkWriterPresence runs after the scan: KTXwriterScParams requires
// KTXwriter, and files without KTXwriter at all get a nudge.
func (c *Context) checkWriterPresence() {
	if c.writerFound {
		return
	}
	if c.writerScParamsFound {
		c.sink.Error(issue.KTXwriterRequiredButMissing)
	} else {
		c.sink.Warning(issue.KTXwriterMissing)
	}
}

// ------------------------------------------------------------------------
// Per-key validators
// ------------------------------------------------------------------------

func (c *Context) validateCubemapIncomplete(value []byte) {
	c.cubemapIncompleteFound = true

	if len(value) != 1 {
		c.sink.Error(issue.KTXcubemapIncompleteInvalidSize, len(value))
	}
	if len(value) == 0 {
		return
	}

	faceBits := value[0]
	if faceBits&0xC0 != 0 {
		c.sink.Error(issue.KTXcubemapIncompleteInvalidValue, faceBits)
	}
	faceBits &= 0x3F

	facesPresent := bits.OnesCount8(faceBits)
	switch facesPresent {
	case 6:
		c.sink.Warning(issue.KTXcubemapIncompleteAllBitSet)
	case 0:
		c.sink.Error(issue.KTXcubemapIncompleteNoBitSet)
	}
	if facesPresent > 0 && c.layerCount%uint32(facesPresent) != 0 {
		c.sink.Error(issue.KTXcubemapIncompleteIncompatibleLayerCount, c.layerCount, facesPresent)
	}

	if c.hdr.FaceCount != 1 {
		c.sink.Error(issue.KTXcubemapIncompleteWithFaceCountNot1, c.hdr.FaceCount)
	}
	if c.hdr.PixelWidth != c.hdr.PixelHeight {
		c.sink.Error(issue.KTXcubemapIncompleteHeightWidthMismatch, c.hdr.PixelWidth, c.hdr.PixelHeight)
	}
	if c.hdr.PixelDepth != 0 {
		c.sink.Error(issue.KTXcubemapIncompleteWithDepth, c.hdr.PixelDepth)
	}
}

// orientationCharsets lists the two legal characters for each dimension:
// r/l for X, d/u for Y, o/i for Z.
var orientationCharsets = [3][2]string{{"r", "l"}, {"d", "u"}, {"o", "i"}}

func (c *Context) validateOrientation(value []byte) {
	if len(value) < 2 || len(value) > 4 {
		c.sink.Error(issue.KTXorientationInvalidSize, len(value))
		if len(value) == 0 {
			return
		}
	}

	orientation := value
	if value[len(value)-1] != 0 {
		c.sink.Error(issue.KTXorientationMissingNull)
	} else {
		orientation = value[:len(value)-1]
	}

	if uint32(len(orientation)) != c.dimensionCount {
		c.sink.Error(issue.KTXorientationIncorrectDimension, len(orientation), c.dimensionCount)
	}

	for i := 0; i < len(orientation) && i < len(orientationCharsets); i++ {
		allowed := orientationCharsets[i]
		ch := string(orientation[i : i+1])
		if ch != allowed[0] && ch != allowed[1] {
			c.sink.Error(issue.KTXorientationInvalidValue, i+1, sanitize(orientation[i:i+1]), allowed[0], allowed[1])
		}
	}
}

func (c *Context) validateGlFormat(value []byte) {
	if len(value) != 12 {
		c.sink.Error(issue.KTXglFormatInvalidSize, len(value))
	}
}

func (c *Context) validateDxgiFormat(value []byte) {
	if len(value) != 4 {
		c.sink.Error(issue.KTXdxgiFormatInvalidSize, len(value))
	}
}

func (c *Context) validateMetalPixelFormat(value []byte) {
	if len(value) != 4 {
		c.sink.Error(issue.KTXmetalPixelFormatInvalidSize, len(value))
	}
}

func (c *Context) validateSwizzle(value []byte) {
	if len(value) != 5 {
		c.sink.Error(issue.KTXswizzleInvalidSize, len(value))
	}
	if len(value) == 0 {
		return
	}
	if value[len(value)-1] != 0 {
		c.sink.Error(issue.KTXswizzleMissingNull)
	}

	swizzle := value
	if swizzle[len(swizzle)-1] == 0 {
		swizzle = swizzle[:len(swizzle)-1]
	}
	for i := 0; i < len(swizzle) && i < 4; i++ {
		ch := swizzle[i]
		if !strings.ContainsRune("rgba01", rune(ch)) {
			c.sink.Error(issue.KTXswizzleInvalidValue, i+1, sanitize(swizzle[i:i+1]))
		}
	}

	if vkformat.IsDepth(c.hdr.VkFormat) || vkformat.IsStencil(c.hdr.VkFormat) {
		c.sink.Warning(issue.KTXswizzleWithDepthOrStencil, c.hdr.VkFormat)
	}
}

func (c *Context) validateWriter(value []byte) {
	c.writerFound = true

	if len(value) == 0 || value[len(value)-1] != 0 {
		c.sink.Error(issue.KTXwriterMissingNull)
	}
	if pos, ok := firstInvalidUTF8(value); !ok {
		c.sink.Warning(issue.KTXwriterInvalidUTF8, pos)
	}
}

func (c *Context) validateWriterScParams(value []byte) {
	c.writerScParamsFound = true

	if len(value) == 0 || value[len(value)-1] != 0 {
		c.sink.Error(issue.KTXwriterScParamsMissingNull)
	}
	if pos, ok := firstInvalidUTF8(value); !ok {
		c.sink.Warning(issue.KTXwriterScParamsInvalidUTF8, pos)
	}
}

func (c *Context) validateAstcDecodeMode(value []byte) {
	mode := value
	if len(mode) > 0 && mode[len(mode)-1] == 0 {
		mode = mode[:len(mode)-1]
	}
	if s := string(mode); s != "rgb9e5" && s != "unorm8" {
		c.sink.Error(issue.KTXastcDecodeModeInvalidValue, sanitize(mode))
	}
}

func (c *Context) validateAnimData(value []byte) {
	if c.cubemapIncompleteFound {
		c.sink.Error(issue.KTXanimDataWithCubemapIncomplete)
	}
	if c.hdr.LayerCount == 0 {
		c.sink.Error(issue.KTXanimDataNotArray)
	}
	if len(value) != 12 {
		c.sink.Error(issue.KTXanimDataInvalidSize, len(value))
	}
}

// ------------------------------------------------------------------------

// firstInvalidUTF8 returns the byte index of the first ill-formed UTF-8
// sequence in b, or ok = true when b is valid.
func firstInvalidUTF8(b []byte) (int, bool) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}

// sanitize makes arbitrary key/value bytes safe to embed in details
// strings: ill-formed UTF-8 is replaced so the reports themselves stay
// valid UTF-8 for the JSON formatters.
func sanitize(b []byte) string {
	s, _, err := transform.String(runes.ReplaceIllFormed(), string(b))
	if err != nil {
		return fmt.Sprintf("%q", b)
	}
	return s
}
