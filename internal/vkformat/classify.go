package vkformat

// scaledFormats are the *_USCALED and *_SSCALED formats. Vulkan defines
// them but KTX2 prohibits them: scaled formats describe vertex fetch
// behavior, not texture storage.
var scaledFormats = map[Format]struct{}{
	FormatR8Uscaled:                {},
	FormatR8Sscaled:                {},
	FormatR8G8Uscaled:              {},
	FormatR8G8Sscaled:              {},
	FormatR8G8B8Uscaled:            {},
	FormatR8G8B8Sscaled:            {},
	FormatB8G8R8Uscaled:            {},
	FormatB8G8R8Sscaled:            {},
	FormatR8G8B8A8Uscaled:          {},
	FormatR8G8B8A8Sscaled:          {},
	FormatB8G8R8A8Uscaled:          {},
	FormatB8G8R8A8Sscaled:          {},
	FormatA8B8G8R8UscaledPack32:    {},
	FormatA8B8G8R8SscaledPack32:    {},
	FormatA2R10G10B10UscaledPack32: {},
	FormatA2R10G10B10SscaledPack32: {},
	FormatA2B10G10R10UscaledPack32: {},
	FormatA2B10G10R10SscaledPack32: {},
	FormatR16Uscaled:               {},
	FormatR16Sscaled:               {},
	FormatR16G16Uscaled:            {},
	FormatR16G16Sscaled:            {},
	FormatR16G16B16Uscaled:         {},
	FormatR16G16B16Sscaled:         {},
	FormatR16G16B16A16Uscaled:      {},
	FormatR16G16B16A16Sscaled:      {},
}

// IsValid reports whether f is a defined VkFormat value.
func IsValid(f Format) bool {
	switch {
	case f <= MaxStandardFormat:
		return true
	case f >= FormatPVRTC12BPPUnormBlockIMG && f <= FormatPVRTC24BPPSrgbBlockIMG:
		return true
	case f >= FormatASTC4x4SfloatBlockEXT && f <= FormatASTC12x12SfloatBlockEXT:
		return true
	case f >= FormatG8B8G8R8422Unorm && f <= FormatG16B16R163Plane444Unorm:
		return true
	case f >= FormatASTC3x3x3UnormBlockEXT && f <= FormatASTC6x6x6SfloatBlockEXT:
		return true
	case f >= FormatA4R4G4B4UnormPack16EXT && f <= FormatA4B4G4R4UnormPack16EXT:
		return true
	}
	return false
}

// IsProhibited reports whether f is explicitly disallowed in KTX2 files:
// every scaled format, the A8B8G8R8 packed aliases of the byte-order
// R8G8B8A8 formats, and all chroma-subsampled or multi-planar formats.
func IsProhibited(f Format) bool {
	if _, ok := scaledFormats[f]; ok {
		return true
	}
	if f >= FormatA8B8G8R8UnormPack32 && f <= FormatA8B8G8R8SrgbPack32 {
		return true
	}
	if f >= FormatG8B8G8R8422Unorm && f <= FormatG16B16R163Plane444Unorm {
		return true
	}
	return false
}

// IsBlockCompressed reports whether f is any block-compressed format
// (BC, ETC2, EAC, ASTC including the HDR and 3D extensions, PVRTC).
func IsBlockCompressed(f Format) bool {
	switch {
	case f >= FormatBC1RGBUnormBlock && f <= MaxStandardFormat:
		return true
	case f >= FormatPVRTC12BPPUnormBlockIMG && f <= FormatPVRTC24BPPSrgbBlockIMG:
		return true
	case f >= FormatASTC4x4SfloatBlockEXT && f <= FormatASTC12x12SfloatBlockEXT:
		return true
	case f >= FormatASTC3x3x3UnormBlockEXT && f <= FormatASTC6x6x6SfloatBlockEXT:
		return true
	}
	return false
}

// Is3DBlockCompressed reports whether f's compression block extends in the
// Z dimension.
func Is3DBlockCompressed(f Format) bool {
	return f >= FormatASTC3x3x3UnormBlockEXT && f <= FormatASTC6x6x6SfloatBlockEXT
}

// IsDepth reports whether f carries a depth aspect.
func IsDepth(f Format) bool {
	switch f {
	case FormatD16Unorm,
		FormatX8D24UnormPack32,
		FormatD32Sfloat,
		FormatD16UnormS8Uint,
		FormatD24UnormS8Uint,
		FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// IsStencil reports whether f carries a stencil aspect.
func IsStencil(f Format) bool {
	switch f {
	case FormatS8Uint,
		FormatD16UnormS8Uint,
		FormatD24UnormS8Uint,
		FormatD32SfloatS8Uint:
		return true
	}
	return false
}
