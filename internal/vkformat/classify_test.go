package vkformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	require.True(t, IsValid(FormatUndefined))
	require.True(t, IsValid(FormatR8G8B8A8Unorm))
	require.True(t, IsValid(MaxStandardFormat))
	require.True(t, IsValid(FormatPVRTC12BPPUnormBlockIMG))
	require.True(t, IsValid(FormatASTC12x12SfloatBlockEXT))
	require.True(t, IsValid(FormatG8B8G8R8422Unorm))
	require.True(t, IsValid(FormatASTC6x6x6SfloatBlockEXT))
	require.True(t, IsValid(FormatA4B4G4R4UnormPack16EXT))

	require.False(t, IsValid(MaxStandardFormat+1))
	require.False(t, IsValid(FirstExtensionFormat))
	require.False(t, IsValid(Format(1000288030)))
	require.False(t, IsValid(Format(0xFFFFFFFF)))
}

func TestIsProhibited(t *testing.T) {
	// Scaled formats describe vertex fetch, not textures.
	require.True(t, IsProhibited(FormatR8Uscaled))
	require.True(t, IsProhibited(FormatR16G16B16A16Sscaled))
	require.True(t, IsProhibited(FormatA2R10G10B10UscaledPack32))

	// The packed aliases of byte-order RGBA8.
	require.True(t, IsProhibited(FormatA8B8G8R8UnormPack32))
	require.True(t, IsProhibited(FormatA8B8G8R8SrgbPack32))

	// Chroma-subsampled and multi-planar formats.
	require.True(t, IsProhibited(FormatG8B8G8R8422Unorm))
	require.True(t, IsProhibited(FormatG16B16R163Plane444Unorm))
	require.True(t, IsProhibited(FormatR10X6UnormPack16))

	require.False(t, IsProhibited(FormatUndefined))
	require.False(t, IsProhibited(FormatR8G8B8A8Unorm))
	require.False(t, IsProhibited(FormatR8G8B8A8Srgb))
	require.False(t, IsProhibited(FormatBC7SrgbBlock))
}

func TestIsBlockCompressed(t *testing.T) {
	require.True(t, IsBlockCompressed(FormatBC1RGBUnormBlock))
	require.True(t, IsBlockCompressed(FormatETC2R8G8B8UnormBlock))
	require.True(t, IsBlockCompressed(FormatEACR11G11SnormBlock))
	require.True(t, IsBlockCompressed(FormatASTC12x12SrgbBlock))
	require.True(t, IsBlockCompressed(FormatPVRTC24BPPSrgbBlockIMG))
	require.True(t, IsBlockCompressed(FormatASTC4x4SfloatBlockEXT))
	require.True(t, IsBlockCompressed(FormatASTC3x3x3UnormBlockEXT))

	require.False(t, IsBlockCompressed(FormatUndefined))
	require.False(t, IsBlockCompressed(FormatR8G8B8A8Unorm))
	require.False(t, IsBlockCompressed(FormatD32SfloatS8Uint))
	require.False(t, IsBlockCompressed(FormatG8B8G8R8422Unorm))
}

func TestIs3DBlockCompressed(t *testing.T) {
	require.True(t, Is3DBlockCompressed(FormatASTC3x3x3UnormBlockEXT))
	require.True(t, Is3DBlockCompressed(FormatASTC6x6x6SfloatBlockEXT))

	require.False(t, Is3DBlockCompressed(FormatASTC4x4UnormBlock))
	require.False(t, Is3DBlockCompressed(FormatBC7UnormBlock))
}

func TestDepthStencil(t *testing.T) {
	require.True(t, IsDepth(FormatD16Unorm))
	require.True(t, IsDepth(FormatX8D24UnormPack32))
	require.True(t, IsDepth(FormatD32SfloatS8Uint))
	require.False(t, IsDepth(FormatS8Uint))

	require.True(t, IsStencil(FormatS8Uint))
	require.True(t, IsStencil(FormatD24UnormS8Uint))
	require.False(t, IsStencil(FormatD32Sfloat))

	require.False(t, IsDepth(FormatR8G8B8A8Unorm))
	require.False(t, IsStencil(FormatR8G8B8A8Unorm))
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "VK_FORMAT_UNDEFINED", FormatUndefined.String())
	require.Equal(t, "VK_FORMAT_R8G8B8A8_UNORM", FormatR8G8B8A8Unorm.String())
	require.Equal(t, "VK_FORMAT_ASTC_12x12_SRGB_BLOCK", FormatASTC12x12SrgbBlock.String())
	require.Equal(t, "VK_FORMAT_PVRTC1_2BPP_UNORM_BLOCK_IMG", FormatPVRTC12BPPUnormBlockIMG.String())

	// Unknown values render as hex so reports stay unambiguous.
	require.Equal(t, "(0xBF)", Format(191).String())
}

func TestSchemePredicates(t *testing.T) {
	require.True(t, SchemeHasGlobalData(SchemeBasisLZ))
	require.False(t, SchemeHasGlobalData(SchemeNone))
	require.False(t, SchemeHasGlobalData(SchemeZstd))
	require.False(t, SchemeHasGlobalData(SchemeZLIB))

	require.True(t, SchemeIsBlockCompressed(SchemeBasisLZ))
	require.False(t, SchemeIsBlockCompressed(SchemeZstd))

	require.False(t, SchemeIsVendor(SchemeBeginVendorRange))
	require.True(t, SchemeIsVendor(SchemeBeginVendorRange+1))
	require.True(t, SchemeIsVendor(SchemeEndVendorRange))
	require.False(t, SchemeIsVendor(SchemeEndVendorRange+1))
}

func TestSchemeString(t *testing.T) {
	require.Equal(t, "KTX_SS_NONE", SchemeNone.String())
	require.Equal(t, "KTX_SS_BASIS_LZ", SchemeBasisLZ.String())
	require.Equal(t, "KTX_SS_ZSTD", SchemeZstd.String())
	require.Equal(t, "KTX_SS_ZLIB", SchemeZLIB.String())
	require.Equal(t, "Vendor (0x10001)", (SchemeBeginVendorRange + 1).String())
	require.Equal(t, "(0x4)", SupercompressionScheme(4).String())
}
