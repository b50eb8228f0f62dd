package vkformat

import "fmt"

// String renders the Vulkan name of the format. Unknown values render as
// "(0xHEX)" so diagnostics stay unambiguous for extension formats this
// table does not know about.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("(0x%X)", uint32(f))
}

var formatNames = map[Format]string{
	FormatUndefined:                "VK_FORMAT_UNDEFINED",
	FormatR4G4UnormPack8:           "VK_FORMAT_R4G4_UNORM_PACK8",
	FormatR4G4B4A4UnormPack16:      "VK_FORMAT_R4G4B4A4_UNORM_PACK16",
	FormatB4G4R4A4UnormPack16:      "VK_FORMAT_B4G4R4A4_UNORM_PACK16",
	FormatR5G6B5UnormPack16:        "VK_FORMAT_R5G6B5_UNORM_PACK16",
	FormatB5G6R5UnormPack16:        "VK_FORMAT_B5G6R5_UNORM_PACK16",
	FormatR5G5B5A1UnormPack16:      "VK_FORMAT_R5G5B5A1_UNORM_PACK16",
	FormatB5G5R5A1UnormPack16:      "VK_FORMAT_B5G5R5A1_UNORM_PACK16",
	FormatA1R5G5B5UnormPack16:      "VK_FORMAT_A1R5G5B5_UNORM_PACK16",
	FormatR8Unorm:                  "VK_FORMAT_R8_UNORM",
	FormatR8Snorm:                  "VK_FORMAT_R8_SNORM",
	FormatR8Uscaled:                "VK_FORMAT_R8_USCALED",
	FormatR8Sscaled:                "VK_FORMAT_R8_SSCALED",
	FormatR8Uint:                   "VK_FORMAT_R8_UINT",
	FormatR8Sint:                   "VK_FORMAT_R8_SINT",
	FormatR8Srgb:                   "VK_FORMAT_R8_SRGB",
	FormatR8G8Unorm:                "VK_FORMAT_R8G8_UNORM",
	FormatR8G8Snorm:                "VK_FORMAT_R8G8_SNORM",
	FormatR8G8Uscaled:              "VK_FORMAT_R8G8_USCALED",
	FormatR8G8Sscaled:              "VK_FORMAT_R8G8_SSCALED",
	FormatR8G8Uint:                 "VK_FORMAT_R8G8_UINT",
	FormatR8G8Sint:                 "VK_FORMAT_R8G8_SINT",
	FormatR8G8Srgb:                 "VK_FORMAT_R8G8_SRGB",
	FormatR8G8B8Unorm:              "VK_FORMAT_R8G8B8_UNORM",
	FormatR8G8B8Snorm:              "VK_FORMAT_R8G8B8_SNORM",
	FormatR8G8B8Uscaled:            "VK_FORMAT_R8G8B8_USCALED",
	FormatR8G8B8Sscaled:            "VK_FORMAT_R8G8B8_SSCALED",
	FormatR8G8B8Uint:               "VK_FORMAT_R8G8B8_UINT",
	FormatR8G8B8Sint:               "VK_FORMAT_R8G8B8_SINT",
	FormatR8G8B8Srgb:               "VK_FORMAT_R8G8B8_SRGB",
	FormatB8G8R8Unorm:              "VK_FORMAT_B8G8R8_UNORM",
	FormatB8G8R8Snorm:              "VK_FORMAT_B8G8R8_SNORM",
	FormatB8G8R8Uscaled:            "VK_FORMAT_B8G8R8_USCALED",
	FormatB8G8R8Sscaled:            "VK_FORMAT_B8G8R8_SSCALED",
	FormatB8G8R8Uint:               "VK_FORMAT_B8G8R8_UINT",
	FormatB8G8R8Sint:               "VK_FORMAT_B8G8R8_SINT",
	FormatB8G8R8Srgb:               "VK_FORMAT_B8G8R8_SRGB",
	FormatR8G8B8A8Unorm:            "VK_FORMAT_R8G8B8A8_UNORM",
	FormatR8G8B8A8Snorm:            "VK_FORMAT_R8G8B8A8_SNORM",
	FormatR8G8B8A8Uscaled:          "VK_FORMAT_R8G8B8A8_USCALED",
	FormatR8G8B8A8Sscaled:          "VK_FORMAT_R8G8B8A8_SSCALED",
	FormatR8G8B8A8Uint:             "VK_FORMAT_R8G8B8A8_UINT",
	FormatR8G8B8A8Sint:             "VK_FORMAT_R8G8B8A8_SINT",
	FormatR8G8B8A8Srgb:             "VK_FORMAT_R8G8B8A8_SRGB",
	FormatB8G8R8A8Unorm:            "VK_FORMAT_B8G8R8A8_UNORM",
	FormatB8G8R8A8Snorm:            "VK_FORMAT_B8G8R8A8_SNORM",
	FormatB8G8R8A8Uscaled:          "VK_FORMAT_B8G8R8A8_USCALED",
	FormatB8G8R8A8Sscaled:          "VK_FORMAT_B8G8R8A8_SSCALED",
	FormatB8G8R8A8Uint:             "VK_FORMAT_B8G8R8A8_UINT",
	FormatB8G8R8A8Sint:             "VK_FORMAT_B8G8R8A8_SINT",
	FormatB8G8R8A8Srgb:             "VK_FORMAT_B8G8R8A8_SRGB",
	FormatA8B8G8R8UnormPack32:      "VK_FORMAT_A8B8G8R8_UNORM_PACK32",
	FormatA8B8G8R8SnormPack32:      "VK_FORMAT_A8B8G8R8_SNORM_PACK32",
	FormatA8B8G8R8UscaledPack32:    "VK_FORMAT_A8B8G8R8_USCALED_PACK32",
	FormatA8B8G8R8SscaledPack32:    "VK_FORMAT_A8B8G8R8_SSCALED_PACK32",
	FormatA8B8G8R8UintPack32:       "VK_FORMAT_A8B8G8R8_UINT_PACK32",
	FormatA8B8G8R8SintPack32:       "VK_FORMAT_A8B8G8R8_SINT_PACK32",
	FormatA8B8G8R8SrgbPack32:       "VK_FORMAT_A8B8G8R8_SRGB_PACK32",
	FormatA2R10G10B10UnormPack32:   "VK_FORMAT_A2R10G10B10_UNORM_PACK32",
	FormatA2R10G10B10SnormPack32:   "VK_FORMAT_A2R10G10B10_SNORM_PACK32",
	FormatA2R10G10B10UscaledPack32: "VK_FORMAT_A2R10G10B10_USCALED_PACK32",
	FormatA2R10G10B10SscaledPack32: "VK_FORMAT_A2R10G10B10_SSCALED_PACK32",
	FormatA2R10G10B10UintPack32:    "VK_FORMAT_A2R10G10B10_UINT_PACK32",
	FormatA2R10G10B10SintPack32:    "VK_FORMAT_A2R10G10B10_SINT_PACK32",
	FormatA2B10G10R10UnormPack32:   "VK_FORMAT_A2B10G10R10_UNORM_PACK32",
	FormatA2B10G10R10SnormPack32:   "VK_FORMAT_A2B10G10R10_SNORM_PACK32",
	FormatA2B10G10R10UscaledPack32: "VK_FORMAT_A2B10G10R10_USCALED_PACK32",
	FormatA2B10G10R10SscaledPack32: "VK_FORMAT_A2B10G10R10_SSCALED_PACK32",
	FormatA2B10G10R10UintPack32:    "VK_FORMAT_A2B10G10R10_UINT_PACK32",
	FormatA2B10G10R10SintPack32:    "VK_FORMAT_A2B10G10R10_SINT_PACK32",
	FormatR16Unorm:                 "VK_FORMAT_R16_UNORM",
	FormatR16Snorm:                 "VK_FORMAT_R16_SNORM",
	FormatR16Uscaled:               "VK_FORMAT_R16_USCALED",
	FormatR16Sscaled:               "VK_FORMAT_R16_SSCALED",
	FormatR16Uint:                  "VK_FORMAT_R16_UINT",
	FormatR16Sint:                  "VK_FORMAT_R16_SINT",
	FormatR16Sfloat:                "VK_FORMAT_R16_SFLOAT",
	FormatR16G16Unorm:              "VK_FORMAT_R16G16_UNORM",
	FormatR16G16Snorm:              "VK_FORMAT_R16G16_SNORM",
	FormatR16G16Uscaled:            "VK_FORMAT_R16G16_USCALED",
	FormatR16G16Sscaled:            "VK_FORMAT_R16G16_SSCALED",
	FormatR16G16Uint:               "VK_FORMAT_R16G16_UINT",
	FormatR16G16Sint:               "VK_FORMAT_R16G16_SINT",
	FormatR16G16Sfloat:             "VK_FORMAT_R16G16_SFLOAT",
	FormatR16G16B16Unorm:           "VK_FORMAT_R16G16B16_UNORM",
	FormatR16G16B16Snorm:           "VK_FORMAT_R16G16B16_SNORM",
	FormatR16G16B16Uscaled:         "VK_FORMAT_R16G16B16_USCALED",
	FormatR16G16B16Sscaled:         "VK_FORMAT_R16G16B16_SSCALED",
	FormatR16G16B16Uint:            "VK_FORMAT_R16G16B16_UINT",
	FormatR16G16B16Sint:            "VK_FORMAT_R16G16B16_SINT",
	FormatR16G16B16Sfloat:          "VK_FORMAT_R16G16B16_SFLOAT",
	FormatR16G16B16A16Unorm:        "VK_FORMAT_R16G16B16A16_UNORM",
	FormatR16G16B16A16Snorm:        "VK_FORMAT_R16G16B16A16_SNORM",
	FormatR16G16B16A16Uscaled:      "VK_FORMAT_R16G16B16A16_USCALED",
	FormatR16G16B16A16Sscaled:      "VK_FORMAT_R16G16B16A16_SSCALED",
	FormatR16G16B16A16Uint:         "VK_FORMAT_R16G16B16A16_UINT",
	FormatR16G16B16A16Sint:         "VK_FORMAT_R16G16B16A16_SINT",
	FormatR16G16B16A16Sfloat:       "VK_FORMAT_R16G16B16A16_SFLOAT",
	FormatR32Uint:                  "VK_FORMAT_R32_UINT",
	FormatR32Sint:                  "VK_FORMAT_R32_SINT",
	FormatR32Sfloat:                "VK_FORMAT_R32_SFLOAT",
	FormatR32G32Uint:               "VK_FORMAT_R32G32_UINT",
	FormatR32G32Sint:               "VK_FORMAT_R32G32_SINT",
	FormatR32G32Sfloat:             "VK_FORMAT_R32G32_SFLOAT",
	FormatR32G32B32Uint:            "VK_FORMAT_R32G32B32_UINT",
	FormatR32G32B32Sint:            "VK_FORMAT_R32G32B32_SINT",
	FormatR32G32B32Sfloat:          "VK_FORMAT_R32G32B32_SFLOAT",
	FormatR32G32B32A32Uint:         "VK_FORMAT_R32G32B32A32_UINT",
	FormatR32G32B32A32Sint:         "VK_FORMAT_R32G32B32A32_SINT",
	FormatR32G32B32A32Sfloat:       "VK_FORMAT_R32G32B32A32_SFLOAT",
	FormatR64Uint:                  "VK_FORMAT_R64_UINT",
	FormatR64Sint:                  "VK_FORMAT_R64_SINT",
	FormatR64Sfloat:                "VK_FORMAT_R64_SFLOAT",
	FormatR64G64Uint:               "VK_FORMAT_R64G64_UINT",
	FormatR64G64Sint:               "VK_FORMAT_R64G64_SINT",
	FormatR64G64Sfloat:             "VK_FORMAT_R64G64_SFLOAT",
	FormatR64G64B64Uint:            "VK_FORMAT_R64G64B64_UINT",
	FormatR64G64B64Sint:            "VK_FORMAT_R64G64B64_SINT",
	FormatR64G64B64Sfloat:          "VK_FORMAT_R64G64B64_SFLOAT",
	FormatR64G64B64A64Uint:         "VK_FORMAT_R64G64B64A64_UINT",
	FormatR64G64B64A64Sint:         "VK_FORMAT_R64G64B64A64_SINT",
	FormatR64G64B64A64Sfloat:       "VK_FORMAT_R64G64B64A64_SFLOAT",
	FormatB10G11R11UfloatPack32:    "VK_FORMAT_B10G11R11_UFLOAT_PACK32",
	FormatE5B9G9R9UfloatPack32:     "VK_FORMAT_E5B9G9R9_UFLOAT_PACK32",
	FormatD16Unorm:                 "VK_FORMAT_D16_UNORM",
	FormatX8D24UnormPack32:         "VK_FORMAT_X8_D24_UNORM_PACK32",
	FormatD32Sfloat:                "VK_FORMAT_D32_SFLOAT",
	FormatS8Uint:                   "VK_FORMAT_S8_UINT",
	FormatD16UnormS8Uint:           "VK_FORMAT_D16_UNORM_S8_UINT",
	FormatD24UnormS8Uint:           "VK_FORMAT_D24_UNORM_S8_UINT",
	FormatD32SfloatS8Uint:          "VK_FORMAT_D32_SFLOAT_S8_UINT",
	FormatBC1RGBUnormBlock:         "VK_FORMAT_BC1_RGB_UNORM_BLOCK",
	FormatBC1RGBSrgbBlock:          "VK_FORMAT_BC1_RGB_SRGB_BLOCK",
	FormatBC1RGBAUnormBlock:        "VK_FORMAT_BC1_RGBA_UNORM_BLOCK",
	FormatBC1RGBASrgbBlock:         "VK_FORMAT_BC1_RGBA_SRGB_BLOCK",
	FormatBC2UnormBlock:            "VK_FORMAT_BC2_UNORM_BLOCK",
	FormatBC2SrgbBlock:             "VK_FORMAT_BC2_SRGB_BLOCK",
	FormatBC3UnormBlock:            "VK_FORMAT_BC3_UNORM_BLOCK",
	FormatBC3SrgbBlock:             "VK_FORMAT_BC3_SRGB_BLOCK",
	FormatBC4UnormBlock:            "VK_FORMAT_BC4_UNORM_BLOCK",
	FormatBC4SnormBlock:            "VK_FORMAT_BC4_SNORM_BLOCK",
	FormatBC5UnormBlock:            "VK_FORMAT_BC5_UNORM_BLOCK",
	FormatBC5SnormBlock:            "VK_FORMAT_BC5_SNORM_BLOCK",
	FormatBC6HUfloatBlock:          "VK_FORMAT_BC6H_UFLOAT_BLOCK",
	FormatBC6HSfloatBlock:          "VK_FORMAT_BC6H_SFLOAT_BLOCK",
	FormatBC7UnormBlock:            "VK_FORMAT_BC7_UNORM_BLOCK",
	FormatBC7SrgbBlock:             "VK_FORMAT_BC7_SRGB_BLOCK",
	FormatETC2R8G8B8UnormBlock:     "VK_FORMAT_ETC2_R8G8B8_UNORM_BLOCK",
	FormatETC2R8G8B8SrgbBlock:      "VK_FORMAT_ETC2_R8G8B8_SRGB_BLOCK",
	FormatETC2R8G8B8A1UnormBlock:   "VK_FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK",
	FormatETC2R8G8B8A1SrgbBlock:    "VK_FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK",
	FormatETC2R8G8B8A8UnormBlock:   "VK_FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK",
	FormatETC2R8G8B8A8SrgbBlock:    "VK_FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK",
	FormatEACR11UnormBlock:         "VK_FORMAT_EAC_R11_UNORM_BLOCK",
	FormatEACR11SnormBlock:         "VK_FORMAT_EAC_R11_SNORM_BLOCK",
	FormatEACR11G11UnormBlock:      "VK_FORMAT_EAC_R11G11_UNORM_BLOCK",
	FormatEACR11G11SnormBlock:      "VK_FORMAT_EAC_R11G11_SNORM_BLOCK",
	FormatASTC4x4UnormBlock:        "VK_FORMAT_ASTC_4x4_UNORM_BLOCK",
	FormatASTC4x4SrgbBlock:         "VK_FORMAT_ASTC_4x4_SRGB_BLOCK",
	FormatASTC5x4UnormBlock:        "VK_FORMAT_ASTC_5x4_UNORM_BLOCK",
	FormatASTC5x4SrgbBlock:         "VK_FORMAT_ASTC_5x4_SRGB_BLOCK",
	FormatASTC5x5UnormBlock:        "VK_FORMAT_ASTC_5x5_UNORM_BLOCK",
	FormatASTC5x5SrgbBlock:         "VK_FORMAT_ASTC_5x5_SRGB_BLOCK",
	FormatASTC6x5UnormBlock:        "VK_FORMAT_ASTC_6x5_UNORM_BLOCK",
	FormatASTC6x5SrgbBlock:         "VK_FORMAT_ASTC_6x5_SRGB_BLOCK",
	FormatASTC6x6UnormBlock:        "VK_FORMAT_ASTC_6x6_UNORM_BLOCK",
	FormatASTC6x6SrgbBlock:         "VK_FORMAT_ASTC_6x6_SRGB_BLOCK",
	FormatASTC8x5UnormBlock:        "VK_FORMAT_ASTC_8x5_UNORM_BLOCK",
	FormatASTC8x5SrgbBlock:         "VK_FORMAT_ASTC_8x5_SRGB_BLOCK",
	FormatASTC8x6UnormBlock:        "VK_FORMAT_ASTC_8x6_UNORM_BLOCK",
	FormatASTC8x6SrgbBlock:         "VK_FORMAT_ASTC_8x6_SRGB_BLOCK",
	FormatASTC8x8UnormBlock:        "VK_FORMAT_ASTC_8x8_UNORM_BLOCK",
	FormatASTC8x8SrgbBlock:         "VK_FORMAT_ASTC_8x8_SRGB_BLOCK",
	FormatASTC10x5UnormBlock:       "VK_FORMAT_ASTC_10x5_UNORM_BLOCK",
	FormatASTC10x5SrgbBlock:        "VK_FORMAT_ASTC_10x5_SRGB_BLOCK",
	FormatASTC10x6UnormBlock:       "VK_FORMAT_ASTC_10x6_UNORM_BLOCK",
	FormatASTC10x6SrgbBlock:        "VK_FORMAT_ASTC_10x6_SRGB_BLOCK",
	FormatASTC10x8UnormBlock:       "VK_FORMAT_ASTC_10x8_UNORM_BLOCK",
	FormatASTC10x8SrgbBlock:        "VK_FORMAT_ASTC_10x8_SRGB_BLOCK",
	FormatASTC10x10UnormBlock:      "VK_FORMAT_ASTC_10x10_UNORM_BLOCK",
	FormatASTC10x10SrgbBlock:       "VK_FORMAT_ASTC_10x10_SRGB_BLOCK",
	FormatASTC12x10UnormBlock:      "VK_FORMAT_ASTC_12x10_UNORM_BLOCK",
	FormatASTC12x10SrgbBlock:       "VK_FORMAT_ASTC_12x10_SRGB_BLOCK",
	FormatASTC12x12UnormBlock:      "VK_FORMAT_ASTC_12x12_UNORM_BLOCK",
	FormatASTC12x12SrgbBlock:       "VK_FORMAT_ASTC_12x12_SRGB_BLOCK",

	FormatPVRTC12BPPUnormBlockIMG: "VK_FORMAT_PVRTC1_2BPP_UNORM_BLOCK_IMG",
	FormatPVRTC14BPPUnormBlockIMG: "VK_FORMAT_PVRTC1_4BPP_UNORM_BLOCK_IMG",
	FormatPVRTC22BPPUnormBlockIMG: "VK_FORMAT_PVRTC2_2BPP_UNORM_BLOCK_IMG",
	FormatPVRTC24BPPUnormBlockIMG: "VK_FORMAT_PVRTC2_4BPP_UNORM_BLOCK_IMG",
	FormatPVRTC12BPPSrgbBlockIMG:  "VK_FORMAT_PVRTC1_2BPP_SRGB_BLOCK_IMG",
	FormatPVRTC14BPPSrgbBlockIMG:  "VK_FORMAT_PVRTC1_4BPP_SRGB_BLOCK_IMG",
	FormatPVRTC22BPPSrgbBlockIMG:  "VK_FORMAT_PVRTC2_2BPP_SRGB_BLOCK_IMG",
	FormatPVRTC24BPPSrgbBlockIMG:  "VK_FORMAT_PVRTC2_4BPP_SRGB_BLOCK_IMG",

	FormatASTC4x4SfloatBlockEXT:   "VK_FORMAT_ASTC_4x4_SFLOAT_BLOCK_EXT",
	FormatASTC5x4SfloatBlockEXT:   "VK_FORMAT_ASTC_5x4_SFLOAT_BLOCK_EXT",
	FormatASTC5x5SfloatBlockEXT:   "VK_FORMAT_ASTC_5x5_SFLOAT_BLOCK_EXT",
	FormatASTC6x5SfloatBlockEXT:   "VK_FORMAT_ASTC_6x5_SFLOAT_BLOCK_EXT",
	FormatASTC6x6SfloatBlockEXT:   "VK_FORMAT_ASTC_6x6_SFLOAT_BLOCK_EXT",
	FormatASTC8x5SfloatBlockEXT:   "VK_FORMAT_ASTC_8x5_SFLOAT_BLOCK_EXT",
	FormatASTC8x6SfloatBlockEXT:   "VK_FORMAT_ASTC_8x6_SFLOAT_BLOCK_EXT",
	FormatASTC8x8SfloatBlockEXT:   "VK_FORMAT_ASTC_8x8_SFLOAT_BLOCK_EXT",
	FormatASTC10x5SfloatBlockEXT:  "VK_FORMAT_ASTC_10x5_SFLOAT_BLOCK_EXT",
	FormatASTC10x6SfloatBlockEXT:  "VK_FORMAT_ASTC_10x6_SFLOAT_BLOCK_EXT",
	FormatASTC10x8SfloatBlockEXT:  "VK_FORMAT_ASTC_10x8_SFLOAT_BLOCK_EXT",
	FormatASTC10x10SfloatBlockEXT: "VK_FORMAT_ASTC_10x10_SFLOAT_BLOCK_EXT",
	FormatASTC12x10SfloatBlockEXT: "VK_FORMAT_ASTC_12x10_SFLOAT_BLOCK_EXT",
	FormatASTC12x12SfloatBlockEXT: "VK_FORMAT_ASTC_12x12_SFLOAT_BLOCK_EXT",

	FormatG8B8G8R8422Unorm:                     "VK_FORMAT_G8B8G8R8_422_UNORM",
	FormatB8G8R8G8422Unorm:                     "VK_FORMAT_B8G8R8G8_422_UNORM",
	FormatG8B8R83Plane420Unorm:                 "VK_FORMAT_G8_B8_R8_3PLANE_420_UNORM",
	FormatG8B8R82Plane420Unorm:                 "VK_FORMAT_G8_B8R8_2PLANE_420_UNORM",
	FormatG8B8R83Plane422Unorm:                 "VK_FORMAT_G8_B8_R8_3PLANE_422_UNORM",
	FormatG8B8R82Plane422Unorm:                 "VK_FORMAT_G8_B8R8_2PLANE_422_UNORM",
	FormatG8B8R83Plane444Unorm:                 "VK_FORMAT_G8_B8_R8_3PLANE_444_UNORM",
	FormatR10X6UnormPack16:                     "VK_FORMAT_R10X6_UNORM_PACK16",
	FormatR10X6G10X6Unorm2Pack16:               "VK_FORMAT_R10X6G10X6_UNORM_2PACK16",
	FormatR10X6G10X6B10X6A10X6Unorm4Pack16:     "VK_FORMAT_R10X6G10X6B10X6A10X6_UNORM_4PACK16",
	FormatG10X6B10X6G10X6R10X6422Unorm4Pack16:  "VK_FORMAT_G10X6B10X6G10X6R10X6_422_UNORM_4PACK16",
	FormatB10X6G10X6R10X6G10X6422Unorm4Pack16:  "VK_FORMAT_B10X6G10X6R10X6G10X6_422_UNORM_4PACK16",
	FormatG10X6B10X6R10X63Plane420Unorm3Pack16: "VK_FORMAT_G10X6_B10X6_R10X6_3PLANE_420_UNORM_3PACK16",
	FormatG10X6B10X6R10X62Plane420Unorm3Pack16: "VK_FORMAT_G10X6_B10X6R10X6_2PLANE_420_UNORM_3PACK16",
	FormatG10X6B10X6R10X63Plane422Unorm3Pack16: "VK_FORMAT_G10X6_B10X6_R10X6_3PLANE_422_UNORM_3PACK16",
	FormatG10X6B10X6R10X62Plane422Unorm3Pack16: "VK_FORMAT_G10X6_B10X6R10X6_2PLANE_422_UNORM_3PACK16",
	FormatG10X6B10X6R10X63Plane444Unorm3Pack16: "VK_FORMAT_G10X6_B10X6_R10X6_3PLANE_444_UNORM_3PACK16",
	FormatR12X4UnormPack16:                     "VK_FORMAT_R12X4_UNORM_PACK16",
	FormatR12X4G12X4Unorm2Pack16:               "VK_FORMAT_R12X4G12X4_UNORM_2PACK16",
	FormatR12X4G12X4B12X4A12X4Unorm4Pack16:     "VK_FORMAT_R12X4G12X4B12X4A12X4_UNORM_4PACK16",
	FormatG12X4B12X4G12X4R12X4422Unorm4Pack16:  "VK_FORMAT_G12X4B12X4G12X4R12X4_422_UNORM_4PACK16",
	FormatB12X4G12X4R12X4G12X4422Unorm4Pack16:  "VK_FORMAT_B12X4G12X4R12X4G12X4_422_UNORM_4PACK16",
	FormatG12X4B12X4R12X43Plane420Unorm3Pack16: "VK_FORMAT_G12X4_B12X4_R12X4_3PLANE_420_UNORM_3PACK16",
	FormatG12X4B12X4R12X42Plane420Unorm3Pack16: "VK_FORMAT_G12X4_B12X4R12X4_2PLANE_420_UNORM_3PACK16",
	FormatG12X4B12X4R12X43Plane422Unorm3Pack16: "VK_FORMAT_G12X4_B12X4_R12X4_3PLANE_422_UNORM_3PACK16",
	FormatG12X4B12X4R12X42Plane422Unorm3Pack16: "VK_FORMAT_G12X4_B12X4R12X4_2PLANE_422_UNORM_3PACK16",
	FormatG12X4B12X4R12X43Plane444Unorm3Pack16: "VK_FORMAT_G12X4_B12X4_R12X4_3PLANE_444_UNORM_3PACK16",
	FormatG16B16G16R16422Unorm:                 "VK_FORMAT_G16B16G16R16_422_UNORM",
	FormatB16G16R16G16422Unorm:                 "VK_FORMAT_B16G16R16G16_422_UNORM",
	FormatG16B16R163Plane420Unorm:              "VK_FORMAT_G16_B16_R16_3PLANE_420_UNORM",
	FormatG16B16R162Plane420Unorm:              "VK_FORMAT_G16_B16R16_2PLANE_420_UNORM",
	FormatG16B16R163Plane422Unorm:              "VK_FORMAT_G16_B16_R16_3PLANE_422_UNORM",
	FormatG16B16R162Plane422Unorm:              "VK_FORMAT_G16_B16R16_2PLANE_422_UNORM",
	FormatG16B16R163Plane444Unorm:              "VK_FORMAT_G16_B16_R16_3PLANE_444_UNORM",

	FormatASTC3x3x3UnormBlockEXT:  "VK_FORMAT_ASTC_3x3x3_UNORM_BLOCK_EXT",
	FormatASTC3x3x3SrgbBlockEXT:   "VK_FORMAT_ASTC_3x3x3_SRGB_BLOCK_EXT",
	FormatASTC3x3x3SfloatBlockEXT: "VK_FORMAT_ASTC_3x3x3_SFLOAT_BLOCK_EXT",
	FormatASTC4x3x3UnormBlockEXT:  "VK_FORMAT_ASTC_4x3x3_UNORM_BLOCK_EXT",
	FormatASTC4x3x3SrgbBlockEXT:   "VK_FORMAT_ASTC_4x3x3_SRGB_BLOCK_EXT",
	FormatASTC4x3x3SfloatBlockEXT: "VK_FORMAT_ASTC_4x3x3_SFLOAT_BLOCK_EXT",
	FormatASTC4x4x3UnormBlockEXT:  "VK_FORMAT_ASTC_4x4x3_UNORM_BLOCK_EXT",
	FormatASTC4x4x3SrgbBlockEXT:   "VK_FORMAT_ASTC_4x4x3_SRGB_BLOCK_EXT",
	FormatASTC4x4x3SfloatBlockEXT: "VK_FORMAT_ASTC_4x4x3_SFLOAT_BLOCK_EXT",
	FormatASTC4x4x4UnormBlockEXT:  "VK_FORMAT_ASTC_4x4x4_UNORM_BLOCK_EXT",
	FormatASTC4x4x4SrgbBlockEXT:   "VK_FORMAT_ASTC_4x4x4_SRGB_BLOCK_EXT",
	FormatASTC4x4x4SfloatBlockEXT: "VK_FORMAT_ASTC_4x4x4_SFLOAT_BLOCK_EXT",
	FormatASTC5x4x4UnormBlockEXT:  "VK_FORMAT_ASTC_5x4x4_UNORM_BLOCK_EXT",
	FormatASTC5x4x4SrgbBlockEXT:   "VK_FORMAT_ASTC_5x4x4_SRGB_BLOCK_EXT",
	FormatASTC5x4x4SfloatBlockEXT: "VK_FORMAT_ASTC_5x4x4_SFLOAT_BLOCK_EXT",
	FormatASTC5x5x4UnormBlockEXT:  "VK_FORMAT_ASTC_5x5x4_UNORM_BLOCK_EXT",
	FormatASTC5x5x4SrgbBlockEXT:   "VK_FORMAT_ASTC_5x5x4_SRGB_BLOCK_EXT",
	FormatASTC5x5x4SfloatBlockEXT: "VK_FORMAT_ASTC_5x5x4_SFLOAT_BLOCK_EXT",
	FormatASTC5x5x5UnormBlockEXT:  "VK_FORMAT_ASTC_5x5x5_UNORM_BLOCK_EXT",
	FormatASTC5x5x5SrgbBlockEXT:   "VK_FORMAT_ASTC_5x5x5_SRGB_BLOCK_EXT",
	FormatASTC5x5x5SfloatBlockEXT: "VK_FORMAT_ASTC_5x5x5_SFLOAT_BLOCK_EXT",
	FormatASTC6x5x5UnormBlockEXT:  "VK_FORMAT_ASTC_6x5x5_UNORM_BLOCK_EXT",
	FormatASTC6x5x5SrgbBlockEXT:   "VK_FORMAT_ASTC_6x5x5_SRGB_BLOCK_EXT",
	FormatASTC6x5x5SfloatBlockEXT: "VK_FORMAT_ASTC_6x5x5_SFLOAT_BLOCK_EXT",
	FormatASTC6x6x5UnormBlockEXT:  "VK_FORMAT_ASTC_6x6x5_UNORM_BLOCK_EXT",
	FormatASTC6x6x5SrgbBlockEXT:   "VK_FORMAT_ASTC_6x6x5_SRGB_BLOCK_EXT",
	FormatASTC6x6x5SfloatBlockEXT: "VK_FORMAT_ASTC_6x6x5_SFLOAT_BLOCK_EXT",
	FormatASTC6x6x6UnormBlockEXT:  "VK_FORMAT_ASTC_6x6x6_UNORM_BLOCK_EXT",
	FormatASTC6x6x6SrgbBlockEXT:   "VK_FORMAT_ASTC_6x6x6_SRGB_BLOCK_EXT",
	FormatASTC6x6x6SfloatBlockEXT: "VK_FORMAT_ASTC_6x6x6_SFLOAT_BLOCK_EXT",

	FormatA4R4G4B4UnormPack16EXT: "VK_FORMAT_A4R4G4B4_UNORM_PACK16_EXT",
	FormatA4B4G4R4UnormPack16EXT: "VK_FORMAT_A4B4G4R4_UNORM_PACK16_EXT",
}
