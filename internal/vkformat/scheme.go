package vkformat

import "fmt"

// SupercompressionScheme is the KTX2 supercompressionScheme enumeration.
type SupercompressionScheme uint32

const (
	SchemeNone    SupercompressionScheme = 0
	SchemeBasisLZ SupercompressionScheme = 1
	SchemeZstd    SupercompressionScheme = 2
	SchemeZLIB    SupercompressionScheme = 3

	// SchemeBeginRange and SchemeEndRange bound the defined schemes.
	SchemeBeginRange = SchemeNone
	SchemeEndRange   = SchemeZLIB

	// SchemeBeginVendorRange and SchemeEndVendorRange bound the reserved
	// vendor range. Values in (BeginVendorRange, EndVendorRange] are legal
	// but cannot be validated.
	SchemeBeginVendorRange SupercompressionScheme = 0x10000
	SchemeEndVendorRange   SupercompressionScheme = 0x1ffff
)

// SchemeHasGlobalData reports whether the scheme requires a
// supercompressionGlobalData region.
func SchemeHasGlobalData(scheme SupercompressionScheme) bool {
	return scheme == SchemeBasisLZ
}

// SchemeIsBlockCompressed reports whether the scheme implies a
// block-compressed payload regardless of vkFormat.
func SchemeIsBlockCompressed(scheme SupercompressionScheme) bool {
	return scheme == SchemeBasisLZ
}

// SchemeIsVendor reports whether the scheme falls into the reserved vendor
// range.
func SchemeIsVendor(scheme SupercompressionScheme) bool {
	return SchemeBeginVendorRange < scheme && scheme <= SchemeEndVendorRange
}

var schemeNames = map[SupercompressionScheme]string{
	SchemeNone:    "KTX_SS_NONE",
	SchemeBasisLZ: "KTX_SS_BASIS_LZ",
	SchemeZstd:    "KTX_SS_ZSTD",
	SchemeZLIB:    "KTX_SS_ZLIB",
}

// String renders the scheme's name. Vendor schemes render as
// "Vendor (0xHEX)", undefined values as "(0xHEX)".
func (s SupercompressionScheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	if SchemeIsVendor(s) {
		return fmt.Sprintf("Vendor (0x%X)", uint32(s))
	}
	return fmt.Sprintf("(0x%X)", uint32(s))
}
