package issue

// The catalog. Messages and details templates follow the KTX 2.0
// specification's validation rules; details templates are fmt format
// strings whose arguments are documented by usage in internal/validate.

// I/O failures (1000 range). All fatal: without readable input there is
// nothing left to validate.
var (
	FileOpen = fatal(1001,
		"Failed to open file.",
		"Failed to open file %s: %s.")
	FileRead = fatal(1002,
		"Failed to read the file.",
		"File read failed: %s.")
	UnexpectedEOF = fatal(1003,
		"Unexpected end of file.",
		"Unexpected end of file. Expected %d more byte for %s but only found %d byte.")
	FileSeekEndFailure = fatal(1004,
		"Failed to seek to the end of the file.",
		"Failed to seek to the end of the file: %s.")
	FileTellFailure = fatal(1005,
		"Failed to determine the size of the file.",
		"Failed to determine the size of the file: %s.")
	RewindFailure = fatal(1006,
		"Failed to seek to the start of the file.",
		"Failed to seek to the start of the file: %s.")
	UnexpectedEOFSeek = fatal(1007,
		"Unexpected end of file. Requested seek position is not in the file.",
		"Requested seek position is %d for accessing %s, but the file is only %d byte long.")
)

// File-level failures (2000 range).
var (
	NotKTX2 = fatal(2001,
		"Not a KTX2 file.",
		"Not a KTX2 file. The beginning of the file does not matches the expected file identifier \"«KTX 20»\\r\\n\\x1A\\n\".")
	IncorrectDataSize = errorIssue(2003,
		"Size of image data in file does not match size calculated from levelIndex.",
		"The file has %d byte of image data, but the level index adds up to %d byte.")
)

// Header failures (3000 range).
var (
	ProhibitedFormat = errorIssue(3001,
		"Prohibited VkFormat.",
		"Prohibited VkFormat %s cannot be used in a KTX2 file.")
	InvalidFormat = errorIssue(3002,
		"Invalid VkFormat.",
		"Invalid VkFormat %s.")
	UnknownFormat = warning(3003,
		"Unknown VkFormat. Possibly an extension format.",
		"Unknown VkFormat %s, possibly an extension format.")
	VkFormatAndBasis = errorIssue(3004,
		"Invalid VkFormat. VkFormat must be VK_FORMAT_UNDEFINED for BASIS_LZ supercompression.",
		"VkFormat is %s but for supercompressionScheme BASIS_LZ it must be VK_FORMAT_UNDEFINED.")
	TypeSizeNotOne = errorIssue(3005,
		"Invalid typeSize. typeSize must be 1 for block-compressed or supercompressed formats.",
		"typeSize is %d but for block-compressed or supercompressed format %s it must be 1.")
	WidthZero = errorIssue(3006,
		"Invalid pixelWidth. pixelWidth cannot be 0.",
		"pixelWidth is 0, but textures must have width.")
	BlockCompressedNoHeight = errorIssue(3007,
		"Invalid pixelHeight. pixelHeight cannot be 0 for a block compressed formats.",
		"pixelHeight is 0, but for block-compressed format %s it cannot be 0.")
	CubeHeightWidthMismatch = errorIssue(3008,
		"Mismatching pixelWidth and pixelHeight for a cube map.",
		"pixelWidth is %d and pixelHeight is %d, but for a cube map they must be equal.")
	DepthNoHeight = errorIssue(3009,
		"Invalid pixelHeight. pixelHeight cannot be 0 if pixelDepth is not also 0.",
		"pixelHeight is 0 and pixelDepth is %d, but pixelHeight cannot be 0 if pixelDepth is not 0 as well.")
	DepthBlockCompressedNoDepth = errorIssue(3010,
		"Invalid pixelDepth. pixelDepth cannot be 0 for block-compressed formats with non-zero block depth.",
		"pixelDepth is 0, but for format %s (which is a block-compressed format with non-zero block depth) it cannot be 0.")
	DepthStencilFormatWithDepth = errorIssue(3011,
		"Invalid pixelDepth. pixelDepth must be 0 for depth or stencil formats.",
		"pixelDepth is %d but for depth or stencil format %s it must be 0.")

	// 3012 unused.

	CubeWithDepth = errorIssue(3013,
		"Invalid pixelDepth. pixelDepth must be 0 for cube maps.",
		"pixelDepth is %d but for cube maps it must be 0 (cube map faces must be 2D).")
	ThreeDArray = warning(3014,
		"File contains a 3D array texture.",
		"File contains a 3D array texture. No APIs support these.")
	InvalidFaceCount = errorIssue(3015,
		"Invalid faceCount. faceCount must be either 6 for Cubemaps and Cubemap Arrays or 1 otherwise.",
		"faceCount is %d but it must be either 6 for Cubemaps and Cubemap Arrays or 1 otherwise.")
	TooManyMipLevels = errorIssue(3016,
		"Too many mip levels",
		"levelCount is %d for the largest image dimension %d is too many levels.")
	BlockCompressedNoLevel = errorIssue(3017,
		"Invalid levelCount. levelCount cannot be 0 for block-compressed formats.",
		"levelCount is 0 but for block-compressed format %s it cannot be 0.")
	VendorSupercompression = warning(3018,
		"Using vendor supercompressionScheme. Cannot validate.",
		"supercompressionScheme is 0x%X which falls into the reserved vendor range. Cannot validate.")
	InvalidSupercompression = errorIssue(3019,
		"Invalid supercompressionScheme.",
		"Invalid supercompressionScheme: 0x%X.")
)

// Index failures (still the 3000 range, following the header fields they
// belong to).
var (
	IndexDFDZeroOffset = errorIssue(3020,
		"Invalid dataFormatDescriptor.byteOffset. byteOffset cannot be 0.",
		"dataFormatDescriptor.byteOffset is 0, but the file must have a dataFormatDescriptor.")
	IndexDFDAlignment = errorIssue(3021,
		"Invalid dataFormatDescriptor.byteOffset. Defined region must be aligned to 4 byte.",
		"dataFormatDescriptor.byteOffset is %d, but the byteOffset must be aligned to 4 byte.")
	IndexDFDZeroLength = errorIssue(3022,
		"Invalid dataFormatDescriptor.byteLength. byteLength cannot be 0.",
		"dataFormatDescriptor.byteLength is 0, but the file must have a dataFormatDescriptor.")
	IndexDFDInvalid = errorIssue(3023,
		"Invalid dataFormatDescriptor index. Defined region cannot exceed the size of the file.",
		"dataFormatDescriptor.byteOffset is %d and dataFormatDescriptor.byteLength is %d, but the file is only %d byte long.")

	IndexKVDOffsetWithoutLength = errorIssue(3024,
		"Invalid keyValueData.byteOffset. byteOffset must be 0 if the byteLength is 0.",
		"keyValueData.byteOffset is %d, but if the byteLength is 0 it must also be 0.")
	IndexKVDAlignment = errorIssue(3025,
		"Invalid keyValueData.byteOffset. Defined region must be aligned to 4 byte.",
		"keyValueData.byteOffset is %d, but the byteOffset must be aligned to 4 byte.")
	IndexKVDInvalid = errorIssue(3026,
		"Invalid keyValueData index. Defined region cannot exceed the size of the file.",
		"keyValueData.byteOffset is %d and keyValueData.byteLength is %d, but the file is only %d byte long.")

	IndexSGDOffsetWithoutLength = errorIssue(3027,
		"Invalid supercompressionGlobalData.byteOffset. byteOffset must be 0 if the byteLength is 0.",
		"supercompressionGlobalData.byteOffset is %d, but if the byteLength is 0 it must also be 0.")
	IndexSGDAlignment = errorIssue(3028,
		"Invalid supercompressionGlobalData.byteOffset. Defined region must be aligned to 8 byte.",
		"supercompressionGlobalData.byteOffset is %d, but the byteOffset must be aligned to 8 byte.")
	IndexSGDMissing = errorIssue(3029,
		"Invalid supercompressionGlobalData.byteLength. byteLength cannot be 0 for supercompression schemes with global data.",
		"supercompressionGlobalData.byteLength is 0, but for supercompression scheme %s (which has global data) it cannot be 0.")
	IndexSGDExists = errorIssue(3030,
		"Invalid supercompressionGlobalData.byteLength. byteLength must be 0 for supercompression schemes without global data.",
		"supercompressionGlobalData.byteLength is %d, but for supercompression scheme %s (which has no global data) it must be 0.")
	IndexSGDInvalid = errorIssue(3031,
		"Invalid supercompressionGlobalData index. Defined region cannot exceed the size of the file.",
		"supercompressionGlobalData.byteOffset is %d and supercompressionGlobalData.byteLength is %d, but the file is only %d byte long.")

	IndexDFDContinuity = errorIssue(3032,
		"Invalid dataFormatDescriptor.byteOffset. DFD region must immediately follow the level index.",
		"dataFormatDescriptor.byteOffset is %d, but DFD region must immediately follow (with 4 byte alignment) the level index so it must %d.")
	IndexKVDContinuity = errorIssue(3033,
		"Invalid keyValueData.byteOffset. KVD region must immediately follow the DFD region.",
		"keyValueData.byteOffset is %d, but KVD region must immediately follow (with 4 byte alignment) the DFD region so it must %d.")
	IndexSGDContinuity = errorIssue(3034,
		"Invalid supercompressionGlobalData.byteOffset. SGD region must immediately follow the KVD region.",
		"supercompressionGlobalData.byteOffset is %d, but SGD region must immediately follow (with 8 byte alignment) the KVD region so it must %d.")

	IndexKVDLengthWithoutOffset = errorIssue(3035,
		"Invalid keyValueData.byteLength. byteLength must be 0 if the byteOffset is 0.",
		"keyValueData.byteLength is %d, but if the byteOffset is 0 it must also be 0.")
	IndexSGDLengthWithoutOffset = errorIssue(3036,
		"Invalid supercompressionGlobalData.byteLength. byteLength must be 0 if the byteOffset is 0.",
		"supercompressionGlobalData.byteLength is %d, but if the byteOffset is 0 it must also be 0.")
)

// Level index failures (4000 range).
var (
	LevelZeroOffsetOrLength = errorIssue(4001,
		"Invalid level index entry. byteOffset and byteLength cannot be 0.",
		"Level %d byteOffset is %d and byteLength is %d, but neither can be 0.")
	LevelIncorrectByteOffset = errorIssue(4002,
		"Invalid level index entry. byteOffset does not match the expected value.",
		"Level %d byteOffset is %d, but it must be %d.")
	LevelUnalignedOffset = errorIssue(4003,
		"Invalid level index entry. byteOffset is not aligned to the required alignment.",
		"Level %d byteOffset is %d, but it must be aligned to %d byte.")
	LevelIncorrectLevelOrder = errorIssue(4004,
		"Invalid level index. Larger mip levels are before smaller.",
		"Level %d byteLength is %d, but it cannot be smaller than the byteLength %d of the next smaller mip level.")
)

// Metadata failures (7000 range). Entries below 7100 concern the key/value
// wire format; 7100 and up concern the values of individual reserved keys.
var (
	TooManyEntry = errorIssue(7001,
		"Invalid keyValueData. The number of key-value entries exceeds the maximum allowed.",
		"The number of key-value entries exceeds the maximum allowed %d.")
	NotEnoughDataForAnEntry = errorIssue(7002,
		"Invalid keyValueData. Not enough data left in keyValueData to process another key-value entry",
		"KeyValueData has %d byte unprocessed, but for a key value entry at least 6 byte is required (4 byte size + 1 byte key + 1 byte \\0).")
	KeyValuePairSizeTooBig = errorIssue(7003,
		"Invalid keyAndValueByteLength. The value is bigger than the amount of bytes left in the keyValueData.",
		"keyAndValueByteLength is %d, but the keyValueData only has %d byte left for the key-value pair.")
	KeyValuePairSizeTooSmall = errorIssue(7004,
		"Invalid keyAndValueByteLength. keyAndValueByteLength must be at least 2.",
		"keyAndValueByteLength is %d, but it must be at least 2 (1 byte key + 1 byte \\0).")
	KeyMissingNullTerminator = errorIssue(7005,
		"Invalid keyValueData entry is missing the NULL terminator. Every key-value entry must have a NULL terminator separating the key from the value.",
		"The key-value entry \"%s\" is missing the NULL terminator, but every key-value entry must have a NULL terminator separating the key from the value.")
	KeyForbiddenBOM = errorIssue(7006,
		"Invalid key in keyValueData. Key cannot contain BOM.",
		"The beginning of the key \"%s\" has forbidden BOM.")
	KeyInvalidUTF8 = errorIssue(7007,
		"Invalid key in keyValueData. Key must be a valid UTF8 string.",
		"Key is \"%s\", which contains an invalid UTF8 character at position: %d.")

	SizesDontAddUp = errorIssue(7008,
		"Invalid keyValueData. keyValueData.byteLength must add up to sum of the key-value entries with paddings.",
		"The processed keyValueData length is %d, but keyValueData.byteLength is %d, but they must match.")
	UnknownReservedKey = errorIssue(7009,
		"Invalid key in keyValueData. Keys with \"KTX\" or \"ktx\" prefix are reserved.",
		"The key is \"%s\", but its not recognized and every key with \"KTX\" or \"ktx\" prefix are reserved.")
	CustomMetadata = warning(7010,
		"Custom key in keyValueData.",
		"Custom key \"%s\" found in keyValueData.")
	PaddingNotZero = errorIssue(7011,
		"Invalid padding byte value. Every padding byte's value must be 0.",
		"A padding byte value is %d %s, but it must be 0.")

	OutOfOrder = errorIssue(7012,
		"Invalid keyValueData. Key-value entries must be sorted by their key.",
		"Key-value entries are not sorted, but they must be sorted by their key.")
	DuplicateKey = errorIssue(7013,
		"Invalid keyValueData. Keys must be unique.",
		"There is a duplicate key, but the keys must be unique.")
)

// Reserved key value failures (7100 and up).
var (
	KTXcubemapIncompleteInvalidSize = errorIssue(7100,
		"Invalid KTXcubemapIncomplete metadata. The size of the value must be 1 byte.",
		"The size of the KTXcubemapIncomplete value is %d, but it must be 1 byte.")
	KTXcubemapIncompleteInvalidValue = errorIssue(7101,
		"Invalid KTXcubemapIncomplete value. The two MSB must be 0.",
		"The value is %08b but the two MSB must be 0 (00XXXXXX).")
	KTXcubemapIncompleteAllBitSet = warning(7102,
		"KTXcubemapIncomplete is not incomplete. All face is marked present.",
		"All face bit is set as present. Prefer using normal Cube maps instead.")
	KTXcubemapIncompleteNoBitSet = errorIssue(7103,
		"Invalid KTXcubemapIncomplete value. No face is marked present.",
		"No face bit is set as present, but at least 1 face must be present.")
	KTXcubemapIncompleteIncompatibleLayerCount = errorIssue(7104,
		"Incompatible KTXcubemapIncomplete and layerCount. layerCount must be the multiple of the number of faces present.",
		"layerCount is %d and KTXcubemapIncomplete indicates %d faces present, but layerCount must the multiple of the number of faces present.")
	KTXcubemapIncompleteWithFaceCountNot1 = errorIssue(7105,
		"Invalid faceCount. faceCount must be 1 if KTXcubemapIncomplete is present.",
		"faceCount is %d, but if KTXcubemapIncomplete is present it must be 1.")

	KTXorientationInvalidSize = errorIssue(7106,
		"Invalid KTXorientation metadata. The size of the value must be 2 to 4 byte (including the NULL terminator).",
		"The size of the KTXorientation value is %d, but it must be 2 to 4 byte (including the NULL terminator).")
	KTXorientationMissingNull = errorIssue(7107,
		"Invalid KTXorientation metadata. The value is missing the NULL terminator.",
		"The last byte of the value must be a NULL terminator.")
	KTXorientationIncorrectDimension = errorIssue(7108,
		"Invalid KTXorientation value. The number of dimensions specified must match the number of dimension in the texture type.",
		"The value has %d dimension, but the dimension of the texture type has %d and they must match.")
	KTXorientationInvalidValue = errorIssue(7109,
		"Invalid KTXorientation value. The value must match /^[rl]$/ for 1D, /^[rl][du]$/ for 2D and /^[rl][du][oi]$/ for 3D texture types.",
		"Dimension %d is \"%s\", but for it must be either \"%s\" or \"%s\".")

	KTXglFormatInvalidSize = errorIssue(7110,
		"Invalid KTXglFormat metadata. The size of the value must be 12 byte.",
		"The size of KTXglFormat value is %d, but it must be 12 byte.")
	KTXglFormatWithVkFormat = errorIssue(7111,
		"Incompatible KTXglFormatWithVkFormat with vkFormat. vkFormat must be VK_FORMAT_UNDEFINED if KTXglFormatWithVkFormat is present.",
		"vkFormat is %s, but if KTXglFormatWithVkFormat is present it must VK_FORMAT_UNDEFINED.")
	KTXglFormatInvalidValueForCompressed = errorIssue(7112,
		"Invalid KTXglFormatInvalidValue value. glFormat and glType must be zero for compressed formats.",
		"glFormat is %d and glType is %d, but for compressed formats both must be zero.")

	KTXdxgiFormatInvalidSize = errorIssue(7113,
		"Invalid KTXdxgiFormat__ metadata. The size of the value must be 4 byte.",
		"The size of KTXdxgiFormat__ value is %d, but it must be 4 byte.")
	KTXdxgiFormatWithVkFormat = errorIssue(7114,
		"Incompatible KTXdxgiFormat__ with vkFormat. vkFormat must be VK_FORMAT_UNDEFINED if KTXdxgiFormat__ is present.",
		"vkFormat is %s, but if KTXdxgiFormat__ is present it must VK_FORMAT_UNDEFINED.")

	KTXmetalPixelFormatInvalidSize = errorIssue(7115,
		"Invalid KTXmetalPixelFormat metadata. The size of the value must be 4 byte.",
		"The size of KTXmetalPixelFormat value is %d, but it must be 4 byte.")
	KTXmetalPixelFormatWithVkFormat = errorIssue(7116,
		"Incompatible KTXmetalPixelFormat with vkFormat. vkFormat must be VK_FORMAT_UNDEFINED if KTXmetalPixelFormat is present.",
		"vkFormat is %s, but if KTXmetalPixelFormat is present it must VK_FORMAT_UNDEFINED.")

	KTXswizzleInvalidSize = errorIssue(7117,
		"Invalid KTXswizzle metadata. The size of the value must be 5 byte (including the NULL terminator).",
		"The size of KTXswizzle value is %d, but it must be 5 byte (including the NULL terminator).")
	KTXswizzleMissingNull = errorIssue(7118,
		"Invalid KTXswizzle metadata. The value is missing the NULL terminator.",
		"The last byte of the value must be a NULL terminator.")
	KTXswizzleInvalidValue = errorIssue(7119,
		"Invalid KTXswizzle value. The value must match /^[rgba01]{4}$/.",
		"The character at position %d is \"%s\", but it must be one of \"rgba01\".")
	KTXswizzleWithDepthOrStencil = warning(7121,
		"KTXswizzle has no effect on depth or stencil texture formats.",
		"KTXswizzle is present but for vkFormat %s it has no effect.")

	KTXwriterMissingNull = errorIssue(7122,
		"Invalid KTXwriter metadata. The value is missing the NULL terminator.",
		"The last byte of the value must be a NULL terminator.")
	KTXwriterInvalidUTF8 = warning(7123,
		"Invalid KTXwriter value. The value must be a valid UTF8 string.",
		"The value contains an invalid UTF8 character at position: %d.")
	KTXwriterRequiredButMissing = errorIssue(7124,
		"Missing KTXwriter metadata. When KTXwriterScParams is present KTXwriter must also be present",
		"KTXwriter metadata is missing. When KTXwriterScParams is present KTXwriter must also be present")
	KTXwriterMissing = warning(7125,
		"Missing KTXwriter metadata. Writers are strongly urged to identify themselves via this.",
		"KTXwriter metadata is missing. Writers are strongly urged to identify themselves via this.")

	KTXwriterScParamsMissingNull = errorIssue(7126,
		"Invalid KTXwriterScParams metadata. The value is missing the NULL terminator.",
		"The last byte of the value must be a NULL terminator.")
	KTXwriterScParamsInvalidUTF8 = warning(7127,
		"Invalid KTXwriterScParams value. The value must be a valid UTF8 string.",
		"The value contains an invalid UTF8 character at position: %d.")

	KTXastcDecodeModeInvalidValue = errorIssue(7128,
		"Invalid KTXastcDecodeMode value. The value must be either \"rgb9e5\" or \"unorm8\".",
		"The value is \"%s\", but it must be either \"rgb9e5\" or \"unorm8\".")

	KTXanimDataInvalidSize = errorIssue(7129,
		"Invalid KTXanimData metadata. The size of the value must be 12 byte.",
		"The size of KTXanimData value is %d, but it must be 12 byte.")
	KTXanimDataWithCubemapIncomplete = errorIssue(7130,
		"Incompatible KTXanimData and KTXcubemapIncomplete. They cannot both be present.",
		"KTXanimData is present together with KTXcubemapIncomplete, but they cannot both be present.")
	KTXanimDataNotArray = errorIssue(7131,
		"Invalid KTXanimData metadata. KTXanimData is only allowed for array textures.",
		"layerCount is 0, but KTXanimData is only allowed when layerCount is not 0.")

	KTXcubemapIncompleteHeightWidthMismatch = errorIssue(7132,
		"Mismatching pixelWidth and pixelHeight for an incomplete cube map.",
		"pixelWidth is %d and pixelHeight is %d, but for an incomplete cube map they must be equal.")
	KTXcubemapIncompleteWithDepth = errorIssue(7133,
		"Invalid pixelDepth. pixelDepth must be 0 if KTXcubemapIncomplete is present.",
		"pixelDepth is %d, but if KTXcubemapIncomplete is present it must be 0 (cube map faces must be 2D).")
)
