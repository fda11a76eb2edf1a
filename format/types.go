package format

type (
	Format          uint8
	CompressionType uint8
)

const (
	FormatRaw          Format = 0x1 // FormatRaw represents raw 16-bit code units, little endian in byte form.
	FormatUTF16        Format = 0x2 // FormatUTF16 represents 15-bit units stored as code points U+0020..U+801F.
	FormatURIComponent Format = 0x3 // FormatURIComponent represents 6-bit units in a URI-safe alphabet.
	FormatBase64       Format = 0x4 // FormatBase64 represents 6-bit units in the standard Base64 alphabet.
	FormatBytes        Format = 0x5 // FormatBytes represents 16-bit units as big-endian byte pairs.

	CompressionNone     CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd     CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2       CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4      CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionLZString CompressionType = 0x5 // CompressionLZString represents lz-string compression.
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "Raw"
	case FormatUTF16:
		return "UTF16"
	case FormatURIComponent:
		return "URIComponent"
	case FormatBase64:
		return "Base64"
	case FormatBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// IsValid reports whether f is one of the defined formats.
func (f Format) IsValid() bool {
	return f >= FormatRaw && f <= FormatBytes
}

// IsText reports whether the compressed form of f is a string.
func (f Format) IsText() bool {
	return f == FormatUTF16 || f == FormatURIComponent || f == FormatBase64
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZString:
		return "LZString"
	default:
		return "Unknown"
	}
}
