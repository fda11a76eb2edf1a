package compress

// zstdLevel is the compression level used by both Zstd backends.
const zstdLevel = 3

// ZstdCompressor compresses payloads as Zstandard frames.
//
// The pure-Go backend from klauspost/compress is used by default. Building with
// cgo and the gozstd tag switches to the libzstd binding from valyala/gozstd; the
// frames are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
//
// Example:
//
//	codec := compress.NewZstdCompressor()
//	frame, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
