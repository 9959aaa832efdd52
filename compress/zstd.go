package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best ratio of the built-in codecs and is the right choice
// for long-term archives of many snapshots. Two implementations exist:
//
//   - Default: the pure-Go klauspost/compress encoder (zstd_pure.go)
//   - With the "gozstd" build tag: the cgo libzstd bindings (zstd_cgo.go),
//     faster when cgo is acceptable
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
