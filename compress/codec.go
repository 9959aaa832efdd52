package compress

import (
	"fmt"

	"github.com/paramfit/paramfit/format"
)

// Compressor compresses a snapshot payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload.
//
// Separate from Compressor so asymmetric implementations (write-once,
// read-many archives) can provide only the side they need.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the matching Compressor. The
	// implementation validates the data format and returns an error if the
	// data is corrupted or uses an incompatible format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Unsupported compression type error
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
