package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paramfit/paramfit/format"
)

func testPayload() []byte {
	// Repetitive enough that every real codec actually shrinks it.
	return bytes.Repeat([]byte("coef=1.9876543210,loss=0.0123;"), 64)
}

func TestGetCodec_Builtin(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "%s compress", ct)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "%s decompress", ct)
		require.Equal(t, payload, restored, "%s round trip", ct)
	}
}

func TestCodecs_Shrink(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink repetitive data", ct)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestLZ4_CorruptedInput(t *testing.T) {
	codec := NewLZ4Compressor()
	_, err := codec.Decompress([]byte{0xff, 0xfe, 0xfd, 0xfc})
	require.Error(t, err)
}
