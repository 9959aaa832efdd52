package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0xdeadbeefcafef00d)
		require.Len(t, buf, 8)
		require.Equal(t, uint64(0xdeadbeefcafef00d), engine.Uint64(buf))

		buf = engine.AppendUint16(buf[:0], 0xbeef)
		require.Equal(t, uint16(0xbeef), engine.Uint16(buf))
	}
}

func TestEngines_Differ(t *testing.T) {
	le := GetLittleEndianEngine().AppendUint32(nil, 1)
	be := GetBigEndianEngine().AppendUint32(nil, 1)
	require.NotEqual(t, le, be)
}
