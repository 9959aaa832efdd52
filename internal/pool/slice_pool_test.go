package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice_Length(t *testing.T) {
	s, cleanup := GetFloat64Slice(128)
	defer cleanup()

	require.Len(t, s, 128)
}

func TestGetFloat64Slice_Zero(t *testing.T) {
	s, cleanup := GetFloat64Slice(0)
	defer cleanup()

	require.Len(t, s, 0)
}

func TestGetFloat64Slice_Reuse(t *testing.T) {
	s, cleanup := GetFloat64Slice(64)
	for i := range s {
		s[i] = float64(i)
	}
	cleanup()

	// A fresh slice must honor its requested length regardless of what the
	// pool returns.
	s2, cleanup2 := GetFloat64Slice(32)
	defer cleanup2()
	require.Len(t, s2, 32)
}
