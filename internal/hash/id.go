// Package hash provides the 64-bit fingerprinting used to identify sample
// tables.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest incrementally hashes strings and float64 columns into a single
// 64-bit fingerprint. The zero value is not usable; create one with NewDigest.
type Digest struct {
	h *xxhash.Digest
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// WriteString adds a string to the digest, length-prefixed so that
// ("ab","c") and ("a","bc") produce different fingerprints.
func (d *Digest) WriteString(s string) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = d.h.Write(buf[:])
	_, _ = d.h.WriteString(s)
}

// WriteFloats adds a float64 slice to the digest using the IEEE 754 bit
// patterns, so the fingerprint is stable across platforms and distinguishes
// values (such as 0.0 and -0.0) that compare equal but differ in bits.
func (d *Digest) WriteFloats(values []float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(values)))
	_, _ = d.h.Write(buf[:])
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.h.Write(buf[:])
	}
}

// Sum64 returns the current fingerprint.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}
