// Package snapshot serializes fit results to a compact binary format so a
// ranked model comparison can be stored and reloaded without refitting.
//
// # Format
//
// A snapshot is a fixed header followed by a payload:
//
//	+-------+---------+-------------+-------------+-------+
//	| magic | version | compression | fingerprint | count |
//	| 4B    | 1B      | 1B          | 8B LE       | 2B LE |
//	+-------+---------+-------------+-------------+-------+
//	| payload (count model records, optionally compressed) |
//	+-------------------------------------------------------+
//
// Each model record in the payload:
//
//	family   uint8
//	metric   uint8
//	loss     float64 bits, little-endian
//	r²       float64 bits, little-endian
//	#coeffs  uint16 little-endian
//	coeffs   #coeffs × float64 bits, little-endian
//	#formula uint16 little-endian
//	formula  UTF-8 bytes
//
// The fingerprint in the header is the xxHash64 of the table the models
// were fitted on, so a loaded snapshot can be matched against its dataset.
//
// Search diagnostics (evaluation counts, convergence flags) are transient
// and are not persisted.
//
// # Usage
//
//	data, err := snapshot.Encode(result, snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := snapshot.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(restored.BestFit.Formula)
package snapshot
