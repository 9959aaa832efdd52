// Package compress provides the compression codecs available to the
// snapshot format.
//
// Snapshot payloads are small (a handful of coefficients, a formula string
// and fit statistics per model), so codec choice rarely matters for a single
// snapshot. It matters when many snapshots are archived together, e.g. one
// per fitted dataset over time:
//
//   - CompressionNone: default; snapshots are tiny, compression is opt-in
//   - CompressionZstd: best ratio for archived snapshot batches
//   - CompressionS2: fastest, modest ratio
//   - CompressionLZ4: balanced speed and ratio
//
// Codecs are stateless values and safe for concurrent use; the zstd and lz4
// implementations pool their encoder state internally.
package compress
