package snapshot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/paramfit/paramfit/compress"
	"github.com/paramfit/paramfit/dataset"
	"github.com/paramfit/paramfit/endian"
	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/fit"
	"github.com/paramfit/paramfit/format"
	"github.com/paramfit/paramfit/internal/options"
	"github.com/paramfit/paramfit/loss"
	"github.com/paramfit/paramfit/model"
)

const (
	// formatVersion is the current snapshot format version.
	formatVersion = 1

	// headerSize is the fixed header length in bytes:
	// magic(4) + version(1) + compression(1) + fingerprint(8) + count(2).
	headerSize = 16
)

// magicBytes identifies a snapshot stream.
var magicBytes = []byte{'P', 'F', 'I', 'T'}

// encodeConfig holds the encoder configuration assembled from options.
type encodeConfig struct {
	compression format.CompressionType
}

// Option is a functional option for Encode.
type Option = options.Option[*encodeConfig]

// WithCompression sets the payload compression codec.
// Defaults to format.CompressionZstd.
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		if !typ.Valid() {
			return fmt.Errorf("compression type %d is not defined", typ)
		}
		cfg.compression = typ

		return nil
	})
}

// Encode serializes a fit result to the snapshot binary format.
//
// Parameters:
//   - result: Fit result to serialize (must hold at least one candidate)
//   - opts: Optional configuration (WithCompression)
//
// Returns:
//   - []byte: Encoded snapshot
//   - error: Validation or compression error
func Encode(result *fit.Result, opts ...Option) ([]byte, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, errs.ErrNoCandidates
	}
	if len(result.Candidates) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: too many candidates (%d)", errs.ErrInvalidSnapshot, len(result.Candidates))
	}

	cfg := encodeConfig{compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()

	payload := make([]byte, 0, 64*len(result.Candidates))
	for _, m := range result.Candidates {
		record, err := appendModel(engine, payload, m)
		if err != nil {
			return nil, err
		}
		payload = record
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, magicBytes...)
	out = append(out, formatVersion, byte(cfg.compression))
	out = engine.AppendUint64(out, result.Fingerprint)
	out = engine.AppendUint16(out, uint16(len(result.Candidates)))
	out = append(out, compressed...)

	return out, nil
}

func appendModel(engine endian.EndianEngine, dst []byte, m *fit.Model) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil candidate", errs.ErrInvalidSnapshot)
	}
	if len(m.Coefficients) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: too many coefficients (%d)", errs.ErrInvalidSnapshot, len(m.Coefficients))
	}
	if len(m.Formula) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: formula too long (%d bytes)", errs.ErrInvalidSnapshot, len(m.Formula))
	}

	dst = append(dst, byte(m.Family), byte(m.Metric))
	dst = engine.AppendUint64(dst, math.Float64bits(m.Loss))
	dst = engine.AppendUint64(dst, math.Float64bits(m.RSquared))
	dst = engine.AppendUint16(dst, uint16(len(m.Coefficients)))
	for _, c := range m.Coefficients {
		dst = engine.AppendUint64(dst, math.Float64bits(c))
	}
	dst = engine.AppendUint16(dst, uint16(len(m.Formula)))
	dst = append(dst, m.Formula...)

	return dst, nil
}

// Decode deserializes a snapshot produced by Encode.
//
// Candidates come back in their stored order (ascending by loss), with
// working estimators rebuilt from the stored coefficients. Search
// diagnostics are not part of the format and decode to zero values.
//
// Returns:
//   - *fit.Result: Restored result
//   - error: errs.ErrInvalidSnapshot on malformed data,
//     errs.ErrUnsupportedVersion on a format version this build cannot read
func Decode(data []byte) (*fit.Result, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: truncated header (%d bytes)", errs.ErrInvalidSnapshot, len(data))
	}
	if !bytes.Equal(data[:4], magicBytes) {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidSnapshot)
	}
	if data[4] != formatVersion {
		return nil, fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, data[4])
	}

	compression := format.CompressionType(data[5])
	if !compression.Valid() {
		return nil, fmt.Errorf("%w: compression type %d", errs.ErrInvalidSnapshot, data[5])
	}

	engine := endian.GetLittleEndianEngine()
	fingerprint := engine.Uint64(data[6:14])
	count := int(engine.Uint16(data[14:16]))

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSnapshot, err)
	}

	r := payloadReader{engine: engine, data: payload}
	candidates := make([]*fit.Model, 0, count)
	for i := 0; i < count; i++ {
		m, err := r.readModel()
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		candidates = append(candidates, m)
	}
	if !r.done() {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidSnapshot, r.remaining())
	}
	if len(candidates) == 0 {
		return nil, errs.ErrNoCandidates
	}

	return &fit.Result{
		BestFit:     candidates[0],
		Candidates:  candidates,
		Fingerprint: fingerprint,
	}, nil
}

// Matches reports whether the snapshot was fitted on the given table, by
// comparing dataset fingerprints.
func Matches(result *fit.Result, table *dataset.Table) bool {
	return result != nil && table != nil && result.Fingerprint == table.Fingerprint()
}

// payloadReader walks the decompressed payload with bounds checking.
type payloadReader struct {
	engine endian.EndianEngine
	data   []byte
	off    int
}

func (r *payloadReader) done() bool      { return r.off == len(r.data) }
func (r *payloadReader) remaining() int  { return len(r.data) - r.off }
func (r *payloadReader) need(n int) bool { return r.remaining() >= n }

func (r *payloadReader) readModel() (*fit.Model, error) {
	if !r.need(2) {
		return nil, fmt.Errorf("%w: truncated record", errs.ErrInvalidSnapshot)
	}
	family := model.Family(r.data[r.off])
	metric := loss.Metric(r.data[r.off+1])
	r.off += 2

	if family.String() == "unknown" {
		return nil, fmt.Errorf("family %d: %w", family, errs.ErrUnknownFamily)
	}
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: metric %d", errs.ErrInvalidSnapshot, metric)
	}

	lossValue, err := r.readFloat64()
	if err != nil {
		return nil, err
	}
	rSquared, err := r.readFloat64()
	if err != nil {
		return nil, err
	}

	coeffCount, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	coeffs := make([]float64, coeffCount)
	for i := range coeffs {
		coeffs[i], err = r.readFloat64()
		if err != nil {
			return nil, err
		}
	}

	formulaLen, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if !r.need(int(formulaLen)) {
		return nil, fmt.Errorf("%w: truncated formula", errs.ErrInvalidSnapshot)
	}
	formula := string(r.data[r.off : r.off+int(formulaLen)])
	r.off += int(formulaLen)

	est, err := model.NewEstimator(family, coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSnapshot, err)
	}

	return &fit.Model{
		Family:       family,
		Coefficients: coeffs,
		Metric:       metric,
		Loss:         lossValue,
		RSquared:     rSquared,
		Formula:      formula,
		Estimator:    est,
	}, nil
}

func (r *payloadReader) readUint16() (uint16, error) {
	if !r.need(2) {
		return 0, fmt.Errorf("%w: truncated record", errs.ErrInvalidSnapshot)
	}
	v := r.engine.Uint16(r.data[r.off:])
	r.off += 2

	return v, nil
}

func (r *payloadReader) readFloat64() (float64, error) {
	if !r.need(8) {
		return 0, fmt.Errorf("%w: truncated record", errs.ErrInvalidSnapshot)
	}
	v := math.Float64frombits(r.engine.Uint64(r.data[r.off:]))
	r.off += 8

	return v, nil
}
