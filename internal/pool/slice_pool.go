// Package pool provides pooled scratch slices for the fitting hot path.
//
// A search strategy evaluates the loss objective hundreds or thousands of
// times per fit, and each evaluation needs a prediction buffer the size of
// the sample table. Pooling those buffers keeps the objective allocation-free
// after warmup.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has length equal to size; contents are unspecified and
// must be overwritten by the caller. The caller must call the returned
// cleanup function (typically with defer) to return the slice to the pool.
//
// Example:
//
//	predicted, cleanup := pool.GetFloat64Slice(table.NumRows())
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { float64SlicePool.Put(ptr) }
}
