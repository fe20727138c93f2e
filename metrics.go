package vec

// ElemSize returns the size of the element type in bytes.
func (v *Vec[T]) ElemSize() int {
	return int(v.elemSize)
}

// BytesLive returns the number of buffer bytes occupied by live
// elements.
func (v *Vec[T]) BytesLive() int {
	return v.n * int(v.elemSize)
}

// BytesReserved returns the total byte size of the backing buffer.
// Zero-sized element types reserve nothing.
func (v *Vec[T]) BytesReserved() int {
	return len(v.buf) * int(v.elemSize)
}

// Utilization returns the ratio of live slots to reserved slots
// (0.0 to 1.0). Returns 0.0 when no buffer is reserved.
func (v *Vec[T]) Utilization() float64 {
	if v.zst || len(v.buf) == 0 {
		return 0
	}
	return float64(v.n) / float64(len(v.buf))
}

// Grows returns how many times the buffer has been reallocated.
func (v *Vec[T]) Grows() int {
	return v.grows
}

// Relocations returns the total number of elements copied across all
// reallocations. After N pushes into an initially empty Vec this stays
// below 2N, which is the amortized O(1) growth bound.
func (v *Vec[T]) Relocations() int {
	return v.relocations
}

// Metrics returns a snapshot of container statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		BytesLive:     v.BytesLive(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
		Grows:         v.Grows(),
		Relocations:   v.Relocations(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len           int     // Live elements
	Cap           int     // Reserved slots
	ElemSize      int     // Element size in bytes
	BytesLive     int     // Bytes occupied by live elements
	BytesReserved int     // Total buffer bytes
	Utilization   float64 // Ratio of live to reserved slots (0.0-1.0)
	Grows         int     // Buffer reallocation count
	Relocations   int     // Elements copied across all reallocations
}
