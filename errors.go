package vec

import "fmt"

// AllocationError reports that a requested capacity cannot be
// represented: the slot count is negative or slots × element size
// overflows the platform int. True out-of-memory conditions abort
// inside the Go runtime and never surface as an AllocationError.
type AllocationError struct {
	Slots    int     // requested capacity in elements
	ElemSize uintptr // element size in bytes
}

func (e *AllocationError) Error() string {
	if e.Slots < 0 {
		return fmt.Sprintf("vec: negative capacity %d", e.Slots)
	}
	return fmt.Sprintf("vec: capacity %d elements of %d bytes overflows size arithmetic", e.Slots, e.ElemSize)
}

// IndexError reports an index outside the valid range of an operation.
// For removals the valid range is [0, Len()); for insertion it is
// [0, Len()].
type IndexError struct {
	Op    string // operation that rejected the index
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vec: %s index %d out of range with length %d", e.Op, e.Index, e.Len)
}
