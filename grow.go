package vec

import (
	"math"
	"math/bits"
)

// minCapacity is the first non-zero capacity a growing Vec allocates.
const minCapacity = 4

// nextCapacity computes the capacity a buffer of the given current
// capacity grows to when at least required slots are needed. The
// policy is geometric doubling seeded at minCapacity, bumped up to
// required when doubling is not enough. Pure function; callers still
// validate the byte size of the result.
func nextCapacity(current, required int) int {
	if current > math.MaxInt/2 {
		return required
	}
	next := current * 2
	if next < minCapacity {
		next = minCapacity
	}
	if next < required {
		next = required
	}
	return next
}

// checkedSize validates that slots elements of elemSize bytes fit in a
// single allocation. Returns *AllocationError on negative slot counts
// or byte-size overflow.
func checkedSize(slots int, elemSize uintptr) error {
	if slots < 0 {
		return &AllocationError{Slots: slots, ElemSize: elemSize}
	}
	hi, lo := bits.Mul64(uint64(slots), uint64(elemSize))
	if hi != 0 || lo > math.MaxInt {
		return &AllocationError{Slots: slots, ElemSize: elemSize}
	}
	return nil
}
