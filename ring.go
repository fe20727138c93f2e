package vec

import (
	"iter"
	"unsafe"
)

// Ring is a fixed-capacity overwrite buffer: elements are written at
// one end and the oldest elements are evicted to reclaim space for new
// ones. The full buffer is allocated up front and never grows. Not
// goroutine-safe.
type Ring[T any] struct {
	buf      []T // nil for zero-sized T
	capacity int
	n        int // live element count
	next     int // next write position

	elemSize uintptr
	zst      bool
}

// NewRing creates a ring holding at most capacity elements. Zero
// capacity is legal: every write is discarded. Returns
// *AllocationError if capacity is negative or the buffer byte size
// overflows.
func NewRing[T any](capacity int) (*Ring[T], error) {
	size := unsafe.Sizeof(*new(T))
	if err := checkedSize(capacity, size); err != nil {
		return nil, err
	}
	r := &Ring[T]{capacity: capacity, elemSize: size, zst: size == 0}
	if !r.zst && capacity > 0 {
		r.buf = make([]T, capacity)
	}
	return r, nil
}

// Len returns the number of live elements.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return r.capacity }

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.n == 0 }

// Write appends xs in order, evicting the oldest elements when the
// ring is full. A batch larger than the capacity keeps only its newest
// Cap() elements; the ones that could never be visible are skipped
// before any copying.
func (r *Ring[T]) Write(xs ...T) {
	if r.capacity == 0 || len(xs) == 0 {
		return
	}
	if len(xs) > r.capacity {
		xs = xs[len(xs)-r.capacity:]
	}

	// If the batch reaches the end of the buffer we wrap around.
	room := r.capacity - r.next
	if len(xs) < room {
		if !r.zst {
			copy(r.buf[r.next:], xs)
		}
		r.next += len(xs)
		r.n = min(r.n+len(xs), r.capacity)
		return
	}

	head, tail := xs[:room], xs[room:]
	if !r.zst {
		copy(r.buf[r.next:], head)
		copy(r.buf, tail)
	}
	r.next = len(tail)
	r.n = r.capacity
}

// Slices returns the contents as a pair of slices ordered oldest
// first. How the elements split between the two is unspecified; until
// the ring first wraps, everything is in head and tail is empty. The
// slices share the ring's buffer and are invalidated by the next
// Write.
func (r *Ring[T]) Slices() (head, tail []T) {
	if r.n < r.capacity {
		return r.view(0, r.n), nil
	}
	return r.view(r.next, r.capacity-r.next), r.view(0, r.next)
}

// All returns an iterator over the elements oldest first.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		head, tail := r.Slices()
		for _, x := range head {
			if !yield(x) {
				return
			}
		}
		for _, x := range tail {
			if !yield(x) {
				return
			}
		}
	}
}

// view returns n elements starting at index i without copying.
func (r *Ring[T]) view(i, n int) []T {
	if r.zst {
		return make([]T, n)
	}
	return r.buf[i : i+n : i+n]
}
