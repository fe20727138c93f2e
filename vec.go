package vec

import (
	"math"
	"unsafe"
)

// Vec is a growable array with an explicit length/capacity split.
// Elements buf[0:n] are live; the rest of the buffer is vacant and
// zeroed. Not goroutine-safe. Use SafeVec for concurrent access.
type Vec[T any] struct {
	buf []T // full-capacity backing buffer; nil for zero-sized T
	n   int // live element count

	version uint64 // bumped by structural mutation, checked by iterators
	drop    func(T)

	elemSize uintptr
	zst      bool

	grows       int
	relocations int
}

// New creates an empty Vec. No allocation is performed.
func New[T any]() *Vec[T] {
	size := unsafe.Sizeof(*new(T))
	return &Vec[T]{elemSize: size, zst: size == 0}
}

// WithCapacity creates an empty Vec with n slots pre-reserved.
// Returns *AllocationError if n is negative or the byte size of the
// buffer overflows.
func WithCapacity[T any](n int) (*Vec[T], error) {
	v := New[T]()
	if err := checkedSize(n, v.elemSize); err != nil {
		return nil, err
	}
	if !v.zst && n > 0 {
		v.buf = make([]T, n)
	}
	return v, nil
}

// SetDrop registers fn as the teardown hook invoked for every element
// destroyed by Clear, Truncate, Release or an overwriting Set.
// Elements handed back to the caller are never dropped. A nil fn
// removes the hook.
func (v *Vec[T]) SetDrop(fn func(T)) {
	v.drop = fn
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the number of slots currently reserved. For zero-sized
// element types no buffer exists and capacity is unbounded.
func (v *Vec[T]) Cap() int {
	if v.zst {
		return math.MaxInt
	}
	return len(v.buf)
}

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.n == 0 }

// Reserve ensures capacity for at least additional more elements
// beyond the current length. Growth follows nextCapacity; every live
// element is relocated into the new buffer and the old buffer is
// released. On error the Vec is unchanged.
func (v *Vec[T]) Reserve(additional int) error {
	if additional <= 0 {
		return nil
	}
	if v.n > math.MaxInt-additional {
		return &AllocationError{Slots: additional, ElemSize: v.elemSize}
	}
	required := v.n + additional
	if v.zst || required <= len(v.buf) {
		return nil
	}
	newCap := nextCapacity(len(v.buf), required)
	if checkedSize(newCap, v.elemSize) != nil {
		// Doubling overflowed; the exact request may still fit.
		newCap = required
		if err := checkedSize(newCap, v.elemSize); err != nil {
			return err
		}
	}
	v.relocate(newCap)
	return nil
}

// Grow ensures total capacity of at least n slots.
func (v *Vec[T]) Grow(n int) error {
	if n < 0 {
		return &AllocationError{Slots: n, ElemSize: v.elemSize}
	}
	return v.Reserve(n - v.n)
}

// ShrinkToFit reallocates the buffer to exactly Len() slots, or frees
// it entirely when the Vec is empty. Never required for correctness.
func (v *Vec[T]) ShrinkToFit() {
	if v.zst || v.n == len(v.buf) {
		return
	}
	if v.n == 0 {
		v.buf = nil
		v.version++
		return
	}
	v.relocate(v.n)
}

// relocate moves all live elements into a fresh buffer of newCap
// slots. The old buffer becomes garbage once the swap completes.
func (v *Vec[T]) relocate(newCap int) {
	nb := make([]T, newCap)
	copy(nb, v.buf[:v.n])
	v.buf = nb
	v.grows++
	v.relocations += v.n
	v.version++
}

// Push appends x at index Len(). Amortized O(1); fails only with
// *AllocationError on capacity overflow.
func (v *Vec[T]) Push(x T) error {
	if err := v.Reserve(1); err != nil {
		return err
	}
	if !v.zst {
		v.buf[v.n] = x
	}
	v.n++
	v.version++
	return nil
}

// Append pushes all of xs with a single up-front reservation.
func (v *Vec[T]) Append(xs ...T) error {
	if len(xs) == 0 {
		return nil
	}
	if err := v.Reserve(len(xs)); err != nil {
		return err
	}
	if !v.zst {
		copy(v.buf[v.n:], xs)
	}
	v.n += len(xs)
	v.version++
	return nil
}

// Pop removes and returns the last element. Returns false when empty.
// Never shrinks the buffer.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	v.version++
	if v.zst {
		return zero, true
	}
	x := v.buf[v.n]
	v.buf[v.n] = zero
	return x, true
}

// Insert places x at index i, shifting elements [i, Len()) one slot to
// the right. Inserting at i == Len() is equivalent to Push. Returns
// *IndexError when i is outside [0, Len()], or *AllocationError.
func (v *Vec[T]) Insert(i int, x T) error {
	if i < 0 || i > v.n {
		return &IndexError{Op: "insert", Index: i, Len: v.n}
	}
	if err := v.Reserve(1); err != nil {
		return err
	}
	if !v.zst {
		copy(v.buf[i+1:v.n+1], v.buf[i:v.n])
		v.buf[i] = x
	}
	v.n++
	v.version++
	return nil
}

// Remove takes out the element at index i, shifting later elements
// left to close the gap. Order is preserved. Returns *IndexError when
// i is outside [0, Len()).
func (v *Vec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, &IndexError{Op: "remove", Index: i, Len: v.n}
	}
	v.n--
	v.version++
	if v.zst {
		return zero, nil
	}
	x := v.buf[i]
	copy(v.buf[i:v.n], v.buf[i+1:v.n+1])
	v.buf[v.n] = zero
	return x, nil
}

// SwapRemove takes out the element at index i by moving the last
// element into its place. O(1); order is not preserved. Returns
// *IndexError when i is outside [0, Len()).
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, &IndexError{Op: "swap_remove", Index: i, Len: v.n}
	}
	v.n--
	v.version++
	if v.zst {
		return zero, nil
	}
	x := v.buf[i]
	v.buf[i] = v.buf[v.n]
	v.buf[v.n] = zero
	return x, nil
}

// Clear tears down every live element and resets the length to zero.
// Capacity is retained.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Truncate tears down elements [n, Len()) and sets the length to n.
// No-op when n >= Len(); negative n is treated as zero.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.n {
		return
	}
	p := v.dropRange(n, v.n)
	if !v.zst {
		var zero T
		for i := n; i < v.n; i++ {
			v.buf[i] = zero
		}
	}
	v.n = n
	v.version++
	if p != nil {
		panic(p)
	}
}

// Release tears down every live element and drops the buffer. The Vec
// resets to the empty state and remains usable; growth counters are
// retained.
func (v *Vec[T]) Release() {
	p := v.dropRange(0, v.n)
	v.buf = nil
	v.n = 0
	v.version++
	if p != nil {
		panic(p)
	}
}

// dropRange invokes the drop hook for elements [from, to) in index
// order. A panicking hook does not stop the sweep; the first panic
// value is returned for the caller to re-raise after cleanup.
func (v *Vec[T]) dropRange(from, to int) (first any) {
	if v.drop == nil {
		return nil
	}
	for i := from; i < to; i++ {
		if p := v.dropOne(v.at(i)); p != nil && first == nil {
			first = p
		}
	}
	return first
}

func (v *Vec[T]) dropOne(x T) (p any) {
	defer func() { p = recover() }()
	v.drop(x)
	return nil
}

// Get returns the element at index i. The second result is false when
// i is outside [0, Len()); no fault is ever raised.
func (v *Vec[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, false
	}
	return v.at(i), true
}

// Ptr returns in-place access to the element at index i, or false when
// i is outside [0, Len()). The pointer is valid until the next
// structural mutation relocates or shifts the buffer.
func (v *Vec[T]) Ptr(i int) (*T, bool) {
	if i < 0 || i >= v.n {
		return nil, false
	}
	if v.zst {
		return new(T), true
	}
	return &v.buf[i], true
}

// At returns the element at index i, panicking when i is outside
// [0, Len()). This is the trusted fast path; prefer Get for checked
// reads.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(&IndexError{Op: "at", Index: i, Len: v.n})
	}
	return v.at(i)
}

// Set overwrites the element at index i, dropping the previous value
// through the teardown hook. Returns false when i is outside
// [0, Len()).
func (v *Vec[T]) Set(i int, x T) bool {
	if i < 0 || i >= v.n {
		return false
	}
	var p any
	if v.drop != nil {
		p = v.dropOne(v.at(i))
	}
	if !v.zst {
		v.buf[i] = x
	}
	if p != nil {
		panic(p)
	}
	return true
}

// MustSet is the trusted counterpart of Set; panics on out-of-range.
func (v *Vec[T]) MustSet(i int, x T) {
	if !v.Set(i, x) {
		panic(&IndexError{Op: "set", Index: i, Len: v.n})
	}
}

// View returns the live elements as a slice sharing the Vec's buffer.
// Element writes through the view are visible to the Vec; the view is
// invalidated by any structural mutation. Appending to the view cannot
// spill into vacant slots.
func (v *Vec[T]) View() []T {
	if v.zst {
		return make([]T, v.n)
	}
	return v.buf[:v.n:v.n]
}

// CopyTo copies up to len(dst) live elements into dst in index order
// and returns the number copied.
func (v *Vec[T]) CopyTo(dst []T) int {
	if v.zst {
		return min(len(dst), v.n)
	}
	return copy(dst, v.buf[:v.n])
}

// Take transfers ownership of the buffer and elements to a new Vec.
// The source is left empty and valid for reuse; its teardown hook and
// growth counters stay behind.
func (v *Vec[T]) Take() *Vec[T] {
	out := &Vec[T]{
		buf:      v.buf,
		n:        v.n,
		drop:     v.drop,
		elemSize: v.elemSize,
		zst:      v.zst,
	}
	v.buf = nil
	v.n = 0
	v.version++
	return out
}

// Clone duplicates the Vec into a freshly allocated, exactly sized
// buffer. clone is applied to each element; nil means plain value
// copy. Explicit opt-in: a Vec is never duplicated implicitly.
func (v *Vec[T]) Clone(clone func(T) T) (*Vec[T], error) {
	out, err := WithCapacity[T](v.n)
	if err != nil {
		return nil, err
	}
	out.drop = v.drop
	if !v.zst {
		if clone == nil {
			copy(out.buf, v.buf[:v.n])
		} else {
			for i := 0; i < v.n; i++ {
				out.buf[i] = clone(v.buf[i])
			}
		}
	}
	out.n = v.n
	return out, nil
}

// at reads a live slot without bounds checks. Callers validate i.
func (v *Vec[T]) at(i int) T {
	if v.zst {
		var zero T
		return zero
	}
	return v.buf[i]
}
