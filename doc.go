// Package vec implements a generic, heap-allocated growable array for Go.
//
// # Overview
//
// A Vec is an owning, contiguous sequence of elements with an explicit
// length/capacity split: the backing buffer is allocated up front and
// grown geometrically on demand, so the caller controls when
// reallocation happens instead of relying on append's internal policy.
// This is particularly useful for:
//
//   - Hot paths where reallocation points must be predictable
//   - Containers of resource-holding elements that need teardown hooks
//   - Code that wants checked and trusted access paths side by side
//   - Auditable bounds and overflow behavior under adversarial sizes
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // tear down elements and drop the buffer
//
//	_ = v.Push(1)
//	_ = v.Push(2)
//
//	x, ok := v.Get(0) // checked access: 1, true
//	y := v.At(1)      // trusted access: 2, panics if out of range
//
//	for i, e := range v.All() {
//		fmt.Println(i, e)
//	}
//
// # Checked vs Trusted Access
//
// Every indexed operation comes in two flavors with different
// contracts. Get, Ptr and Set report out-of-range indices through their
// boolean result and never fault. At and MustSet are the fast trusted
// paths: an out-of-range index is a caller bug and panics. Structural
// operations (Insert, Remove, SwapRemove) return *IndexError so callers
// can distinguish bad indices from allocation failures.
//
// # Memory Layout
//
// Elements at indices [0, Len()) are live; slots [Len(), Cap()) are
// vacant and always zeroed so the garbage collector can reclaim
// anything a removed element referenced. Growth relocates every live
// element into a fresh buffer and releases the old one; the growth
// policy doubles capacity (with a small seed) so N sequential pushes
// relocate O(N) elements in total. Zero-sized element types never
// allocate a buffer at all; only length bookkeeping is maintained.
//
// # Element Teardown
//
// Go has no destructors, so teardown is an opt-in hook: SetDrop
// registers a function invoked for every element destroyed by Clear,
// Truncate, Release or an overwriting Set. Elements returned to the
// caller (Pop, Remove, SwapRemove, Take) are never dropped. If a hook
// panics mid-teardown the remaining elements are still dropped and the
// buffer still released before the first panic is re-raised.
//
// # Thread Safety
//
// Vec is not goroutine-safe. For concurrent access, use SafeVec:
//
//	sv := vec.NewSafe[int]()
//	_ = sv.Push(1)
//	sv.Do(func(v *vec.Vec[int]) {
//		// multi-step critical section
//	})
//
// # Failure Model
//
// Capacity-growing operations return *AllocationError when the
// requested capacity would overflow byte-size arithmetic. True memory
// exhaustion aborts the process inside the Go runtime and cannot be
// intercepted by any library. Iterators are invalidated by structural
// mutation: a traversal that observes one panics instead of yielding
// shifted or stale elements.
//
// # Metrics and Monitoring
//
// The container tracks its reallocation behavior:
//
//	m := v.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("grows: %d, elements relocated: %d\n", m.Grows, m.Relocations)
package vec
