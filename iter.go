package vec

import "iter"

// All returns a forward iterator over (index, element) pairs. Each
// call yields a fresh traversal. The sequence is invalidated by
// structural mutation: growing, shrinking or reordering the Vec during
// traversal panics instead of yielding shifted or stale elements.
//
//	for i, x := range v.All() {
//		// ...
//	}
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		start := v.version
		n := v.n
		for i := 0; i < n; i++ {
			if v.version != start {
				panic("vec: container mutated during iteration")
			}
			if !yield(i, v.at(i)) {
				return
			}
		}
	}
}

// Backward returns a reverse-order iterator over (index, element)
// pairs, with the same invalidation contract as All.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		start := v.version
		for i := v.n - 1; i >= 0; i-- {
			if v.version != start {
				panic("vec: container mutated during iteration")
			}
			if !yield(i, v.at(i)) {
				return
			}
		}
	}
}
