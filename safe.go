package vec

import "sync"

// SafeVec is an RWMutex-protected wrapper around Vec for concurrent
// access. Mutating calls take the write lock, read-only calls the read
// lock. All operations come with the overhead of lock acquisition.
type SafeVec[T any] struct {
	mu sync.RWMutex
	v  *Vec[T]
}

// NewSafe creates a new goroutine-safe Vec.
func NewSafe[T any]() *SafeVec[T] {
	return &SafeVec[T]{v: New[T]()}
}

// NewSafeWithCapacity creates a goroutine-safe Vec with n slots
// pre-reserved.
func NewSafeWithCapacity[T any](n int) (*SafeVec[T], error) {
	v, err := WithCapacity[T](n)
	if err != nil {
		return nil, err
	}
	return &SafeVec[T]{v: v}, nil
}

// Push thread-safely appends x at the end.
func (s *SafeVec[T]) Push(x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Push(x)
}

// Append thread-safely pushes all of xs.
func (s *SafeVec[T]) Append(xs ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Append(xs...)
}

// Pop thread-safely removes and returns the last element.
func (s *SafeVec[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Pop()
}

// Insert thread-safely inserts x at index i.
func (s *SafeVec[T]) Insert(i int, x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(i, x)
}

// Remove thread-safely removes the element at index i, preserving
// order.
func (s *SafeVec[T]) Remove(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Remove(i)
}

// SwapRemove thread-safely removes the element at index i without
// preserving order.
func (s *SafeVec[T]) SwapRemove(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SwapRemove(i)
}

// Set thread-safely overwrites the element at index i.
func (s *SafeVec[T]) Set(i int, x T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Set(i, x)
}

// Clear thread-safely tears down all elements, keeping capacity.
func (s *SafeVec[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Truncate thread-safely tears down elements [n, Len()).
func (s *SafeVec[T]) Truncate(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Truncate(n)
}

// Reserve thread-safely ensures capacity for additional more elements.
func (s *SafeVec[T]) Reserve(additional int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(additional)
}

// ShrinkToFit thread-safely trims capacity to the current length.
func (s *SafeVec[T]) ShrinkToFit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.ShrinkToFit()
}

// Release thread-safely tears down all elements and drops the buffer.
func (s *SafeVec[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}

// Get thread-safely returns the element at index i.
func (s *SafeVec[T]) Get(i int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Get(i)
}

// Len thread-safely returns the number of live elements.
func (s *SafeVec[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Len()
}

// Cap thread-safely returns the reserved slot count.
func (s *SafeVec[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Cap()
}

// IsEmpty thread-safely reports whether the Vec holds no elements.
func (s *SafeVec[T]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.IsEmpty()
}

// Metrics thread-safely returns a snapshot of container statistics.
func (s *SafeVec[T]) Metrics() VecMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Metrics()
}

// Do runs fn with exclusive access to the underlying Vec. This is the
// way to perform multi-step mutation atomically; fn must not retain
// the *Vec past its return.
func (s *SafeVec[T]) Do(fn func(*Vec[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.v)
}

// DoRead runs fn with shared read access to the underlying Vec, and is
// the only safe way to iterate a shared Vec. fn must not mutate and
// must not retain the *Vec past its return.
func (s *SafeVec[T]) DoRead(fn func(*Vec[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.v)
}
