package vec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New[int]()
	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	assert.True(t, v.IsEmpty())
	assert.Nil(t, v.buf)
}

func TestWithCapacity(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantCap int
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"small", 8, 8, false},
		{"large", 4096, 4096, false},
		{"negative", -1, 0, true},
		{"overflow", math.MaxInt/2 + 1, 0, true}, // ×8 bytes overflows
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := WithCapacity[int64](tt.n)
			if tt.wantErr {
				require.Error(t, err)
				var ae *AllocationError
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, tt.n, ae.Slots)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, v.Cap())
			assert.Zero(t, v.Len())
		})
	}
}

func TestPushOrder(t *testing.T) {
	const n = 1000
	v := New[int]()
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push(i))
	}
	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		x, ok := v.Get(i)
		require.True(t, ok)
		require.Equal(t, i, x)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	v := New[string]()
	require.NoError(t, v.Append("a", "b"))

	before := v.Len()
	require.NoError(t, v.Push("c"))
	x, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", x)
	assert.Equal(t, before, v.Len())

	// Popping an empty Vec signals absence, never a fault.
	v.Clear()
	_, ok = v.Pop()
	assert.False(t, ok)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 3, 5} {
		v := New[int]()
		require.NoError(t, v.Append(10, 20, 30, 40, 50))
		want := append([]int(nil), v.View()...)

		require.NoError(t, v.Insert(idx, 99))
		assert.Equal(t, 6, v.Len())
		assert.Equal(t, 99, v.At(idx))

		x, err := v.Remove(idx)
		require.NoError(t, err)
		assert.Equal(t, 99, x)
		assert.Equal(t, want, v.View())
	}
}

func TestInsertBounds(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	// Insertion at index == Len() is a push.
	require.NoError(t, v.Insert(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, v.View())

	err := v.Insert(5, 9)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "insert", ie.Op)
	assert.Equal(t, 5, ie.Index)
	assert.Equal(t, 4, ie.Len)

	require.Error(t, v.Insert(-1, 9))
	assert.Equal(t, 4, v.Len())
}

func TestRemoveBounds(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	for _, i := range []int{-1, 3, 100} {
		_, err := v.Remove(i)
		var ie *IndexError
		require.True(t, errors.As(err, &ie), "Remove(%d)", i)

		_, err = v.SwapRemove(i)
		require.True(t, errors.As(err, &ie), "SwapRemove(%d)", i)
	}
	assert.Equal(t, 3, v.Len())
}

func TestSwapRemove(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3, 4))

	x, err := v.SwapRemove(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.Equal(t, []int{4, 2, 3}, v.View())

	// Removing the last element swaps with itself.
	x, err = v.SwapRemove(2)
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, []int{4, 2}, v.View())
}

// TestScenario walks the full documented mutation sequence.
func TestScenario(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))
	require.NoError(t, v.Push(3))
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.At(0))
	assert.Equal(t, 3, v.At(2))

	x, err := v.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.Equal(t, []int{2, 3}, v.View())
	assert.Equal(t, 2, v.Len())

	require.NoError(t, v.Insert(1, 9))
	assert.Equal(t, []int{2, 9, 3}, v.View())

	x, err = v.SwapRemove(0)
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, []int{3, 9}, v.View())

	x, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, 9, x)
	assert.Equal(t, []int{3}, v.View())

	capBefore := v.Cap()
	v.Clear()
	assert.Zero(t, v.Len())
	assert.Equal(t, capBefore, v.Cap())
	assert.GreaterOrEqual(t, v.Cap(), 1)
}

func TestGetOutOfRange(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	for _, i := range []int{-1, 3, 4, math.MaxInt} {
		_, ok := v.Get(i)
		assert.False(t, ok, "Get(%d)", i)
		_, ok = v.Ptr(i)
		assert.False(t, ok, "Ptr(%d)", i)
		assert.False(t, v.Set(i, 9), "Set(%d)", i)
	}
}

func TestAtPanics(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Push(1))

	assert.Panics(t, func() { v.At(1) })
	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { v.MustSet(1, 9) })
	assert.Equal(t, 1, v.At(0))
}

func TestSetAndPtr(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	require.True(t, v.Set(1, 20))
	assert.Equal(t, 20, v.At(1))

	p, ok := v.Ptr(2)
	require.True(t, ok)
	*p = 30
	assert.Equal(t, 30, v.At(2))

	v.MustSet(0, 10)
	assert.Equal(t, []int{10, 20, 30}, v.View())
}

func TestTruncate(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3, 4, 5))

	v.Truncate(7) // no-op
	assert.Equal(t, 5, v.Len())
	v.Truncate(2)
	assert.Equal(t, []int{1, 2}, v.View())
	v.Truncate(-3) // clamped to zero
	assert.Zero(t, v.Len())
}

func TestReserve(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Reserve(10))
	assert.GreaterOrEqual(t, v.Cap(), 10)
	assert.Zero(t, v.Len())

	// No-op when capacity is already sufficient.
	capBefore := v.Cap()
	require.NoError(t, v.Reserve(5))
	assert.Equal(t, capBefore, v.Cap())
	require.NoError(t, v.Reserve(0))
	require.NoError(t, v.Reserve(-1))
	assert.Equal(t, capBefore, v.Cap())
}

func TestReserveOverflow(t *testing.T) {
	v := New[int64]()
	require.NoError(t, v.Push(7))

	err := v.Reserve(math.MaxInt)
	var ae *AllocationError
	require.True(t, errors.As(err, &ae))

	// Strong failure safety: the Vec is untouched.
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, int64(7), v.At(0))
}

func TestGrow(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2))
	require.NoError(t, v.Grow(16))
	assert.GreaterOrEqual(t, v.Cap(), 16)

	require.NoError(t, v.Grow(1)) // already satisfied

	var ae *AllocationError
	require.True(t, errors.As(v.Grow(-1), &ae))
}

func TestShrinkToFit(t *testing.T) {
	v, err := WithCapacity[int](64)
	require.NoError(t, err)
	require.NoError(t, v.Append(1, 2, 3))

	v.ShrinkToFit()
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.View())

	v.Clear()
	v.ShrinkToFit()
	assert.Zero(t, v.Cap())
	assert.Nil(t, v.buf)
}

func TestTake(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	moved := v.Take()
	assert.Equal(t, []int{1, 2, 3}, moved.View())

	// Source is empty, valid and reusable; no buffer is shared.
	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	require.NoError(t, v.Push(9))
	assert.Equal(t, []int{1, 2, 3}, moved.View())
	assert.Equal(t, []int{9}, v.View())
}

func TestClone(t *testing.T) {
	v := New[[]int]()
	require.NoError(t, v.Append([]int{1}, []int{2}))

	deep, err := v.Clone(func(s []int) []int {
		out := make([]int, len(s))
		copy(out, s)
		return out
	})
	require.NoError(t, err)
	require.Equal(t, 2, deep.Len())
	assert.Equal(t, 2, deep.Cap())

	// Mutating the clone's elements leaves the source alone.
	deep.At(0)[0] = 99
	assert.Equal(t, []int{1}, v.At(0))

	shallow, err := v.Clone(nil)
	require.NoError(t, err)
	assert.Equal(t, v.View(), shallow.View())
}

func TestView(t *testing.T) {
	v, err := WithCapacity[int](16)
	require.NoError(t, err)
	require.NoError(t, v.Append(1, 2, 3))

	view := v.View()
	require.Len(t, view, 3)

	// Writes through the view are visible; appends to it are not.
	view[0] = 10
	assert.Equal(t, 10, v.At(0))
	_ = append(view, 4)
	assert.Equal(t, 3, v.Len())
	x, ok := v.Get(3)
	assert.False(t, ok, "vacant slot leaked: %d", x)
}

func TestCopyTo(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	dst := make([]int, 2)
	assert.Equal(t, 2, v.CopyTo(dst))
	assert.Equal(t, []int{1, 2}, dst)

	dst = make([]int, 5)
	assert.Equal(t, 3, v.CopyTo(dst))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, dst)
}

func TestRelease(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Append(1, 2, 3))

	v.Release()
	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())

	// Released Vec resets to empty and stays usable.
	require.NoError(t, v.Push(1))
	assert.Equal(t, 1, v.At(0))
}

// TestVacantSlotsZeroed checks that removal never keeps references
// alive in vacant slots, which would defeat garbage collection.
func TestVacantSlotsZeroed(t *testing.T) {
	v := New[*int]()
	x := new(int)
	require.NoError(t, v.Append(x, x, x))

	_, err := v.Remove(0)
	require.NoError(t, err)
	assert.Nil(t, v.buf[v.n])

	_, ok := v.Pop()
	require.True(t, ok)
	assert.Nil(t, v.buf[v.n])

	_, err = v.SwapRemove(0)
	require.NoError(t, err)
	assert.Nil(t, v.buf[v.n])
}
