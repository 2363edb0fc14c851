// Package vla provides a growable array with a fixed upper bound on its
// element count and an injectable allocation policy.
//
// A VariableLengthArray behaves like a slice that manages its own backing
// storage through an alloc.Allocator. It is intended for code that must keep
// heap behavior bounded: the maximum element count is fixed at construction,
// growth is explicit and clamped, and every operation degrades gracefully
// when the allocator cannot serve a request.
//
// The array is a passive value type. It spawns no goroutines and holds no
// locks; concurrent mutation of a single array must be serialized by the
// caller, exactly as for a plain slice.
package vla

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/vla_go/alloc"
)

var (
	// ErrSizeLimitReached reports that a push would grow the array past the
	// bound it was constructed with.
	ErrSizeLimitReached = errors.New("size limit reached")

	// ErrAllocatorExhausted reports that the allocator refused to serve the
	// storage a push needed.
	ErrAllocatorExhausted = errors.New("allocator exhausted")
)

// Option configures a VariableLengthArray at construction time.
type Option[T any] func(*VariableLengthArray[T])

// WithFinalizer registers a hook invoked exactly once for every live element
// that the array discards: on PopBack, Clear, Release, and on surplus
// destination elements dropped by CopyFrom. The hook is not invoked when
// elements relocate to a new buffer during growth or shrink.
//
// Use it for element types that own external resources and need a
// deterministic teardown.
func WithFinalizer[T any](fn func(*T)) Option[T] {
	return func(v *VariableLengthArray[T]) {
		v.finalize = fn
	}
}

// VariableLengthArray owns zero or one contiguous buffer obtained from its
// allocator. The first Size elements of the buffer are live; the remainder
// of the buffer is reserved capacity. At all times
//
//	0 <= Size <= Cap <= MaxSize
//
// and the buffer is absent exactly when Cap is zero.
type VariableLengthArray[T any] struct {
	buf      []T // len(buf) is the current capacity; nil iff capacity == 0
	size     int
	maxSize  int
	alloc    alloc.Allocator[T]
	finalize func(*T)
}

// New returns an empty array bounded at maxSize elements, drawing storage
// from a. No storage is acquired until the first Reserve or PushBack.
// New panics if maxSize is negative or a is nil.
func New[T any](maxSize int, a alloc.Allocator[T], opts ...Option[T]) *VariableLengthArray[T] {
	if maxSize < 0 {
		panic("vla: negative size bound")
	}
	if a == nil {
		panic("vla: nil allocator")
	}
	v := &VariableLengthArray[T]{
		maxSize: maxSize,
		alloc:   a,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewOf returns an array bounded at maxSize holding the given values in
// order. It panics if more than maxSize values are supplied, or if the
// allocator cannot produce the initial buffer; both are construction-time
// programming errors, not runtime conditions.
func NewOf[T any](maxSize int, a alloc.Allocator[T], values ...T) *VariableLengthArray[T] {
	if len(values) > maxSize {
		panic(fmt.Sprintf("vla: %d initial values exceed size bound %d", len(values), maxSize))
	}
	v := New(maxSize, a)
	if v.Reserve(len(values)) < len(values) {
		panic("vla: allocator cannot serve the initial buffer")
	}
	for i := 0; i < len(values); i++ {
		v.buf[i] = values[i]
	}
	v.size = len(values)
	return v
}

// Size returns the number of live elements.
func (v *VariableLengthArray[T]) Size() int { return v.size }

// Cap returns the number of elements the current buffer can hold without
// reallocation.
func (v *VariableLengthArray[T]) Cap() int { return len(v.buf) }

// MaxSize returns the bound the array was constructed with.
func (v *VariableLengthArray[T]) MaxSize() int { return v.maxSize }

// Allocator returns the allocator the array draws storage from.
func (v *VariableLengthArray[T]) Allocator() alloc.Allocator[T] { return v.alloc }

// Data returns the live elements as a slice sharing the array's buffer.
// The slice is invalidated by any operation that grows, shrinks, or releases
// the array.
func (v *VariableLengthArray[T]) Data() []T { return v.buf[:v.size] }

// At returns a pointer to the element at index i. Indices are not checked
// against Size; reading past the live range yields whatever the reserved
// capacity holds, and indexing past the buffer panics.
func (v *VariableLengthArray[T]) At(i int) *T { return &v.buf[i] }

// Reserve ensures capacity for at least min(n, MaxSize) elements and returns
// the capacity actually achieved. It never shrinks, never errors, and leaves
// the array untouched when the allocator cannot serve the request, so it is
// safe to call speculatively: an achieved capacity below n is the failure
// report.
func (v *VariableLengthArray[T]) Reserve(n int) int {
	target := n
	if target > v.maxSize {
		target = v.maxSize
	}
	if target <= len(v.buf) {
		return len(v.buf)
	}
	v.relocate(target)
	return len(v.buf)
}

// PushBack appends val, growing the buffer if it is full. Either the element
// is appended, or the call fails with no observable change to the array:
//
//   - ErrSizeLimitReached if the array already holds MaxSize elements;
//   - ErrAllocatorExhausted if the allocator refused the larger buffer.
//
// Both are recoverable; prior elements are preserved either way.
func (v *VariableLengthArray[T]) PushBack(val T) error {
	if v.size == len(v.buf) {
		if v.size == v.maxSize {
			return fmt.Errorf("%w: array is full at %d elements", ErrSizeLimitReached, v.size)
		}
		if !v.relocate(grownCapacity(len(v.buf), v.size+1, v.maxSize)) {
			return fmt.Errorf("%w: cannot grow past %d elements", ErrAllocatorExhausted, len(v.buf))
		}
	}
	v.buf[v.size] = val
	v.size++
	return nil
}

// PopBack removes the last element, finalizing it if a finalizer is
// registered. Capacity is unchanged. Popping an empty array is a no-op.
func (v *VariableLengthArray[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.destroy(&v.buf[v.size])
}

// ShrinkToFit reallocates the buffer down to exactly Size elements,
// releasing it entirely when the array is empty. Best effort: if the
// allocator cannot serve the smaller buffer the array keeps its current one.
func (v *VariableLengthArray[T]) ShrinkToFit() {
	if v.size == len(v.buf) {
		return
	}
	v.relocate(v.size)
}

// Clear finalizes and removes every live element, keeping the buffer.
func (v *VariableLengthArray[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.destroy(&v.buf[i])
	}
	v.size = 0
}

// Release finalizes all live elements and returns the buffer to the
// allocator, leaving the array empty and reusable. Calling Release on an
// empty or already released array is a no-op.
func (v *VariableLengthArray[T]) Release() {
	v.Clear()
	if v.buf != nil {
		v.alloc.Deallocate(v.buf, len(v.buf))
		v.buf = nil
	}
}

// Clone returns an independent array with the same bound, allocator,
// finalizer, and element values. It fails with ErrAllocatorExhausted if the
// allocator cannot serve the new buffer.
func (v *VariableLengthArray[T]) Clone() (*VariableLengthArray[T], error) {
	c := &VariableLengthArray[T]{
		maxSize:  v.maxSize,
		alloc:    v.alloc,
		finalize: v.finalize,
	}
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom overwrites the array with src's elements, element by element, in
// order. Existing capacity is reused when sufficient; otherwise a new buffer
// is obtained through the same path as Reserve. Surplus destination elements
// are finalized. On error the destination may have grown its capacity but
// its elements are unchanged.
func (v *VariableLengthArray[T]) CopyFrom(src *VariableLengthArray[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.maxSize {
		return fmt.Errorf("%w: source holds %d elements, bound is %d",
			ErrSizeLimitReached, src.size, v.maxSize)
	}
	if v.Reserve(src.size) < src.size {
		return fmt.Errorf("%w: cannot copy %d elements", ErrAllocatorExhausted, src.size)
	}
	for v.size > src.size {
		v.PopBack()
	}
	copy(v.buf[:src.size], src.buf[:src.size])
	v.size = src.size
	return nil
}

// TakeFrom moves src's buffer, elements, and allocator into the array in
// constant time, releasing whatever the array held before. src is left
// empty (Size == 0, Cap == 0) and remains safe to use or Release again.
// The two arrays must share the same bound; TakeFrom panics otherwise.
func (v *VariableLengthArray[T]) TakeFrom(src *VariableLengthArray[T]) {
	if v == src {
		return
	}
	if v.maxSize != src.maxSize {
		panic(fmt.Sprintf("vla: cannot move between bounds %d and %d", src.maxSize, v.maxSize))
	}
	v.Release()
	v.buf = src.buf
	v.size = src.size
	v.alloc = src.alloc
	v.finalize = src.finalize
	src.buf = nil
	src.size = 0
}

// destroy finalizes one element and zeroes its slot so the reserved capacity
// holds no stale references.
func (v *VariableLengthArray[T]) destroy(p *T) {
	if v.finalize != nil {
		v.finalize(p)
	}
	var zero T
	*p = zero
}

// relocate swaps the current buffer for one of exactly target elements,
// moving the live prefix across. The old buffer is released only after the
// new one is populated, so an allocator serving at most one live block still
// works: such an allocator hands back its one block again and the prefix
// copy degenerates to a self-copy. Returns false, leaving the array
// untouched, when the allocator cannot serve the request.
func (v *VariableLengthArray[T]) relocate(target int) bool {
	if target == 0 {
		if v.buf != nil {
			v.alloc.Deallocate(v.buf, len(v.buf))
			v.buf = nil
		}
		return true
	}
	next := v.alloc.Allocate(target)
	if next == nil || len(next) < target {
		return false
	}
	next = next[:target:target]
	copy(next, v.buf[:v.size])
	if v.buf != nil {
		v.alloc.Deallocate(v.buf, len(v.buf))
	}
	v.buf = next
	return true
}

// grownCapacity doubles cur, starting at 1, falling back to need when
// doubling makes no progress, clamped to max. The caller guarantees
// need <= max.
func grownCapacity(cur, need, max int) int {
	next := cur * 2
	if next == 0 {
		next = 1
	}
	if next < need {
		next = need
	}
	if next > max {
		next = max
	}
	return next
}
