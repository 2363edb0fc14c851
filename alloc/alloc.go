// Package alloc defines the storage-acquisition contract consumed by the
// vla container and provides three allocator kinds: a general-purpose heap
// allocator, a deterministic fixed-budget arena, and a single-buffer
// allocator for static storage.
//
// The currency of the contract is the element-typed slice: Allocate hands
// out a slice of exactly the requested length, Deallocate hands it back.
// Returning nil is the failure signal; callers must treat it as "cannot
// serve" and keep their prior state.
package alloc

// Allocator acquires and releases contiguous element storage.
//
// Implementations may be stateless or carry state, and may serve at most
// one live block at a time. Callers must pass Deallocate only slices
// previously returned by Allocate on the same allocator, together with the
// length they were requested at; Deallocate never fails.
type Allocator[T any] interface {
	// Allocate returns storage for n elements, or nil when the request
	// cannot be served. A successful result has len == n.
	Allocate(n int) []T

	// Deallocate returns a block obtained from Allocate. It is a safe
	// no-op for blocks the allocator does not recognize.
	Deallocate(buf []T, n int)
}

// Heap is the general-purpose allocator: storage comes from the Go runtime
// and requests never fail. It is stateless; the zero value is ready to use
// and safe for concurrent use.
type Heap[T any] struct{}

func (Heap[T]) Allocate(n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

func (Heap[T]) Deallocate(buf []T, n int) {}
