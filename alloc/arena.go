package alloc

// Arena is a deterministic allocator with a fixed element budget decided at
// construction. Accounting is O(1) per call: each request is charged the
// next power of two at or above its length, the way a block-based real-time
// heap fragments its pool, so the arena can refuse a request before its raw
// budget is spent. Deallocate refunds the charge, so the arena supports any
// number of live blocks whose charges fit the budget.
//
// An Arena is not safe for concurrent use without external synchronization.
type Arena[T any] struct {
	budget    int // total charge capacity, in elements
	remaining int
}

// NewArena returns an arena able to charge up to budgetElems elements.
// It panics if budgetElems is not positive.
func NewArena[T any](budgetElems int) *Arena[T] {
	if budgetElems <= 0 {
		panic("alloc: arena budget must be positive")
	}
	return &Arena[T]{budget: budgetElems, remaining: budgetElems}
}

func (a *Arena[T]) Allocate(n int) []T {
	if n <= 0 {
		return nil
	}
	charge := blockFor(n)
	if charge > a.remaining {
		return nil
	}
	a.remaining -= charge
	return make([]T, n)
}

func (a *Arena[T]) Deallocate(buf []T, n int) {
	if buf == nil || n <= 0 {
		return
	}
	a.remaining += blockFor(n)
	if a.remaining > a.budget {
		a.remaining = a.budget
	}
}

// Remaining returns the unspent portion of the budget, in elements.
func (a *Arena[T]) Remaining() int { return a.remaining }

// blockFor rounds n up to the next power of two.
func blockFor(n int) int {
	b := 1
	for b < n {
		b <<= 1
	}
	return b
}
