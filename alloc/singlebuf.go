package alloc

// SingleBuffer owns exactly one backing array, fixed at construction, and
// serves every request from its front. It can therefore hold only one
// meaningful block at a time: a second Allocate hands out the same storage
// again. The vla container tolerates this because it populates a new block
// before releasing the old one, which degenerates to a self-copy here.
//
// The allocator records its traffic — allocation count and the sizes of the
// last allocation and deallocation — so tests can observe the container's
// allocator discipline.
type SingleBuffer[T any] struct {
	backing         []T
	allocCount      int
	lastAllocSize   int
	lastDeallocSize int
}

// NewSingleBuffer returns an allocator backed by a single block of size
// elements. It panics if size is not positive.
func NewSingleBuffer[T any](size int) *SingleBuffer[T] {
	if size <= 0 {
		panic("alloc: single buffer size must be positive")
	}
	return &SingleBuffer[T]{backing: make([]T, size)}
}

func (s *SingleBuffer[T]) Allocate(n int) []T {
	if n <= 0 || n > len(s.backing) {
		return nil
	}
	s.allocCount++
	s.lastAllocSize = n
	return s.backing[:n]
}

func (s *SingleBuffer[T]) Deallocate(buf []T, n int) {
	if len(buf) == 0 {
		return
	}
	if &buf[0] == &s.backing[0] {
		s.lastDeallocSize = n
	}
}

// Size returns the length of the backing block.
func (s *SingleBuffer[T]) Size() int { return len(s.backing) }

// AllocCount returns how many requests have been served.
func (s *SingleBuffer[T]) AllocCount() int { return s.allocCount }

// LastAllocSize returns the element count of the most recent successful
// allocation, zero if none.
func (s *SingleBuffer[T]) LastAllocSize() int { return s.lastAllocSize }

// LastDeallocSize returns the element count of the most recent recognized
// deallocation, zero if none.
func (s *SingleBuffer[T]) LastDeallocSize() int { return s.lastDeallocSize }
