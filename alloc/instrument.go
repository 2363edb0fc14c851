package alloc

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Instrumented decorates an Allocator with a correlation ID, traffic
// counters, and structured logging. Successful calls log at debug level;
// refusals log at warn level. It adds no behavior of its own: every request
// is forwarded to the wrapped allocator unchanged.
type Instrumented[T any] struct {
	inner    Allocator[T]
	logger   *zap.Logger
	id       string
	allocs   int
	deallocs int
	failures int
}

// NewInstrumented wraps inner with logging through logger. Each wrapper
// gets a fresh ID so interleaved allocators can be told apart in logs.
// It panics if inner or logger is nil.
func NewInstrumented[T any](inner Allocator[T], logger *zap.Logger) *Instrumented[T] {
	if inner == nil {
		panic("alloc: nil inner allocator")
	}
	if logger == nil {
		panic("alloc: nil logger")
	}
	return &Instrumented[T]{
		inner:  inner,
		logger: logger,
		id:     uuid.NewString(),
	}
}

func (a *Instrumented[T]) Allocate(n int) []T {
	buf := a.inner.Allocate(n)
	if buf == nil {
		a.failures++
		a.logger.Warn("allocation refused",
			zap.String("allocator_id", a.id),
			zap.Int("elems", n),
		)
		return nil
	}
	a.allocs++
	a.logger.Debug("allocated",
		zap.String("allocator_id", a.id),
		zap.Int("elems", n),
	)
	return buf
}

func (a *Instrumented[T]) Deallocate(buf []T, n int) {
	a.inner.Deallocate(buf, n)
	a.deallocs++
	a.logger.Debug("deallocated",
		zap.String("allocator_id", a.id),
		zap.Int("elems", n),
	)
}

// ID returns the wrapper's correlation ID.
func (a *Instrumented[T]) ID() string { return a.id }

// Allocs returns the number of successful allocations.
func (a *Instrumented[T]) Allocs() int { return a.allocs }

// Deallocs returns the number of deallocations forwarded.
func (a *Instrumented[T]) Deallocs() int { return a.deallocs }

// Failures returns the number of refused allocations.
func (a *Instrumented[T]) Failures() int { return a.failures }
