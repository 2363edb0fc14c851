package alloc_test

import (
	"testing"

	"github.com/on-the-ground/vla_go/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocate(t *testing.T) {
	var heap alloc.Heap[int]

	buf := heap.Allocate(8)
	require.Len(t, buf, 8)
	heap.Deallocate(buf, 8)

	assert.Nil(t, heap.Allocate(0))
	assert.Nil(t, heap.Allocate(-1))
}

func TestArenaChargesPowersOfTwo(t *testing.T) {
	arena := alloc.NewArena[int](16)
	assert.Equal(t, 16, arena.Remaining())

	buf := arena.Allocate(3)
	require.Len(t, buf, 3)
	// 3 elements are charged as a block of 4
	assert.Equal(t, 12, arena.Remaining())

	arena.Deallocate(buf, 3)
	assert.Equal(t, 16, arena.Remaining())
}

func TestArenaExhaustion(t *testing.T) {
	arena := alloc.NewArena[int](8)

	first := arena.Allocate(8)
	require.Len(t, first, 8)
	assert.Nil(t, arena.Allocate(1), "budget is spent")

	arena.Deallocate(first, 8)
	assert.Len(t, arena.Allocate(1), 1)
}

func TestArenaSupportsMultipleLiveBlocks(t *testing.T) {
	arena := alloc.NewArena[int](8)
	a := arena.Allocate(4)
	b := arena.Allocate(4)
	require.Len(t, a, 4)
	require.Len(t, b, 4)
	assert.Equal(t, 0, arena.Remaining())
}

func TestArenaPanicsOnBadBudget(t *testing.T) {
	assert.Panics(t, func() { alloc.NewArena[int](0) })
}

func TestSingleBufferServesOneBlock(t *testing.T) {
	junk := alloc.NewSingleBuffer[int](10)
	assert.Equal(t, 10, junk.Size())

	first := junk.Allocate(4)
	require.Len(t, first, 4)
	assert.Equal(t, 1, junk.AllocCount())
	assert.Equal(t, 4, junk.LastAllocSize())

	// a second request is served from the same backing
	second := junk.Allocate(8)
	require.Len(t, second, 8)
	assert.Same(t, &first[0], &second[0])

	assert.Nil(t, junk.Allocate(11), "request exceeds the backing block")
}

func TestSingleBufferRecognizesOwnBlocks(t *testing.T) {
	junk := alloc.NewSingleBuffer[int](10)

	own := junk.Allocate(6)
	junk.Deallocate(own, 6)
	assert.Equal(t, 6, junk.LastDeallocSize())

	foreign := make([]int, 4)
	junk.Deallocate(foreign, 4)
	assert.Equal(t, 6, junk.LastDeallocSize())
}
