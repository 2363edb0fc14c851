package vla

import "github.com/cespare/xxhash/v2"

// Checksum returns the xxhash64 digest of a byte array's live elements.
// Two arrays with equal contents produce the same digest regardless of
// capacity or allocator.
func Checksum(a *VariableLengthArray[byte]) uint64 {
	return xxhash.Sum64(a.Data())
}
