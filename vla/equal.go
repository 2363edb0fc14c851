package vla

// Equal reports whether a and b hold the same number of elements and every
// corresponding pair compares equal with ==. Comparison is exact: the
// container introduces no tolerance, so two floats differing by one ulp
// compare unequal.
func Equal[T comparable](a, b *VariableLengthArray[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b hold the same number of elements and
// every corresponding pair satisfies eq.
func EqualFunc[T any](a, b *VariableLengthArray[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}
