package ppqsort

// Less reports whether a sorts strictly before b. It must be a strict weak
// ordering: irreflexive (Less(a, a) is always false) and transitive, with
// transitive incomparability. Sort never assumes totality — Less(a,b) and
// Less(b,a) both false means a and b are equivalent, not equal.
type Less[T any] func(a, b T) bool

// reverse returns the dual ordering of less, i.e. less(b, a).
func (less Less[T]) reverse() Less[T] {
	return func(a, b T) bool { return less(b, a) }
}
