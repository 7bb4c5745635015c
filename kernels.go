package ppqsort

// Small-sort kernels: guarded/unguarded insertion sort, their partial
// (bounded-effort) variants, and fixed 2/3/5-element sorting networks (pivot
// selection uses the 3-element ones).

// insertionSort sorts data[begin:end] in place. For each i, the element at i
// is extracted and shifted right past every strictly-greater predecessor,
// stopping the shift at begin.
func insertionSort[T any](data []T, less Less[T], begin, end int) {
	for i := begin + 1; i < end; i++ {
		second := i
		first := i - 1
		if less(data[second], data[first]) {
			elem := data[second]
			for {
				data[second] = data[first]
				second--
				first--
				if second == begin || !less(elem, data[first]) {
					break
				}
			}
			data[second] = elem
		}
	}
}

// insertionSortUnguarded is insertionSort without the begin guard: it
// assumes data[begin-1] is <= every element in data[begin:end], so the
// shift loop never needs to check second != begin. Only valid when
// leftmost is false.
func insertionSortUnguarded[T any](data []T, less Less[T], begin, end int) {
	for i := begin + 1; i < end; i++ {
		second := i
		first := i - 1
		if less(data[second], data[first]) {
			elem := data[second]
			for {
				data[second] = data[first]
				second--
				first--
				if !less(elem, data[first]) {
					break
				}
			}
			data[second] = elem
		}
	}
}

// partialInsertionSort behaves like insertionSort but gives up once more
// than PartialThreshold shift-runs have occurred, returning false. Returns
// true if it ran to completion (the subrange was already near-sorted).
func partialInsertionSort[T any](data []T, less Less[T], begin, end int) bool {
	if begin == end {
		return true
	}
	count := 0
	for i := begin + 1; i < end; i++ {
		second := i
		first := i - 1
		if less(data[second], data[first]) {
			elem := data[second]
			for {
				data[second] = data[first]
				second--
				first--
				if second == begin || !less(elem, data[first]) {
					break
				}
			}
			data[second] = elem
			count++
			if count > PartialThreshold {
				return i+1 == end
			}
		}
	}
	return true
}

// partialInsertionSortUnguarded is the unguarded analogue of
// partialInsertionSort, for use when leftmost is false.
func partialInsertionSortUnguarded[T any](data []T, less Less[T], begin, end int) bool {
	if begin == end {
		return true
	}
	count := 0
	for i := begin + 1; i < end; i++ {
		second := i
		first := i - 1
		if less(data[second], data[first]) {
			elem := data[second]
			for {
				data[second] = data[first]
				second--
				first--
				if !less(elem, data[first]) {
					break
				}
			}
			data[second] = elem
			count++
			if count > PartialThreshold {
				return i+1 == end
			}
		}
	}
	return true
}

// sort2Branchless orders data[a], data[b] with a single compare, swapping
// the pair when it is out of order.
func sort2Branchless[T any](data []T, less Less[T], a, b int) {
	lower := less(data[b], data[a])
	x, y := data[a], data[b]
	if lower {
		data[a], data[b] = y, x
	}
}

// sort3PartialBranchless sorts a, b, c assuming data[b] <= data[c] already
// holds; 1-2 compares, returning after the first when data[a] belongs after
// data[c].
func sort3PartialBranchless[T any](data []T, less Less[T], a, b, c int) {
	// Insert data[a] into the already-sorted pair (data[b], data[c]).
	if less(data[c], data[a]) {
		// data[a] belongs strictly after data[c]: rotate a->b->c->a.
		data[a], data[b], data[c] = data[b], data[c], data[a]
		return
	}
	if less(data[b], data[a]) {
		data[a], data[b] = data[b], data[a]
	}
}

// sort3Branchless sorts a, b, c (2-3 compares) by first ordering b,c then
// running the partial 3-sort.
func sort3Branchless[T any](data []T, less Less[T], a, b, c int) {
	sort2Branchless(data, less, b, c)
	sort3PartialBranchless(data, less, a, b, c)
}

// sort5Branchless sorts x1..x5 via a fixed sequence of sort2Branchless and
// sort3PartialBranchless steps (at most 9 compares).
func sort5Branchless[T any](data []T, less Less[T], x1, x2, x3, x4, x5 int) {
	sort2Branchless(data, less, x1, x2)
	sort2Branchless(data, less, x4, x5)
	sort3PartialBranchless(data, less, x3, x4, x5)
	sort2Branchless(data, less, x2, x5)
	sort3PartialBranchless(data, less, x1, x3, x4)
	sort3PartialBranchless(data, less, x2, x3, x4)
}

// sort3 orders a, b, c with the ordinary (branchy) comparison-swap scheme:
// 2-3 compares, 0-2 swaps.
func sort3[T any](data []T, less Less[T], a, b, c int) {
	if !less(data[b], data[a]) { // a <= b
		if !less(data[c], data[b]) { // b <= c
			return
		}
		// b >= a, but b > c --> swap
		data[b], data[c] = data[c], data[b]
		// after swap: a <= c, b < c
		if less(data[b], data[a]) {
			data[a], data[b] = data[b], data[a]
		}
		return
	}
	if less(data[c], data[b]) {
		// a > b, b > c
		data[a], data[c] = data[c], data[a]
		return
	}
	// a > b, b <= c
	data[a], data[b] = data[b], data[a]
	// a < b, a <= c
	if less(data[c], data[b]) {
		data[b], data[c] = data[c], data[b]
	}
}
