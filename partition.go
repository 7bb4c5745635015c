package ppqsort

// Sequential classic (Hoare-style) partitioning: the pdqsort-derived
// partition_right/partition_left scheme PPQSort's sequential path uses.

// partitionRight partitions data[begin:end] around data[begin] (the pivot),
// leaving elements < pivot to its left and elements >= pivot to its right,
// places the pivot at its final index, and returns that index plus whether
// the range was found to already be partitioned (a signal to the caller
// that the input may already be sorted or reverse-sorted).
func partitionRight[T any](data []T, less Less[T], begin, end int) (pivotPos int, alreadyPartitioned bool) {
	pivot := data[begin]

	first := begin
	last := end
	for {
		first++
		if !less(data[first], pivot) {
			break
		}
	}
	if first-1 == begin {
		for first < last {
			last--
			if less(data[last], pivot) {
				break
			}
		}
	} else {
		for {
			last--
			if less(data[last], pivot) {
				break
			}
		}
	}

	alreadyPartitioned = first >= last

	for first < last {
		data[first], data[last] = data[last], data[first]
		for {
			first++
			if !less(data[first], pivot) {
				break
			}
		}
		for {
			last--
			if less(data[last], pivot) {
				break
			}
		}
	}

	pivotPos = first - 1
	data[begin] = data[pivotPos]
	data[pivotPos] = pivot
	return pivotPos, alreadyPartitioned
}

// partitionLeft is partitionRight's mirror, used when the subrange is not
// leftmost and its predecessor data[begin-1] is equal to the chosen pivot:
// it partitions so elements <= pivot land left, elements > pivot land right,
// biasing the split toward the left side.
func partitionLeft[T any](data []T, less Less[T], begin, end int) (pivotPos int) {
	pivot := data[begin]

	first := begin
	last := end
	for {
		last--
		if !less(pivot, data[last]) {
			break
		}
	}
	if last+1 == end {
		for first < last {
			first++
			if less(pivot, data[first]) {
				break
			}
		}
	} else {
		for {
			first++
			if less(pivot, data[first]) {
				break
			}
		}
	}

	for first < last {
		data[first], data[last] = data[last], data[first]
		for {
			last--
			if !less(pivot, data[last]) {
				break
			}
		}
		for {
			first++
			if less(pivot, data[first]) {
				break
			}
		}
	}

	pivotPos = last
	data[begin] = data[pivotPos]
	data[pivotPos] = pivot
	return pivotPos
}
