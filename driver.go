package ppqsort

import "math/bits"

// Sequential recursive sort driver: pattern detection, pivot selection,
// the classic/branchless partition choice, introsort fallback to heapsort,
// and the deterministic adversary-defeating shuffle.

// seqLoop sorts data[begin:end] sequentially. badAllowed bounds the number
// of highly-unbalanced partitions tolerated before falling back to heapsort
// (introsort's worst-case guarantee); leftmost is false whenever begin-1
// already holds an element known to be <= everything in [begin, end).
func seqLoop[T any](data []T, less Less[T], begin, end, badAllowed int, leftmost bool, branchless bool) {
	for {
		size := end - begin
		threshold := InsertionThreshold
		if branchless {
			threshold = InsertionThresholdBranchless
		}
		if size < threshold {
			if size > 1 {
				if leftmost {
					insertionSort(data, less, begin, end)
				} else {
					insertionSortUnguarded(data, less, begin, end)
				}
			}
			return
		}

		choosePivot(data, less, begin, end, branchless)

		if !leftmost && !less(data[begin-1], data[begin]) {
			pivot := partitionLeft(data, less, begin, end)
			begin = pivot + 1
			continue
		}

		var pivotPos int
		var alreadyPartitioned bool
		if branchless {
			pivotPos, alreadyPartitioned = partitionRightBranchless(data, less, begin, end)
		} else {
			pivotPos, alreadyPartitioned = partitionRight(data, less, begin, end)
		}
		assertPartitioned(data, less, begin, pivotPos, end)

		lSize := pivotPos - begin
		rSize := end - pivotPos - 1

		if alreadyPartitioned {
			lDone := false
			if lSize > threshold {
				if leftmost {
					lDone = partialInsertionSort(data, less, begin, pivotPos)
				} else {
					lDone = partialInsertionSortUnguarded(data, less, begin, pivotPos)
				}
			}
			rDone := false
			if rSize > threshold {
				rDone = partialInsertionSortUnguarded(data, less, pivotPos+1, end)
			}
			if lDone && rDone {
				return
			}
			if lDone {
				begin = pivotPos + 1
				leftmost = false
				continue
			}
			if rDone {
				end = pivotPos
				continue
			}
			// Neither side completed: fall through to the ordinary recursion
			// below so both get revisited under the usual balance logic.
		}

		highlyUnbalanced := lSize < size/PartitionRatio || rSize < size/PartitionRatio
		if highlyUnbalanced {
			badAllowed--
			if badAllowed == 0 {
				heapsort(data, less, begin, end)
				return
			}
			deterministicShuffle(data, begin, pivotPos)
			deterministicShuffle(data, pivotPos+1, end)
		}

		if lSize < rSize {
			seqLoop(data, less, begin, pivotPos, badAllowed, leftmost, branchless)
			begin = pivotPos + 1
			leftmost = false
		} else {
			seqLoop(data, less, pivotPos+1, end, badAllowed, false, branchless)
			end = pivotPos
		}
	}
}

// deterministicShuffle perturbs four fixed positions (at 1/4 and 3/4 of the
// subrange) to break adversarial patterns without resorting to randomness,
// keeping the sort's behavior reproducible across runs.
func deterministicShuffle[T any](data []T, begin, end int) {
	size := end - begin
	if size < 4 {
		return
	}
	q := size / 4
	data[begin], data[begin+q] = data[begin+q], data[begin]
	data[end-1], data[end-1-q] = data[end-1-q], data[end-1]
}

// initialBadAllowed returns floor(log2(n)), the introsort recursion-depth
// budget before falling back to heapsort.
func initialBadAllowed(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// heapsort sorts data[begin:end] in place using a binary max-heap built
// directly over the subrange (not container/heap's interface-based API,
// which would allocate a per-call adapter on this worst-case fallback
// path), the same tradeoff upstream PPQSort's introsort fallback makes by
// operating on raw iterators rather than a container.
func heapsort[T any](data []T, less Less[T], begin, end int) {
	n := end - begin
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, less, begin, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[begin], data[begin+i] = data[begin+i], data[begin]
		siftDown(data, less, begin, 0, i)
	}
}

func siftDown[T any](data []T, less Less[T], begin, root, n int) {
	for {
		largest := root
		l := 2*root + 1
		r := 2*root + 2
		if l < n && less(data[begin+largest], data[begin+l]) {
			largest = l
		}
		if r < n && less(data[begin+largest], data[begin+r]) {
			largest = r
		}
		if largest == root {
			return
		}
		data[begin+root], data[begin+largest] = data[begin+largest], data[begin+root]
		root = largest
	}
}
