package ppqsort

// Sequential branchless partitioning: scans fixed-size blocks from each end,
// records into an offset buffer the indices that are on the wrong side of
// the pivot, then swaps the recorded offsets against each other pairwise.
// The scan/record step always writes the index and only conditionally
// advances a counter, so it touches memory in the same pattern whatever the
// comparison results are.

// swapOffsetsCore exchanges the first num elements recorded in offsetsL
// (counted forward from first) with the first num recorded in offsetsR
// (counted backward from last-1). When numLEqNumR is set each pair is swapped
// directly; otherwise the elements are moved as one cyclic permutation
// through a single temporary.
func swapOffsetsCore[T any](data []T, first, last int, offsetsL, offsetsR []offsetIndex, num int, numLEqNumR bool) {
	if numLEqNumR {
		for i := 0; i < num; i++ {
			l, r := first+int(offsetsL[i]), last-1-int(offsetsR[i])
			data[l], data[r] = data[r], data[l]
		}
		return
	}
	l := first + int(offsetsL[0])
	r := last - 1 - int(offsetsR[0])
	tmp := data[l]
	data[l] = data[r]
	for i := 1; i < num; i++ {
		l = first + int(offsetsL[i])
		data[r] = data[l]
		r = last - 1 - int(offsetsR[i])
		data[l] = data[r]
	}
	data[r] = tmp
}

// populateBlockLeft scans exactly n elements forward from offset, recording
// into buf the (0-based) offsets of elements that are NOT less than pivot
// (i.e. belong on the right side). Returns the count recorded.
func populateBlockLeft[T any](data []T, less Less[T], offset, n int, pivot T, buf []offsetIndex) int {
	count := 0
	for i := 0; i < n; i++ {
		buf[count] = offsetIndex(i)
		if !less(data[offset+i], pivot) {
			count++
		}
	}
	return count
}

// populateBlockRight scans exactly n elements backward from offset
// (exclusive), recording offsets of elements that ARE less than pivot (i.e.
// belong on the left side). Offset i in buf refers to data[offset-1-i].
func populateBlockRight[T any](data []T, less Less[T], offset, n int, pivot T, buf []offsetIndex) int {
	count := 0
	for i := 0; i < n; i++ {
		buf[count] = offsetIndex(i)
		if less(data[offset-1-i], pivot) {
			count++
		}
	}
	return count
}

// partitionRightBranchless partitions data[begin:end] around data[begin]
// using the offset-buffer block scan, placing the pivot at its final
// position. Returns the pivot's final index and whether the range was
// already partitioned.
func partitionRightBranchless[T any](data []T, less Less[T], begin, end int) (pivotPos int, alreadyPartitioned bool) {
	pivot := data[begin]
	first := begin + 1
	last := end

	for first < last && less(data[first], pivot) {
		first++
	}
	if first == begin+1 {
		for first < last && !less(data[last-1], pivot) {
			last--
		}
	} else {
		for !less(data[last-1], pivot) {
			last--
		}
	}

	alreadyPartitioned = first >= last
	if !alreadyPartitioned {
		var offsetsL, offsetsR [BlockSizeBranchless]offsetIndex
		numL, numR := 0, 0
		startL, startR := first, last

		for first < last {
			// Each side's scan window is sized from the window as it stands
			// right before that side's own populate call, not from a
			// pre-loop snapshot shared by both sides: first is advanced
			// immediately after the left scan, so the right scan (if it
			// runs this same iteration) sizes itself against the
			// already-shrunk window and the two blocks never overlap.
			if numL == 0 {
				startL = first
				lenL := BlockSizeBranchless
				if lenL > last-first {
					lenL = last - first
				}
				numL = populateBlockLeft(data, less, first, lenL, pivot, offsetsL[:])
				first += lenL
			}
			if numR == 0 {
				startR = last
				lenR := BlockSizeBranchless
				if lenR > last-first {
					lenR = last - first
				}
				numR = populateBlockRight(data, less, last, lenR, pivot, offsetsR[:])
				last -= lenR
			}

			num := numL
			if numR < num {
				num = numR
			}
			if num > 0 {
				swapOffsetsCore(data, startL, startR, offsetsL[:], offsetsR[:], num, numL == numR)
				if numL > num {
					copy(offsetsL[:numL-num], offsetsL[num:numL])
				}
				if numR > num {
					copy(offsetsR[:numR-num], offsetsR[num:numR])
				}
				numL -= num
				numR -= num
			}
		}

		// At most one side can have unmatched offsets left: the window closed
		// while one side still had more misplaced elements queued than the
		// other had room to absorb. Swap each, highest offset first, against
		// the end of its own block that touches the closed window (the tail
		// of a left block, the head of a right block).
		if numL != 0 {
			for numL > 0 {
				numL--
				last--
				l := startL + int(offsetsL[numL])
				data[l], data[last] = data[last], data[l]
			}
			first = last
		} else if numR != 0 {
			for numR > 0 {
				numR--
				r := startR - 1 - int(offsetsR[numR])
				data[first], data[r] = data[r], data[first]
				first++
			}
			last = first
		}
	}

	pivotPos = first - 1
	data[begin] = data[pivotPos]
	data[pivotPos] = pivot
	return pivotPos, alreadyPartitioned
}
