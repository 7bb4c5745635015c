package ppqsort

// Parallel sort driver. Mirrors seqLoop (driver.go) but partitions with the
// parallel block partitioners once the subrange is large enough to justify
// the coordination cost, halving the thread budget and handing the smaller
// side to the pool as a new task while continuing the loop, in the current
// goroutine, on the larger side.

// parLoop sorts data[begin:end], using up to threads workers from pl for
// partitions above seqThreshold elements, falling back to seqLoop
// otherwise.
func parLoop[T any](data []T, less Less[T], begin, end, badAllowed, seqThreshold, threads int, pl *pool, leftmost, branchless bool) {
	for {
		size := end - begin
		insThreshold := InsertionThreshold
		if branchless {
			insThreshold = InsertionThresholdBranchless
		}
		if size < insThreshold {
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

		if threads < 2 || size < seqThreshold {
			seqLoop(data, less, begin, end, badAllowed, leftmost, branchless)
			return
		}

		var pivotPos int
		var alreadyPartitioned bool
		if branchless {
			pivotPos, alreadyPartitioned = partitionRightBranchlessPar(data, less, begin, end, threads, pl)
		} else {
			pivotPos, alreadyPartitioned = partitionToRightPar(data, less, begin, end, threads, pl)
		}
		assertPartitioned(data, less, begin, pivotPos, end)

		lSize := pivotPos - begin
		rSize := end - pivotPos - 1

		if alreadyPartitioned {
			lDone := false
			if lSize > insThreshold {
				if leftmost {
					lDone = partialInsertionSort(data, less, begin, pivotPos)
				} else {
					lDone = partialInsertionSortUnguarded(data, less, begin, pivotPos)
				}
			}
			rDone := false
			if rSize > insThreshold {
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

		threads /= 2
		taskBad, taskThreads := badAllowed, threads

		if lSize < rSize {
			lBegin, lEnd, lLeftmost := begin, pivotPos, leftmost
			pl.pushTask(func() {
				parLoop(data, less, lBegin, lEnd, taskBad, seqThreshold, taskThreads, pl, lLeftmost, branchless)
			})
			begin = pivotPos + 1
			leftmost = false
		} else {
			rBegin, rEnd := pivotPos+1, end
			pl.pushTask(func() {
				parLoop(data, less, rBegin, rEnd, taskBad, seqThreshold, taskThreads, pl, false, branchless)
			})
			end = pivotPos
		}
	}
}
