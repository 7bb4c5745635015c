package ppqsort

import "sync/atomic"

// Parallel classic block partition: threads workers each claim disjoint
// blockSize-element blocks from the left and right interior via a shared
// atomic offset/distance counter, match "wrong side" elements discovered in
// their currently-held pair of blocks, and claim fresh blocks as theirs
// empty out. A worker that can no longer claim on one side, with residue
// still outstanding, leaves its current block "dirty"; dirty blocks are
// compacted into one contiguous segment and finished off by a plain
// sequential Hoare partition. Joins all workers (via the barrier) before
// the repair step rather than repairing while workers race — see
// DESIGN.md.
//
// partition_branchless_par.go runs the same core with BlockSizeBranchless;
// the two differ only in block size.

type parBlockResult struct {
	leftDirtyStart  int
	leftOffsets     []offsetIndex
	rightDirtyStart int
	rightOffsets    []offsetIndex
}

// partitionToRightPar partitions data[begin:end] around data[begin] using
// threads workers drawn from pl. Falls back to the sequential classic
// partitioner when the range is too small to amortize the block-claim
// machinery.
func partitionToRightPar[T any](data []T, less Less[T], begin, end, threads int, pl *pool) (pivotPos int, alreadyPartitioned bool) {
	n := end - begin
	blockSize := BlockSizeClassic
	if threads < 2 || n-1 <= 2*blockSize*threads {
		return partitionRight(data, less, begin, end)
	}
	return parBlockPartition(data, less, begin, end, threads, blockSize, pl)
}

// parBlockPartition is the shared block-claiming partition core used by
// both the classic and branchless parallel partitioners; only blockSize
// differs between callers (see partition_branchless_par.go).
func parBlockPartition[T any](data []T, less Less[T], begin, end, threads, blockSize int, pl *pool) (pivotPos int, alreadyPartitioned bool) {
	n := end - begin
	pivot := data[begin]

	var firstOffset, lastOffset, distance atomic.Int64
	firstOffset.Store(int64(1 + blockSize*threads))
	lastOffset.Store(int64(n - blockSize*threads))
	distance.Store(lastOffset.Load() - firstOffset.Load())

	claimLeft := func() (int, bool) {
		d := distance.Add(-int64(blockSize))
		if d < int64(blockSize) {
			distance.Add(int64(blockSize))
			return 0, false
		}
		rel := firstOffset.Add(int64(blockSize)) - int64(blockSize)
		return begin + int(rel), true
	}
	claimRight := func() (int, bool) {
		d := distance.Add(-int64(blockSize))
		if d < int64(blockSize) {
			distance.Add(int64(blockSize))
			return 0, false
		}
		rel := lastOffset.Add(-int64(blockSize))
		return begin + int(rel), true
	}

	results := make([]parBlockResult, threads)
	var swapped atomic.Bool

	b := newBarrier(threads + 1)
	for i := 0; i < threads; i++ {
		i := i
		leftStart := begin + 1 + i*blockSize
		rightStart := begin + n - (i+1)*blockSize
		pl.pushTask(func() {
			results[i] = runParBlockWorker(data, less, pivot, blockSize, leftStart, rightStart, claimLeft, claimRight, &swapped)
			b.wait()
		})
	}
	b.wait()

	firstOffsetFinal := begin + int(firstOffset.Load())
	lastOffsetFinal := begin + int(lastOffset.Load())

	firstClean, lastClean := compactDirty(data, results, firstOffsetFinal, lastOffsetFinal, blockSize)
	if firstClean != firstOffsetFinal || lastClean != lastOffsetFinal {
		swapped.Store(true)
	}

	split := hoarePartitionKnownPivot(data, less, firstClean, lastClean, pivot)

	pivotPos = split - 1
	data[begin], data[pivotPos] = data[pivotPos], data[begin]

	return pivotPos, !swapped.Load()
}

// runParBlockWorker runs one worker's claim-scan-match loop starting from
// its pre-assigned left/right blocks, recording whatever block it was still
// holding unresolved when it could no longer claim further. The block
// classification step (populateBlockLeft/populateBlockRight) is a full
// linear scan, identical to the one the sequential branchless partitioner
// uses — see the file comment for why the classic/branchless distinction
// doesn't carry over meaningfully to this level in Go.
func runParBlockWorker[T any](data []T, less Less[T], pivot T, blockSize, leftStart, rightStart int, claimLeft, claimRight func() (int, bool), swapped *atomic.Bool) parBlockResult {
	offsetsL := make([]offsetIndex, blockSize)
	offsetsR := make([]offsetIndex, blockSize)
	numL, numR := 0, 0
	curL, curR := leftStart, rightStart

	for {
		if numL == 0 {
			numL = populateBlockLeft(data, less, curL, blockSize, pivot, offsetsL)
			if numL > 0 {
				swapped.Store(true)
			}
		}
		if numR == 0 {
			numR = populateBlockRight(data, less, curR+blockSize, blockSize, pivot, offsetsR)
			if numR > 0 {
				swapped.Store(true)
			}
		}

		num := numL
		if numR < num {
			num = numR
		}
		if num > 0 {
			swapOffsetsCore(data, curL, curR+blockSize, offsetsL, offsetsR, num, numL == numR)
			if numL > num {
				copy(offsetsL[:numL-num], offsetsL[num:numL])
			}
			if numR > num {
				copy(offsetsR[:numR-num], offsetsR[num:numR])
			}
			numL -= num
			numR -= num
		}

		if numL == 0 && numR == 0 {
			nl, lok := claimLeft()
			nr, rok := claimRight()
			if !lok || !rok {
				if lok {
					numL = populateBlockLeft(data, less, nl, blockSize, pivot, offsetsL)
					curL = nl
					if numL > 0 {
						swapped.Store(true)
					}
				}
				if rok {
					numR = populateBlockRight(data, less, nr+blockSize, blockSize, pivot, offsetsR)
					curR = nr
					if numR > 0 {
						swapped.Store(true)
					}
				}
				break
			}
			curL, curR = nl, nr
			continue
		}

		if numL > 0 {
			nr, ok := claimRight()
			if !ok {
				break
			}
			curR = nr
			continue
		}

		nl, ok := claimLeft()
		if !ok {
			break
		}
		curL = nl
	}

	res := parBlockResult{leftDirtyStart: -1, rightDirtyStart: -1}
	if numL > 0 {
		res.leftDirtyStart = curL
		res.leftOffsets = append([]offsetIndex(nil), offsetsL[:numL]...)
	}
	if numR > 0 {
		res.rightDirtyStart = curR
		res.rightOffsets = append([]offsetIndex(nil), offsetsR[:numR]...)
	}
	return res
}

// hoarePartitionKnownPivot runs a plain two-pointer Hoare scan over
// data[begin:end] against an externally-supplied pivot value (as opposed
// to partitionRight, which extracts the pivot from data[begin] itself). It
// finishes classifying the compacted dirty segment left behind by a
// parallel block partition.
func hoarePartitionKnownPivot[T any](data []T, less Less[T], begin, end int, pivot T) int {
	i, j := begin, end
	for {
		for i < j && less(data[i], pivot) {
			i++
		}
		for i < j && !less(data[j-1], pivot) {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j-1] = data[j-1], data[i]
		i++
		j--
	}
	return i
}

// compactDirty relocates every dirty block recorded in results into one
// contiguous segment adjacent to the claimed/unclaimed boundary on its
// side, swapping whole blocks with whatever already-clean content occupies
// the target slots. Returns the resulting [firstClean, lastClean) segment,
// which is the only range left unresolved relative to the pivot.
func compactDirty[T any](data []T, results []parBlockResult, firstOffsetFinal, lastOffsetFinal, blockSize int) (firstClean, lastClean int) {
	var leftDirty, rightDirty []int
	for _, r := range results {
		if r.leftDirtyStart >= 0 {
			leftDirty = append(leftDirty, r.leftDirtyStart)
		}
		if r.rightDirtyStart >= 0 {
			rightDirty = append(rightDirty, r.rightDirtyStart)
		}
	}

	firstClean = firstOffsetFinal - len(leftDirty)*blockSize
	lastClean = lastOffsetFinal + len(rightDirty)*blockSize

	relocateDirtyBlocks(data, leftDirty, firstClean, firstOffsetFinal, blockSize)
	relocateDirtyBlocks(data, rightDirty, lastOffsetFinal, lastClean, blockSize)

	return firstClean, lastClean
}

// relocateDirtyBlocks ensures every block start in dirty ends up within
// [regionStart, regionEnd) (stepping by blockSize), swapping whole blocks
// with whatever already-clean occupant sits in each free slot.
func relocateDirtyBlocks[T any](data []T, dirty []int, regionStart, regionEnd, blockSize int) {
	if len(dirty) == 0 {
		return
	}
	inRegion := make(map[int]bool, len(dirty))
	var needsMove []int
	for _, d := range dirty {
		if d >= regionStart && d < regionEnd {
			inRegion[d] = true
		} else {
			needsMove = append(needsMove, d)
		}
	}
	slot := regionStart
	for _, d := range needsMove {
		for inRegion[slot] {
			slot += blockSize
		}
		swapBlocks(data, d, slot, blockSize)
		inRegion[slot] = true
		slot += blockSize
	}
}

func swapBlocks[T any](data []T, a, b, n int) {
	for i := 0; i < n; i++ {
		data[a+i], data[b+i] = data[b+i], data[a+i]
	}
}
