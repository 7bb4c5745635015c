package ppqsort

// Tuning constants carried from upstream PPQSort. Exported so callers can
// reason about the thresholds this package applies, even though they are
// not currently settable per-call.
const (
	// InsertionThreshold is the subrange size below which insertion sort
	// runs instead of partitioning, for the classic (non-branchless) path.
	InsertionThreshold = 12

	// InsertionThresholdBranchless is InsertionThreshold's counterpart when
	// the branchless partition is active; branchless partitioning has
	// higher fixed overhead, so the crossover point is larger.
	InsertionThresholdBranchless = 32

	// PartialThreshold bounds the number of shift-runs partialInsertionSort
	// will attempt before giving up on an already-partitioned side.
	PartialThreshold = 8

	// MedianThreshold is the subrange size above which pivot selection
	// switches from median-of-3 to pseudo-median-of-9.
	MedianThreshold = 128

	// PartitionRatio defines "highly unbalanced": the smaller side of a
	// partition is pathological if it's smaller than size/PartitionRatio.
	PartitionRatio = 8

	// BlockSizeBranchless is both the block length and the offset-buffer
	// capacity used by the branchless partitioners (sequential and
	// parallel). Must fit in offsetIndex (uint16) without overflow.
	BlockSizeBranchless = 1536

	// BlockSizeClassic is the block length claimed by workers in the
	// parallel classic (Hoare) partitioner.
	BlockSizeClassic = 1 << 14

	// ParThresholdDivisor is used to derive the per-call sequential
	// cutoff: seqThreshold = (n+1)/threads/ParThresholdDivisor, floored at
	// InsertionThreshold.
	ParThresholdDivisor = 10
)

// offsetIndex is the element type of the branchless partitioners' offset
// buffers. It must be able to represent every index within one block, i.e.
// BlockSizeBranchless-1. The constant expression below fails to compile if
// that invariant is ever violated by a change to BlockSizeBranchless.
type offsetIndex = uint16

const _ = uint16(BlockSizeBranchless - 1) // compile-time range check: a compile error on overflow
