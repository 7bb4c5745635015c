// Package ppqsort implements a parallel, in-place, pattern-defeating
// quicksort: an introsort-guaranteed (O(n log n) worst case) comparison
// sort that runs linear-time on common patterns (sorted, reverse-sorted,
// few distinct values, constant runs) and scales across cores via a
// work-stealing thread pool once a subrange is large enough to amortize
// the coordination cost.
package ppqsort

import (
	"runtime"

	"golang.org/x/exp/constraints"
)

// options holds the per-call tunables assembled from Option values, in the
// style of microbatch.BatcherConfig's functional options.
type options struct {
	policy  Policy
	threads int
	logger  Logger
}

// Option configures a Sort/SortFunc call.
type Option func(*options)

// WithPolicy selects the execution policy. The default is Sequential.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithThreads overrides the worker count used by a Parallel/ParallelBranchless
// sort. The default is runtime.GOMAXPROCS(0). A value of 1 makes a parallel
// policy behave like its sequential counterpart; values below 1 make the
// call return ErrInvalidArgument.
func WithThreads(n int) Option {
	return func(o *options) { o.threads = n }
}

// WithLogger supplies a Logger for the Debug-gated partition assertion
// path; it has no effect unless Debug is true.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

func defaultOptions() options {
	return options{
		policy:  Sequential,
		threads: runtime.GOMAXPROCS(0),
		logger:  discard{},
	}
}

// Sort sorts data in ascending order using constraints.Ordered's built-in
// "<" as the comparator. Since the elements are ordered scalars compared
// with "<", Sequential and Parallel run as SequentialBranchless and
// ParallelBranchless.
func Sort[T constraints.Ordered](data []T, opts ...Option) error {
	opts = append(opts[:len(opts):len(opts)], func(o *options) {
		switch o.policy {
		case Sequential:
			o.policy = SequentialBranchless
		case Parallel:
			o.policy = ParallelBranchless
		}
	})
	return SortFunc(data, func(a, b T) bool { return a < b }, opts...)
}

// SortFunc sorts data in place according to less, which must define a
// strict weak ordering (see Less). Returns ErrInvalidArgument if less is
// nil or an option supplies an invalid configuration.
func SortFunc[T any](data []T, less Less[T], opts ...Option) error {
	if less == nil {
		return ErrInvalidArgument
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.threads < 1 {
		return ErrInvalidArgument
	}
	if Debug && o.logger != nil {
		assertLogger = o.logger
	}

	n := len(data)
	if n < 2 {
		return nil
	}

	badAllowed := initialBadAllowed(n)
	branchless := o.policy.branchless()

	if !o.policy.parallel() || o.threads < 2 {
		seqLoop(data, less, 0, n, badAllowed, true, branchless)
		return nil
	}

	seqThreshold := (n + 1) / o.threads / ParThresholdDivisor
	if seqThreshold < InsertionThreshold {
		seqThreshold = InsertionThreshold
	}

	pl := newPool(o.threads)
	parLoop(data, less, 0, n, badAllowed, seqThreshold, o.threads, pl, true, branchless)
	pl.waitAndStop()
	return nil
}
