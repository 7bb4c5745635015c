package ppqsort

import "errors"

// Sentinel errors for the two failure kinds named in the design:
// ErrInvalidArgument for programmer error in API use, which Sort/SortFunc
// return, and ErrOutOfMemory for scratch allocation failure, which no
// function in this package returns (a failed allocation panics in the Go
// runtime instead).
var (
	// ErrInvalidArgument is returned when the caller passes arguments the
	// algorithm cannot act on: a nil comparator, a negative thread count, etc.
	ErrInvalidArgument = errors.New("ppqsort: invalid argument")

	// ErrOutOfMemory names the failure of a scratch allocation needed to run
	// the sort. It is not returned by any function in this package.
	ErrOutOfMemory = errors.New("ppqsort: out of memory")
)
