package ppqsort

import "github.com/sirupsen/logrus"

// Logger is the logging interface used by this package's debug-assertion
// path (see Debug). It's a subset of logrus.FieldLogger.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// discard implements a Logger that does nothing. It's the default, so that
// a correct program sorting trillions of elements never pays for logging.
type discard struct{}

var (
	_ Logger = discard{}
	_ Logger = Logrus{}
)

func (discard) WithField(string, any) Logger     { return discard{} }
func (discard) WithFields(map[string]any) Logger { return discard{} }
func (discard) WithError(error) Logger           { return discard{} }
func (discard) Debug(...any)                     {}
func (discard) Info(...any)                      {}
func (discard) Warn(...any)                      {}
func (discard) Error(...any)                     {}

// Logrus adapts a github.com/sirupsen/logrus logger (or entry) to Logger.
type Logrus struct{ logrus.FieldLogger }

func (x Logrus) WithField(key string, value any) Logger {
	return Logrus{FieldLogger: x.FieldLogger.WithField(key, value)}
}

func (x Logrus) WithFields(fields map[string]any) Logger {
	return Logrus{FieldLogger: x.FieldLogger.WithFields(fields)}
}

func (x Logrus) WithError(err error) Logger {
	return Logrus{FieldLogger: x.FieldLogger.WithError(err)}
}

// Debug controls whether the partition debug-assertion path (internal
// consistency checks described in the design's error-handling section) is
// active. It's false by default; turning it on catches comparator contract
// violations early. Flipping it is not safe for concurrent use
// with an in-flight Sort call.
var Debug = false

// assertLogger is used by the debug-assertion path when Debug is enabled
// but the caller didn't supply a Logger via WithLogger.
var assertLogger Logger = discard{}

// assertPartitioned panics (after logging at Error level) if data[begin:pivot]
// and data[pivot+1:end] don't actually satisfy the partition invariant
// around data[pivot] (left elements not greater than the pivot, right
// elements not less than it). It returns at once unless Debug is true; the
// check is O(n), so it only runs in debug mode.
func assertPartitioned[T any](data []T, less Less[T], begin, pivot, end int) {
	if !Debug {
		return
	}
	p := data[pivot]
	for i := begin; i < pivot; i++ {
		if less(p, data[i]) {
			assertLogger.WithField("index", i).Error("ppqsort: partition invariant violated on left side")
			panic("ppqsort: partition invariant violated: left element greater than pivot")
		}
	}
	for i := pivot + 1; i < end; i++ {
		if less(data[i], p) {
			assertLogger.WithField("index", i).Error("ppqsort: partition invariant violated on right side")
			panic("ppqsort: partition invariant violated: right element less than pivot")
		}
	}
}
