package easytest

import (
	"fmt"
	"reflect"
)

// T is the context handed to a check while it runs. It records footnotes and
// signals failure or skip back to the executor. A nil-safe zero value is
// created per check; T must not be retained after the check returns.
type T struct {
	notes []string
}

// checkFailure and checkSkip are the control-flow panics raised by T and
// recovered by the executor. Any other panic value is an unexpected runtime
// fault and is converted into a failed result for the current leaf only.
type checkFailure struct{ msg string }

type checkSkip struct{}

// Expect fails the check when cond is false.
func (t *T) Expect(cond bool) {
	if !cond {
		panic(checkFailure{msg: "expectation failed"})
	}
}

// Expectf fails the check with a formatted message when cond is false.
func (t *T) Expectf(cond bool, format string, args ...any) {
	if !cond {
		panic(checkFailure{msg: fmt.Sprintf(format, args...)})
	}
}

// ExpectEq fails the check unless expected and actual are deeply equal.
func (t *T) ExpectEq(expected, actual any) {
	if !reflect.DeepEqual(expected, actual) {
		panic(checkFailure{msg: fmt.Sprintf("expected %v, got %v", expected, actual)})
	}
}

// Crash fails the check immediately with msg.
func (t *T) Crash(msg string) {
	panic(checkFailure{msg: msg})
}

// Crashf fails the check immediately with a formatted message.
func (t *T) Crashf(format string, args ...any) {
	panic(checkFailure{msg: fmt.Sprintf(format, args...)})
}

// Skip marks the check as skipped and stops it.
func (t *T) Skip() {
	panic(checkSkip{})
}

// Note records a footnote carried into the result, shown when the check fails.
func (t *T) Note(msg string) {
	t.notes = append(t.notes, msg)
}

// Notef records a formatted footnote.
func (t *T) Notef(format string, args ...any) {
	t.notes = append(t.notes, fmt.Sprintf(format, args...))
}

// checkOutcome is the contained result of running one check function.
type checkOutcome struct {
	failed  bool
	skipped bool
	message string
	notes   []string
}

// protect runs fn with a fresh check context, converting control-flow panics
// and unexpected runtime faults into an outcome. A fault inside one check
// never aborts traversal of sibling leaves.
func protect(fn func(*T)) (out checkOutcome) {
	t := &T{}
	defer func() {
		out.notes = t.notes
		if r := recover(); r != nil {
			switch v := r.(type) {
			case checkFailure:
				out.failed = true
				out.message = v.msg
			case checkSkip:
				out.skipped = true
			default:
				out.failed = true
				out.message = fmt.Sprintf("unexpected error: %v", v)
			}
		}
	}()
	fn(t)
	return out
}
