package easytest

import (
	"io"
	"os"
)

// Defaults for property trial configuration, overridable per run with
// WithTrials and WithDiscardBudget, or per leaf with Trials and DiscardBudget.
const (
	DefaultTrials        = 100
	DefaultDiscardBudget = 100

	defaultMaxSize = 100
)

// options configure one run. The zero configuration comes from newOptions;
// callers adjust it through functional Options.
type options struct {
	out             io.Writer
	reporter        func(Result)
	trials          int
	discardBudget   int
	maxSize         int
	parallelism     int
	failOnAllGaveUp bool
}

// Option adjusts how a run executes, reports, and aggregates.
type Option func(*options)

// WithOutput directs the rendered report to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithReporter registers a callback invoked with each Result as it is
// produced, before the final report is rendered. Used for live progress.
func WithReporter(fn func(Result)) Option {
	return func(o *options) { o.reporter = fn }
}

// WithTrials sets the default trial count for property checks in this run.
func WithTrials(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.trials = n
		}
	}
}

// WithDiscardBudget sets the default discard budget for property checks in
// this run. A property that discards this many inputs before completing its
// trials gives up.
func WithDiscardBudget(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.discardBudget = n
		}
	}
}

// WithMaxSize caps the size parameter passed to generators on the last trial.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithParallelism runs up to n leaves concurrently. Seeds are precomputed by
// traversal position before dispatch, so per-leaf seeds and result ordering
// are identical to a sequential run.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithFailOnAllGaveUp escalates the run status to failed when every executed
// leaf gave up. By default giving up is a warning-level outcome and never
// fails the run on its own.
func WithFailOnAllGaveUp(on bool) Option {
	return func(o *options) { o.failOnAllGaveUp = on }
}

func newOptions(opts []Option) options {
	o := options{
		out:           os.Stdout,
		trials:        DefaultTrials,
		discardBudget: DefaultDiscardBudget,
		maxSize:       defaultMaxSize,
		parallelism:   1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
