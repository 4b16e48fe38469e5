package easytest

import "errors"

// RunStatus is the overall outcome of one run.
type RunStatus int

const (
	// RunSucceeded means no leaf failed (and the give-up policy, if enabled,
	// was not triggered).
	RunSucceeded RunStatus = iota
	// RunFailed means at least one leaf failed.
	RunFailed
)

// Summary aggregates one run: total leaves executed, counts per outcome kind
// and the overall status. It is created fresh per runner invocation and
// immutable once returned.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	GaveUp  int
	Status  RunStatus
}

// ErrRunFailed reports that a run contained failing leaves.
var ErrRunFailed = errors.New("easytest: run failed")

// Summarize rolls leaf results up into a Summary. The run succeeds iff no
// result is failed; giving up is a warning-level outcome unless
// WithFailOnAllGaveUp is set and every executed leaf gave up.
func Summarize(results []Result, opts ...Option) Summary {
	o := newOptions(opts)
	return summarizeWith(&o, results)
}

func summarizeWith(o *options, results []Result) Summary {
	summary := Summary{Total: len(results)}

	for _, result := range results {
		switch result.Status {
		case StatusPassed:
			summary.Passed++
		case StatusFailed:
			summary.Failed++
		case StatusSkipped:
			summary.Skipped++
		case StatusGaveUp:
			summary.GaveUp++
		}
	}

	if summary.Failed > 0 {
		summary.Status = RunFailed
	}
	if o.failOnAllGaveUp && summary.Total > 0 && summary.GaveUp == summary.Total {
		summary.Status = RunFailed
	}

	return summary
}

// Succeeded reports whether the run passed.
func (s Summary) Succeeded() bool {
	return s.Status == RunSucceeded
}

// Err returns nil when the run succeeded and ErrRunFailed otherwise, so
// hosts can map the run outcome onto a process exit status.
func (s Summary) Err() error {
	if s.Succeeded() {
		return nil
	}
	return ErrRunFailed
}
