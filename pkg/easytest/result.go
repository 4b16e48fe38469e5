package easytest

// Status classifies a single leaf outcome.
type Status int

const (
	// StatusPassed indicates the check completed all its trials.
	StatusPassed Status = iota
	// StatusFailed indicates an assertion mismatch, an explicit crash, a
	// falsified property, or an unexpected runtime fault.
	StatusFailed
	// StatusSkipped indicates the check asked to be skipped.
	StatusSkipped
	// StatusGaveUp indicates a property check exceeded its discard budget
	// before reaching the required trial count.
	StatusGaveUp
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusGaveUp:
		return "gave up"
	}
	return "unknown"
}

// Result is the outcome of one leaf.
type Result struct {
	// Name is the leaf's fully-qualified dotted scope name.
	Name string
	// Status is the outcome kind.
	Status Status
	// Trials is the number of completed trials (1 for a passing unit check).
	Trials int
	// Discards counts property inputs rejected by a precondition.
	Discards int
	// Message describes the failure, empty otherwise.
	Message string
	// Notes are footnotes recorded with T.Note during the check.
	Notes []string
	// Seed is the derived seed this leaf ran under; replaying the run with it
	// reproduces the same generated inputs.
	Seed Seed
	// Counterexample is the minimal failing input found by shrinking, set
	// only when HasCounterexample is true.
	Counterexample    any
	HasCounterexample bool
}
