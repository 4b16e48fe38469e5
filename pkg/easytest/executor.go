package easytest

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// leafRun is a leaf together with its qualified name and derived seed, fixed
// by traversal position before any check executes.
type leafRun struct {
	name string
	test Test
	seed Seed
}

// Execute traverses the (already filtered) tree depth-first in child order
// and returns one Result per leaf, in traversal order. Seed derivation works
// by splitting: each branch step hands one seed to the current child's
// subtree and keeps the other for the remaining siblings, so re-running with
// the same seed and tree derives the same per-leaf seeds.
func Execute(t Test, seed Seed, opts ...Option) []Result {
	o := newOptions(opts)
	return executeWith(&o, t, seed)
}

func executeWith(o *options, t Test, seed Seed) []Result {
	runs := deriveLeaves(nil, t, seed)
	results := make([]Result, len(runs))

	if o.parallelism > 1 {
		var mu sync.Mutex
		group := new(errgroup.Group)
		group.SetLimit(o.parallelism)

		for i, run := range runs {
			i, run := i, run
			group.Go(func() error {
				result := runLeaf(o, run)

				mu.Lock()
				results[i] = result
				if o.reporter != nil {
					o.reporter(result)
				}
				mu.Unlock()

				return nil
			})
		}

		// Leaf faults are contained in their Results, never returned as
		// errors.
		_ = group.Wait()

		return results
	}

	for i, run := range runs {
		result := runLeaf(o, run)
		results[i] = result
		if o.reporter != nil {
			o.reporter(result)
		}
	}

	return results
}

// deriveLeaves flattens the tree into leaf runs with their derived seeds.
// Scope nodes extend the path without consuming randomness, which is what
// makes Scope("a", Scope("b", t)) and Scope("a.b", t) run identically.
func deriveLeaves(path []string, t Test, seed Seed) []leafRun {
	switch t.kind {
	case kindUnit, kindProperty:
		return []leafRun{{name: joinName(path), test: t, seed: seed}}

	case kindScope:
		return deriveLeaves(appendSegments(path, t.segments), *t.child, seed)

	case kindBranch:
		if len(t.children) == 0 {
			return nil
		}

		// Each split hands one seed to the current child and one to the
		// remaining siblings; the last child takes the remainder unsplit.
		// A subtree narrowed down to a single leaf therefore receives the
		// incoming seed unchanged, which is what lets RerunOnly reproduce a
		// leaf from the seed rendered with its failure.
		var runs []leafRun
		rest := seed
		last := len(t.children) - 1
		for _, child := range t.children[:last] {
			var here Seed
			here, rest = rest.Split()
			runs = append(runs, deriveLeaves(path, child, here)...)
		}
		return append(runs, deriveLeaves(path, t.children[last], rest)...)
	}

	return nil
}

func runLeaf(o *options, run leafRun) Result {
	if run.test.kind == kindProperty {
		return runProperty(o, run)
	}
	return runUnit(run)
}

// runUnit executes a unit leaf exactly once under its derived seed.
func runUnit(run leafRun) Result {
	result := Result{Name: run.name, Status: StatusPassed, Trials: 1, Seed: run.seed}

	out := protect(run.test.unit)
	result.Notes = out.notes

	switch {
	case out.skipped:
		result.Status = StatusSkipped
		result.Trials = 0
	case out.failed:
		result.Status = StatusFailed
		result.Message = out.message
	}

	return result
}
