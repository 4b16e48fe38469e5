package easytest

import (
	"fmt"

	"github.com/leanovate/gopter"
)

// maxShrinkPasses bounds the greedy shrink descent so a pathological shrinker
// cannot loop forever.
const maxShrinkPasses = 1000

// property is a leaf that evaluates check against values drawn from gen.
// Generation and shrinking are delegated to gopter; this package only threads
// seeds and sizes into it and drives the shrink iterator on failure.
type property struct {
	gen      gopter.Gen
	check    func(*T, any)
	trials   int // 0 means use the run default
	discards int
}

// PropertyOption overrides the run-level trial configuration for one leaf.
type PropertyOption func(*property)

// Trials sets the trial count for this leaf.
func Trials(n int) PropertyOption {
	return func(p *property) {
		if n > 0 {
			p.trials = n
		}
	}
}

// DiscardBudget sets the discard budget for this leaf.
func DiscardBudget(n int) PropertyOption {
	return func(p *property) {
		if n > 0 {
			p.discards = n
		}
	}
}

// PropertyTest builds a leaf that draws inputs from gen and evaluates check
// for each, up to the configured trial count. Inputs rejected by the
// generator's sieve count as discards; a falsified check is shrunk to a
// minimal counterexample before being reported.
func PropertyTest(gen gopter.Gen, check func(t *T, value any), opts ...PropertyOption) Test {
	p := &property{gen: gen, check: check}
	for _, opt := range opts {
		opt(p)
	}
	return Test{kind: kindProperty, prop: p}
}

// drawn carries one generated value together with its shrinker and sieve.
type drawn struct {
	value    any
	shrinker gopter.Shrinker
	sieve    func(any) bool
}

// runProperty executes a property leaf: repeated generate-and-check trials
// under per-trial seeds split off the leaf seed, with the size parameter
// ramping up across trials.
func runProperty(o *options, run leafRun) Result {
	p := run.test.prop

	trials := p.trials
	if trials == 0 {
		trials = o.trials
	}
	budget := p.discards
	if budget == 0 {
		budget = o.discardBudget
	}

	result := Result{Name: run.name, Status: StatusPassed, Seed: run.seed}
	seed := run.seed

	for trial := 0; trial < trials; {
		var trialSeed Seed
		trialSeed, seed = seed.Split()

		value, ok := drawValue(p.gen, trialSeed, sizeFor(o.maxSize, trial, trials))
		if !ok {
			result.Discards++
			if result.Discards >= budget {
				result.Status = StatusGaveUp
				result.Trials = trial
				result.Message = fmt.Sprintf("gave up after %d discards", result.Discards)
				return result
			}
			continue
		}

		out := protect(func(t *T) { p.check(t, value.value) })
		result.Notes = append(result.Notes, out.notes...)

		switch {
		case out.skipped:
			result.Status = StatusSkipped
			result.Trials = trial
			return result

		case out.failed:
			result.Status = StatusFailed
			result.Trials = trial + 1
			result.Message = out.message
			result.Counterexample = shrinkFailing(value, func(candidate any) bool {
				return protect(func(t *T) { p.check(t, candidate) }).failed
			})
			result.HasCounterexample = true
			return result
		}

		trial++
	}

	result.Trials = trials
	return result
}

// drawValue runs the generator once under the derived seed. ok is false when
// the sieve rejects the generated value, i.e. a discarded input.
func drawValue(gen gopter.Gen, seed Seed, size int) (drawn, bool) {
	params := gopter.DefaultGenParameters().CloneWithSeed(seed.Int64()).WithSize(size)

	genResult := gen(params)
	value, ok := genResult.Retrieve()
	if !ok {
		return drawn{}, false
	}

	return drawn{value: value, shrinker: genResult.Shrinker, sieve: genResult.Sieve}, true
}

// shrinkFailing descends the shrink tree greedily: whenever some candidate
// still fails the property, shrinking restarts from that candidate.
// Candidates rejected by the sieve are skipped, mirroring the precondition
// applied at generation time.
func shrinkFailing(d drawn, fails func(any) bool) any {
	minimal := d.value
	if d.shrinker == nil {
		return minimal
	}

	for pass := 0; pass < maxShrinkPasses; pass++ {
		improved := false
		next := d.shrinker(minimal)

		for {
			candidate, ok := next()
			if !ok {
				break
			}
			if d.sieve != nil && !d.sieve(candidate) {
				continue
			}
			if fails(candidate) {
				minimal = candidate
				improved = true
				break
			}
		}

		if !improved {
			break
		}
	}

	return minimal
}

// sizeFor ramps the generator size linearly from 1 on the first trial to
// maxSize on the last.
func sizeFor(maxSize, trial, trials int) int {
	if trials <= 1 {
		return maxSize
	}
	size := trial * maxSize / (trials - 1)
	if size < 1 {
		return 1
	}
	return size
}
