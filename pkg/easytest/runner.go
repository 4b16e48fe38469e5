package easytest

import (
	"fmt"
	"log/slog"
)

// Run executes the whole tree under a fresh random seed and renders the
// report. The returned Summary carries the success/failure status the host
// maps onto its process exit code (see Summary.Err).
func Run(t Test, opts ...Option) Summary {
	return run(t, "", RandomSeed(), opts)
}

// RunOnly executes only the leaves whose qualified names start with prefix,
// under a fresh random seed.
func RunOnly(prefix string, t Test, opts ...Option) Summary {
	return run(t, prefix, RandomSeed(), opts)
}

// Rerun executes the whole tree under the given seed, reproducing a prior
// run's randomness exactly on an unchanged tree.
func Rerun(seed Seed, t Test, opts ...Option) Summary {
	return run(t, "", seed, opts)
}

// RerunOnly executes the prefix-filtered subtree under the given seed.
// Together with the seed token rendered on failure this deterministically
// reproduces a single failing leaf.
func RerunOnly(prefix string, seed Seed, t Test, opts ...Option) Summary {
	return run(t, prefix, seed, opts)
}

// run is the single linear pipeline behind all four entry points:
// filter, execute with derived seeds, summarize, render.
func run(t Test, prefix string, seed Seed, opts []Option) Summary {
	o := newOptions(opts)

	slog.Debug("starting run", "seed", seed.String(), "prefix", prefix)

	filtered := Filter(prefix, t)
	results := executeWith(&o, filtered, seed)
	summary := summarizeWith(&o, results)

	fmt.Fprint(o.out, Render(results, summary))

	slog.Info("run finished",
		"seed", seed.String(),
		"total", summary.Total,
		"failed", summary.Failed,
		"succeeded", summary.Passed,
	)

	return summary
}

// ListNames returns the qualified names of the leaves that RunOnly(prefix)
// would execute, in execution order, without running anything.
func ListNames(prefix string, t Test) []string {
	filtered := Filter(prefix, t)
	runs := deriveLeaves(nil, filtered, NewSeed(0))

	names := make([]string, 0, len(runs))
	for _, run := range runs {
		names = append(names, run.name)
	}
	return names
}
