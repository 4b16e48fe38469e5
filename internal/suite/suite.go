// Package suite defines the bundled self-check suite the easytest CLI runs.
// It exercises the engine's own laws through its public API, which doubles as
// a living example of the DSL.
package suite

import (
	"strings"

	"github.com/leanovate/gopter/gen"

	"github.com/bbarker/easytest/pkg/easytest"
)

// New builds the self-check suite.
func New() easytest.Test {
	return easytest.Tests(
		easytest.Scope("seed", seedChecks()),
		easytest.Scope("scope", scopeChecks()),
		easytest.Scope("filter", filterChecks()),
		easytest.Scope("summary", summaryChecks()),
		easytest.Scope("arithmetic", arithmeticChecks()),
	)
}

func seedChecks() easytest.Test {
	return easytest.Tests(
		easytest.Scope("split-is-pure", easytest.PropertyTest(gen.UInt64(), func(t *easytest.T, value any) {
			seed := easytest.NewSeed(value.(uint64))
			left1, right1 := seed.Split()
			left2, right2 := seed.Split()
			t.Expectf(left1 == left2 && right1 == right2, "splitting %v was not deterministic", seed)
		})),
		easytest.Scope("token-round-trip", easytest.PropertyTest(gen.UInt64(), func(t *easytest.T, value any) {
			seed := easytest.NewSeed(value.(uint64))
			parsed, err := easytest.ParseSeed(seed.String())
			t.Expectf(err == nil, "parse error: %v", err)
			t.ExpectEq(seed, parsed)
		})),
	)
}

func scopeChecks() easytest.Test {
	return easytest.Tests(
		easytest.Scope("nesting-joins-with-dots", easytest.UnitTest(func(t *easytest.T) {
			nested := easytest.Scope("a", easytest.Scope("b", easytest.UnitTest(func(*easytest.T) {})))
			flat := easytest.Scope("a.b", easytest.UnitTest(func(*easytest.T) {}))
			t.ExpectEq(easytest.ListNames("", flat), easytest.ListNames("", nested))
		})),
		easytest.Scope("unnamed-leaf", easytest.UnitTest(func(t *easytest.T) {
			names := easytest.ListNames("", easytest.UnitTest(func(*easytest.T) {}))
			t.ExpectEq([]string{"(unnamed)"}, names)
		})),
	)
}

func filterChecks() easytest.Test {
	return easytest.Tests(
		easytest.Scope("segment-exact", easytest.UnitTest(func(t *easytest.T) {
			tree := easytest.Tests(
				easytest.Scope("add.ex1", easytest.UnitTest(func(*easytest.T) {})),
				easytest.Scope("addendum", easytest.UnitTest(func(*easytest.T) {})),
			)
			t.ExpectEq([]string{"add.ex1"}, easytest.ListNames("add", tree))
		})),
		easytest.Scope("empty-prefix-is-identity", easytest.PropertyTest(gen.Identifier(), func(t *easytest.T, value any) {
			name := value.(string)
			tree := easytest.Scope(name, easytest.UnitTest(func(*easytest.T) {}))
			t.ExpectEq(easytest.ListNames("", tree), easytest.ListNames(name, tree))
		})),
	)
}

func summaryChecks() easytest.Test {
	return easytest.Scope("status-law", easytest.PropertyTest(
		gen.SliceOf(gen.OneConstOf(
			easytest.StatusPassed,
			easytest.StatusFailed,
			easytest.StatusSkipped,
			easytest.StatusGaveUp,
		)),
		func(t *easytest.T, value any) {
			statuses := value.([]easytest.Status)
			results := make([]easytest.Result, len(statuses))
			anyFailed := false
			for i, status := range statuses {
				results[i] = easytest.Result{Status: status}
				if status == easytest.StatusFailed {
					anyFailed = true
				}
			}
			t.ExpectEq(!anyFailed, easytest.Summarize(results).Succeeded())
		},
	))
}

func arithmeticChecks() easytest.Test {
	return easytest.Tests(
		easytest.Scope("addition-commutes", easytest.PropertyTest(gen.Int(), func(t *easytest.T, value any) {
			v := value.(int)
			t.Expect(v+42 == 42+v)
		})),
		easytest.Scope("concat-length", easytest.PropertyTest(gen.AlphaString(), func(t *easytest.T, value any) {
			s := value.(string)
			t.Notef("input %q", s)
			t.ExpectEq(len(s)+len(s), len(s+s))
		})),
		easytest.Scope("upper-idempotent", easytest.PropertyTest(gen.AlphaString(), func(t *easytest.T, value any) {
			s := strings.ToUpper(value.(string))
			t.ExpectEq(s, strings.ToUpper(s))
		})),
	)
}
