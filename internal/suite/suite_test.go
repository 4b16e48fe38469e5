package suite

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbarker/easytest/pkg/easytest"
)

func TestSuitePasses(t *testing.T) {
	summary := easytest.Rerun(easytest.NewSeed(1), New(),
		easytest.WithOutput(io.Discard),
		easytest.WithTrials(50))

	require.NoError(t, summary.Err())
	assert.Equal(t, summary.Total, summary.Passed)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, summary.GaveUp)
}

func TestSuiteHasStableLeafNames(t *testing.T) {
	names := easytest.ListNames("", New())
	require.NotEmpty(t, names)

	assert.Contains(t, names, "seed.split-is-pure")
	assert.Contains(t, names, "filter.segment-exact")
	assert.Contains(t, names, "arithmetic.addition-commutes")
}

func TestSuiteFilterableByScope(t *testing.T) {
	all := easytest.ListNames("", New())
	seedOnly := easytest.ListNames("seed", New())

	require.NotEmpty(t, seedOnly)
	assert.Less(t, len(seedOnly), len(all))

	for _, name := range seedOnly {
		assert.Contains(t, name, "seed.")
	}
}
