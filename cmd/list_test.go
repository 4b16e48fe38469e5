package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeList(t *testing.T, args ...string) string {
	t.Helper()

	cmd := baseRootCmd()
	cmd.AddCommand(newListCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"list"}, args...))

	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestListCmd_WholeSuite(t *testing.T) {
	output := executeList(t)

	assert.Contains(t, output, "seed.split-is-pure")
	assert.Contains(t, output, "arithmetic.addition-commutes")
	assert.Regexp(t, `\d+ tests\.`, output)
}

func TestListCmd_Prefix(t *testing.T) {
	output := executeList(t, "seed")

	assert.Contains(t, output, "seed.split-is-pure")
	assert.NotContains(t, output, "arithmetic.")

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.HasSuffix(line, "tests.") {
			continue
		}
		assert.True(t, strings.HasPrefix(line, "seed."), "unexpected name %q", line)
	}
}

func TestListCmd_NoMatch(t *testing.T) {
	output := executeList(t, "no-such-scope")

	assert.Contains(t, output, "0 tests.")
}
