package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbarker/easytest/pkg/easytest"
)

func executeView(t *testing.T) (*bytes.Buffer, error) {
	t.Helper()

	cmd := baseRootCmd()
	cmd.AddCommand(newViewCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"view"})

	return out, cmd.Execute()
}

func TestViewCmd_RendersJournal(t *testing.T) {
	runOut, _ := isolateRun(t)

	require.NoError(t, executeRun("seed", easytest.NewSeed(5)))
	runOut.Reset()

	_, err := executeView(t)
	require.NoError(t, err)

	// view renders through the shared UI, which writes to the root command
	assert.Contains(t, runOut.String(), "seed.split-is-pure")
	assert.Contains(t, runOut.String(), "0 failed,")
}

func TestViewCmd_NoReplayFile(t *testing.T) {
	isolateRun(t)

	_, err := executeView(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to view")
}
