package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbarker/easytest/internal/adapter"
	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/internal/suite"
	"github.com/bbarker/easytest/pkg/easytest"
)

// isolateRun points the journal and replay file at a temp dir and captures
// the root command's output for the duration of the test.
func isolateRun(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	tempDir := t.TempDir()
	journalDir := filepath.Join(tempDir, "journal")
	replayFile := filepath.Join(tempDir, "replay.yaml")

	originalJournal := viper.GetString(journalDirConfigKey)
	originalReplay := viper.GetString(replayFileConfigKey)
	viper.Set(journalDirConfigKey, journalDir)
	viper.Set(replayFileConfigKey, replayFile)
	t.Cleanup(func() {
		viper.Set(journalDirConfigKey, originalJournal)
		viper.Set(replayFileConfigKey, originalReplay)
	})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	return out, replayFile
}

func TestExecuteRun_SuitePasses(t *testing.T) {
	out, _ := isolateRun(t)

	err := executeRun("", easytest.NewSeed(1))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "0 failed,")
}

func TestExecuteRun_WritesReplayFile(t *testing.T) {
	_, replayFile := isolateRun(t)

	seed := easytest.NewSeed(42)
	require.NoError(t, executeRun("seed", seed))

	replay, err := replayStore.Load(m.Path(replayFile))
	require.NoError(t, err)
	assert.Equal(t, seed.String(), replay.Seed)
	assert.Equal(t, "seed", replay.Prefix)
	assert.Empty(t, replay.Failures)
	assert.False(t, replay.When.IsZero())
}

func TestExecuteRun_JournalsEveryResult(t *testing.T) {
	_, replayFile := isolateRun(t)

	require.NoError(t, executeRun("seed", easytest.NewSeed(7)))

	replay, err := replayStore.Load(m.Path(replayFile))
	require.NoError(t, err)

	records, err := adapter.ReadJournal(replay.Journal)
	require.NoError(t, err)

	names := easytest.ListNames("seed", suite.New())
	require.Len(t, records, len(names))
	for i, record := range records {
		assert.Equal(t, names[i], record.Name)
		assert.Equal(t, easytest.StatusPassed.String(), record.Status)
	}
}

// The journal and summary input must stay in traversal order even when
// leaves run concurrently.
func TestExecuteRun_ParallelJournalKeepsTraversalOrder(t *testing.T) {
	_, replayFile := isolateRun(t)

	originalParallel := viper.GetInt(runParallelConfigKey)
	viper.Set(runParallelConfigKey, 8)
	t.Cleanup(func() { viper.Set(runParallelConfigKey, originalParallel) })

	require.NoError(t, executeRun("", easytest.NewSeed(11)))

	replay, err := replayStore.Load(m.Path(replayFile))
	require.NoError(t, err)

	records, err := adapter.ReadJournal(replay.Journal)
	require.NoError(t, err)

	names := easytest.ListNames("", suite.New())
	require.Len(t, records, len(names))
	for i, record := range records {
		assert.Equal(t, names[i], record.Name)
	}
}

func TestRunCmd_RejectsMalformedSeed(t *testing.T) {
	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--seed", "not-a-seed"})

	err := cmd.Execute()
	require.Error(t, err)
}
