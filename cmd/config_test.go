package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "easytest", configBaseName)
	assert.Equal(t, "easytest.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "trials", trialsFlagName)
	assert.Equal(t, "discards", discardsFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "seed", seedFlagName)
	assert.Equal(t, "run.trials", runTrialsConfigKey)
	assert.Equal(t, "run.discards", runDiscardsConfigKey)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "journal.dir", journalDirConfigKey)
	assert.Equal(t, "replay.file", replayFileConfigKey)
	assert.Equal(t, ".easytest-journal", defaultJournalDir)
	assert.Equal(t, ".easytest-replay.yaml", defaultReplayFile)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "EASYTEST", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"numeric", "8", slog.LevelError},
		{"garbage falls back", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
