package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", []string{}, ""},
		{"single prefix", []string{"seed"}, "seed"},
		{"dotted prefix", []string{"seed.split"}, "seed.split"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prefixArg(tt.args))
		})
	}
}

func TestBaseRootCmd(t *testing.T) {
	cmd := baseRootCmd()
	assert.Equal(t, "easytest", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := baseRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "dotted scope name")
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, replayStore)
}

// The logger must come up after flag parsing, so that --verbose and
// --log-file reach it with their parsed values.
func TestVerboseFlagEnablesDebugLogging(t *testing.T) {
	t.Cleanup(func() {
		verboseFlag = false
		logFileFlag = ""
		configureLogger(logFileFlag, verboseFlag)
	})

	logPath := filepath.Join(t.TempDir(), "easytest.log")

	cmd := baseRootCmd()
	configureRootFlags(cmd)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--verbose", "--log-file", logPath})

	require.NoError(t, cmd.Execute())

	assert.True(t, verboseFlag)
	assert.Equal(t, logPath, logFileFlag)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestDefaultLoggingIsNotDebug(t *testing.T) {
	t.Cleanup(func() { configureLogger("", false) })

	configureLogger(filepath.Join(t.TempDir(), "easytest.log"), false)

	require.NotNil(t, globalLogger)
	assert.False(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelInfo))
}
