package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbarker/easytest/internal/adapter"
	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/internal/suite"
	"github.com/bbarker/easytest/pkg/easytest"
)

var runSeedFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [prefix]",
		Short: "Run the bundled suite",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			seed := easytest.RandomSeed()
			if runSeedFlag != "" {
				parsed, err := easytest.ParseSeed(runSeedFlag)
				if err != nil {
					return err
				}
				seed = parsed
			}

			return executeRun(prefixArg(args), seed)
		},
	}

	cmd.Flags().StringVarP(&runSeedFlag, seedFlagName, "s", "",
		"run from a fixed seed (value:gamma) instead of fresh entropy")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// executeRun is the pipeline shared by run and rerun: filter, execute,
// journal, display, persist the replay capture, and surface failure as a
// non-zero exit through the returned error.
//
// The reporter only feeds live progress lines; the journal, the summary
// display, and the replay capture all consume the executor's return value,
// which is ordered by traversal position regardless of --parallel.
func executeRun(prefix string, seed easytest.Seed) error {
	tree := suite.New()

	journal, err := adapter.NewJournal(m.Path(viper.GetString(journalDirConfigKey)))
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	slog.Debug("starting run", "seed", seed.String(), "prefix", prefix)

	results := easytest.Execute(easytest.Filter(prefix, tree), seed,
		easytest.WithTrials(viper.GetInt(runTrialsConfigKey)),
		easytest.WithDiscardBudget(viper.GetInt(runDiscardsConfigKey)),
		easytest.WithParallelism(viper.GetInt(runParallelConfigKey)),
		easytest.WithReporter(ui.Report),
	)
	summary := easytest.Summarize(results,
		easytest.WithFailOnAllGaveUp(viper.GetBool(runAllGaveUpConfigKey)))

	for _, result := range results {
		if err := journal.Append(result); err != nil {
			slog.Warn("failed to journal result", "name", result.Name, "error", err)
		}
	}

	journalPath := journal.Path()
	if err := journal.Close(); err != nil {
		slog.Warn("failed to close journal", "error", err)
	}

	slog.Info("run finished",
		"seed", seed.String(),
		"total", summary.Total,
		"failed", summary.Failed,
		"succeeded", summary.Passed,
	)

	if err := ui.DisplaySummary(results, summary); err != nil {
		return err
	}

	saveReplay(prefix, seed, results, journalPath)

	return summary.Err()
}

// saveReplay captures the run seed and failing leaves so `easytest rerun`
// and `easytest view` can pick them up later.
func saveReplay(prefix string, seed easytest.Seed, results []easytest.Result, journalPath m.Path) {
	replay := m.Replay{
		Seed:    seed.String(),
		Prefix:  prefix,
		Journal: journalPath,
		When:    time.Now(),
	}

	for _, result := range results {
		if result.Status == easytest.StatusFailed {
			replay.Failures = append(replay.Failures, m.ReplayFailure{
				Name: result.Name,
				Seed: result.Seed.String(),
			})
		}
	}

	path := m.Path(viper.GetString(replayFileConfigKey))
	if err := replayStore.Save(path, replay); err != nil {
		slog.Error("failed to save replay file", "path", path, "error", err)
	}
}
