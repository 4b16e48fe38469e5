package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbarker/easytest/internal/adapter"
	m "github.com/bbarker/easytest/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the journal of the last run",
		Long:  "Re-render the per-test records journaled by the most recent run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			replay, err := replayStore.Load(m.Path(viper.GetString(replayFileConfigKey)))
			if err != nil {
				return fmt.Errorf("nothing to view: %w; run the suite first", err)
			}

			records, err := adapter.ReadJournal(replay.Journal)
			if err != nil {
				return fmt.Errorf("failed to read journal %s: %w", replay.Journal, err)
			}

			return ui.DisplayRecords(records)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
