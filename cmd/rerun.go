package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
)

var rerunSeedFlag string

// rerunCmd represents the rerun command.
var rerunCmd = newRerunCmd()

func newRerunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rerun [prefix]",
		Short: "Replay a previous run from its seed",
		Long:  rerunLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			prefix := prefixArg(args)

			token := rerunSeedFlag
			if token == "" {
				replay, err := replayStore.Load(m.Path(viper.GetString(replayFileConfigKey)))
				if err != nil {
					return fmt.Errorf("no seed given and %w; run the suite first or pass --seed", err)
				}

				token = replay.Seed
				if prefix == "" {
					prefix = replay.Prefix
				}
			}

			seed, err := easytest.ParseSeed(token)
			if err != nil {
				return err
			}

			return executeRun(prefix, seed)
		},
	}

	cmd.Flags().StringVarP(&rerunSeedFlag, seedFlagName, "s", "",
		"seed token (value:gamma) from a previous run's output")

	return cmd
}

func init() {
	rootCmd.AddCommand(rerunCmd)
}
