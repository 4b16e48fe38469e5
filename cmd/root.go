// Package cmd provides the root command and CLI setup for easytest.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bbarker/easytest/internal/adapter"
	"github.com/bbarker/easytest/internal/controller"
)

var ui controller.UI
var replayStore adapter.ReplayStore

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	replayStore = adapter.NewLocalReplayStore()
}

const prefixHelp = `A prefix selects a subtree of the suite by its dotted scope name,
compared segment by segment:
  - easytest run seed          run everything under scope "seed"
  - easytest run seed.split    run a single check
  - easytest run               run the whole suite`

const rootLongDescription = `Easytest organizes checks into a named, nestable scope tree and runs them
against a splittable random seed. Every failure is reported with the seed
that reproduces it, so any run can be replayed deterministically.

` + prefixHelp

const runLongDescription = `Run the bundled suite, optionally restricted to a scope prefix.

` + prefixHelp

const rerunLongDescription = `Replay a previous run from its captured seed. With no --seed the seed is
read from the replay file written by the last run.

` + prefixHelp

const listLongDescription = `Print the fully qualified name of every test reachable under the given
scope prefix, one per line, in execution order.

` + prefixHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "easytest",
		Short:        "Seeded, replayable test runner",
		Long:         rootLongDescription,
		SilenceUsage: true,
		// Runs after flag parsing, so --verbose and --log-file have their
		// parsed values by the time the logger comes up.
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntP(trialsFlagName, "t", viper.GetInt(runTrialsConfigKey),
		"number of trials per property check")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(trialsFlagName), runTrialsConfigKey)

	cmd.PersistentFlags().Int(discardsFlagName, viper.GetInt(runDiscardsConfigKey),
		"discard budget per property check")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(discardsFlagName), runDiscardsConfigKey)

	cmd.PersistentFlags().IntP(parallelFlagName, "p", viper.GetInt(runParallelConfigKey),
		"number of leaves to run concurrently")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), runParallelConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file location")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func prefixArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
