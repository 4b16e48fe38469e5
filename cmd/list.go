package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bbarker/easytest/internal/suite"
	"github.com/bbarker/easytest/pkg/easytest"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List test names in the bundled suite",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			names := easytest.ListNames(prefixArg(args), suite.New())
			for _, name := range names {
				c.Println(name)
			}

			c.Printf("%d tests.\n", len(names))

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
