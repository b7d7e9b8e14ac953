package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dirs, err := activeDirs(globalFlag)
			if err != nil {
				return err
			}

			packages, err := inventoryFactory(dirs).List(cmd.Context())
			if err != nil {
				return err
			}

			uiFactory(cmd).DisplayPackages(cmd.Context(), packages)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
