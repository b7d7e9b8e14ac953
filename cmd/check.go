package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "upm.dev/pkg/upm/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the files of installed packages",
		Long: `Check that every file recorded for each installed package still exists.
Nothing is modified. Packages installed without a file record are listed
as untracked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dirs, err := activeDirs(globalFlag)
			if err != nil {
				return err
			}

			results, err := inventoryFactory(dirs).Check(cmd.Context())
			if err != nil {
				return err
			}

			uiFactory(cmd).DisplayHealth(cmd.Context(), results)

			if broken := countBroken(results); broken > 0 {
				return fmt.Errorf("%d packages have missing files", broken)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// countBroken counts packages with missing files or unreadable records.
func countBroken(results []m.PackageHealth) int {
	n := 0

	for _, r := range results {
		if len(r.Missing) > 0 || r.Err != nil {
			n++
		}
	}

	return n
}
