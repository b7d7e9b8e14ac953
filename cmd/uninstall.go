package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"upm.dev/pkg/upm/internal/domain"
)

// uninstallCmd represents the uninstall command.
var uninstallCmd = newUninstallCmd()

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall name...",
		Short: "Uninstall packages",
		Long: `Remove installed packages and every file their install recorded,
including launchers in the bin directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := activeDirs(globalFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ui := uiFactory(cmd)

			installer := installerFactory(domain.Options{
				Dirs:        dirs,
				Interpreter: viper.GetString(pythonInterpreterKey),
			}, ui)

			failed := 0

			for _, name := range args {
				report, err := installer.Uninstall(ctx, name)
				ui.DisplayUninstallReport(ctx, report)

				if err != nil {
					return err
				}

				if !report.Success {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d packages could not be uninstalled", failed, len(args))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
