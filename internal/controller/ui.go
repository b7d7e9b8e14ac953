// Package controller renders installer progress and results for the CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "upm.dev/pkg/upm/internal/model"
)

// UI defines how the installer reports what it is doing.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayStep(ctx context.Context, msg string)
	DisplayNote(ctx context.Context, msg string)
	DisplayWarning(ctx context.Context, msg string)
	DisplayError(ctx context.Context, msg string)
	// DisplayDownloadProgress is called from inside the download loop. total
	// is -1 when the registry did not announce a size.
	DisplayDownloadProgress(ctx context.Context, name string, done, total int64)
	DisplayPackages(ctx context.Context, packages []m.InstalledPackage)
	DisplayHealth(ctx context.Context, results []m.PackageHealth)
	DisplayUninstallReport(ctx context.Context, report m.UninstallReport)
}

// NewUI returns the interactive UI when tty is set, the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd.OutOrStdout())
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
