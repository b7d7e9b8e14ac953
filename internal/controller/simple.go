package controller

import (
	"context"
	"fmt"
	"io"
	"sync"

	m "upm.dev/pkg/upm/internal/model"
)

// progressSteps is how many progress lines a download prints at most.
const progressSteps = 4

// SimpleUI implements UI with plain line-oriented output.
type SimpleUI struct {
	out    io.Writer
	styles styles

	mu       sync.Mutex
	lastStep map[string]int64
}

// NewSimpleUI creates a new SimpleUI writing to out.
func NewSimpleUI(out io.Writer) *SimpleUI {
	return &SimpleUI{
		out:      out,
		styles:   newStyles(out),
		lastStep: make(map[string]int64),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayStep prints a top-level progress message.
func (s *SimpleUI) DisplayStep(_ context.Context, msg string) {
	s.println(s.styles.stepLine(msg))
}

// DisplayNote prints an informational message.
func (s *SimpleUI) DisplayNote(_ context.Context, msg string) {
	s.println(s.styles.noteLine(msg))
}

// DisplayWarning prints a warning.
func (s *SimpleUI) DisplayWarning(_ context.Context, msg string) {
	s.println(s.styles.warningLine(msg))
}

// DisplayError prints an error.
func (s *SimpleUI) DisplayError(_ context.Context, msg string) {
	s.println(s.styles.errorLine(msg))
}

// DisplayDownloadProgress prints a line each time the download crosses a
// quarter of its announced size, and once when it completes.
func (s *SimpleUI) DisplayDownloadProgress(_ context.Context, name string, done, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if total <= 0 {
		return
	}

	step := done * progressSteps / total

	last, seen := s.lastStep[name]
	if seen && step <= last {
		return
	}

	s.lastStep[name] = step

	if step == 0 {
		return
	}

	if done >= total {
		delete(s.lastStep, name)
	}

	_, _ = fmt.Fprintf(s.out, "Downloading %s: %s\n", name, formatSize(done, total))
}

// DisplayPackages prints the installed packages as a table.
func (s *SimpleUI) DisplayPackages(_ context.Context, packages []m.InstalledPackage) {
	s.print(renderPackages(packages))
}

// DisplayHealth prints the result of checking installed packages.
func (s *SimpleUI) DisplayHealth(_ context.Context, results []m.PackageHealth) {
	s.print(s.styles.renderHealth(results))
}

// DisplayUninstallReport prints what an uninstall removed.
func (s *SimpleUI) DisplayUninstallReport(_ context.Context, report m.UninstallReport) {
	s.print(s.styles.renderUninstallReport(report))
}

func (s *SimpleUI) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *SimpleUI) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}
