package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	m "upm.dev/pkg/upm/internal/model"
)

const maxBarWidth = 50

// TUI implements UI with a Bubble Tea program that keeps a live download bar
// at the bottom of the terminal and prints everything else above it.
type TUI struct {
	output io.Writer
	styles styles

	mu      sync.Mutex
	program *tea.Program
	done    chan error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, styles: newStyles(output)}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(newDownloadModel(),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	t.done = make(chan error, 1)

	go func(p *tea.Program, done chan<- error) {
		_, err := p.Run()
		done <- err
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayStep prints a top-level progress message.
func (t *TUI) DisplayStep(_ context.Context, msg string) {
	t.println(t.styles.stepLine(msg))
}

// DisplayNote prints an informational message.
func (t *TUI) DisplayNote(_ context.Context, msg string) {
	t.println(t.styles.noteLine(msg))
}

// DisplayWarning prints a warning.
func (t *TUI) DisplayWarning(_ context.Context, msg string) {
	t.println(t.styles.warningLine(msg))
}

// DisplayError prints an error.
func (t *TUI) DisplayError(_ context.Context, msg string) {
	t.println(t.styles.errorLine(msg))
}

// DisplayDownloadProgress updates the download bar.
func (t *TUI) DisplayDownloadProgress(_ context.Context, name string, done, total int64) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(downloadMsg{name: name, done: done, total: total})
}

// DisplayPackages prints the installed packages as a table.
func (t *TUI) DisplayPackages(_ context.Context, packages []m.InstalledPackage) {
	t.println(strings.TrimRight(renderPackages(packages), "\n"))
}

// DisplayHealth prints the result of checking installed packages.
func (t *TUI) DisplayHealth(_ context.Context, results []m.PackageHealth) {
	t.println(strings.TrimRight(t.styles.renderHealth(results), "\n"))
}

// DisplayUninstallReport prints what an uninstall removed.
func (t *TUI) DisplayUninstallReport(_ context.Context, report m.UninstallReport) {
	t.println(strings.TrimRight(t.styles.renderUninstallReport(report), "\n"))
}

// println prints above the live view, or straight to the output when the
// program is not running.
func (t *TUI) println(line string) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		_, _ = fmt.Fprintln(t.output, line)
		return
	}

	program.Println(line)
}

type downloadMsg struct {
	name  string
	done  int64
	total int64
}

// downloadModel renders the bar of the download in flight.
type downloadModel struct {
	bar   progress.Model
	name  string
	done  int64
	total int64
}

func newDownloadModel() downloadModel {
	return downloadModel{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
	}
}

func (d downloadModel) Init() tea.Cmd {
	return nil
}

func (d downloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case downloadMsg:
		d.name, d.done, d.total = msg.name, msg.done, msg.total
		if d.finished() {
			d.name = ""
		}

		return d, nil

	case tea.WindowSizeMsg:
		d.bar.Width = min(maxBarWidth, max(msg.Width-40, 10))

		return d, nil
	}

	return d, nil
}

func (d downloadModel) finished() bool {
	return d.total > 0 && d.done >= d.total
}

func (d downloadModel) percent() float64 {
	if d.total <= 0 {
		return 0
	}

	return float64(d.done) / float64(d.total)
}

func (d downloadModel) View() string {
	if d.name == "" {
		return ""
	}

	return fmt.Sprintf("Downloading %s %s %s\n", d.name, d.bar.ViewAs(d.percent()), formatSize(d.done, d.total))
}
