package controller

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	m "upm.dev/pkg/upm/internal/model"
)

type styles struct {
	step    lipgloss.Style
	note    lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	ok      lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		step:    r.NewStyle().Bold(true),
		note:    r.NewStyle().Faint(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (s styles) stepLine(msg string) string    { return s.step.Render(msg) }
func (s styles) noteLine(msg string) string    { return s.note.Render(msg) }
func (s styles) warningLine(msg string) string { return s.warning.Render("warning: " + msg) }
func (s styles) errorLine(msg string) string   { return s.failure.Render("error: " + msg) }

func formatSize(done, total int64) string {
	if total < 0 {
		return humanize.Bytes(uint64(max(done, 0)))
	}

	return humanize.Bytes(uint64(max(done, 0))) + " / " + humanize.Bytes(uint64(total))
}

func renderPackages(packages []m.InstalledPackage) string {
	if len(packages) == 0 {
		return "No packages installed.\n"
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Package", "Version", "Files", "Directory"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, p := range packages {
		files := strconv.Itoa(p.Files)
		if !p.Tracked {
			files = "-"
		}

		table.Append([]string{p.Identity.Name, p.Identity.Version, files, p.Directory})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(packages)), "", "", ""})
	table.Render()

	return buf.String()
}

func (s styles) renderHealth(results []m.PackageHealth) string {
	if len(results) == 0 {
		return "No packages installed.\n"
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Package", "Version", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	var details []string

	for _, h := range results {
		table.Append([]string{h.Package.Identity.Name, h.Package.Identity.Version, healthStatus(h)})

		for _, missing := range h.Missing {
			details = append(details, fmt.Sprintf("  %s: missing %s", h.Package.Identity.Name, missing))
		}
	}

	table.Render()

	for _, line := range details {
		buf.WriteString(s.warning.Render(line))
		buf.WriteByte('\n')
	}

	return buf.String()
}

func healthStatus(h m.PackageHealth) string {
	switch {
	case h.Err != nil:
		return "error: " + h.Err.Error()
	case !h.Package.Tracked:
		return "untracked"
	case len(h.Missing) > 0:
		return fmt.Sprintf("%d missing", len(h.Missing))
	default:
		return "ok"
	}
}

func (s styles) renderUninstallReport(report m.UninstallReport) string {
	var b strings.Builder

	if !report.Success {
		b.WriteString(s.warningLine(report.Message))
		b.WriteByte('\n')

		return b.String()
	}

	failed := report.Failed()

	msg := report.Message
	if msg == "" {
		msg = "Uninstalled " + filepath.Base(report.Directory)
	}

	fmt.Fprintf(&b, "%s (%d of %d tracked files removed)\n",
		s.ok.Render(msg), len(report.Removals)-len(failed), len(report.Removals))

	for _, f := range failed {
		b.WriteString(s.warningLine(fmt.Sprintf("could not remove %s: %v", f.Path, f.Err)))
		b.WriteByte('\n')
	}

	return b.String()
}
