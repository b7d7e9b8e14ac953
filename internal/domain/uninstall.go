package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "upm.dev/pkg/upm/internal/model"
	"upm.dev/pkg/upm/pkg"
)

// Uninstall removes the package called name from the active packages root.
// A package that is not installed yields an unsuccessful report, not an error.
func (i *installer) Uninstall(ctx context.Context, name string) (m.UninstallReport, error) {
	if !m.ValidName(name) {
		slog.Warn("refusing to uninstall invalid package name", "package", name)
		return m.UninstallReport{Message: fmt.Sprintf("%q is not a valid package name", name)}, nil
	}

	dir := i.opts.Dirs.Target(name)

	exists, err := i.fs.Exists(dir)
	if err != nil {
		return m.UninstallReport{Directory: dir}, fmt.Errorf("stat %s: %w", dir, err)
	}

	if !exists {
		msg := fmt.Sprintf("no package %q installed", name)
		if suggestions := i.suggest(name); len(suggestions) > 0 {
			msg += "; did you mean " + strings.Join(suggestions, ", ") + "?"
		}

		slog.Info("uninstall of missing package", "package", name, "root", i.opts.Dirs.Packages)

		return m.UninstallReport{Message: msg}, nil
	}

	return i.UninstallDirectory(ctx, dir)
}

// UninstallDirectory removes every file tracked for the package in dir, then
// dir itself. A directory that is not a package, or that lies outside the
// active packages root, is never touched.
func (i *installer) UninstallDirectory(ctx context.Context, dir string) (m.UninstallReport, error) {
	report := m.UninstallReport{Directory: dir}

	if samePath(dir, i.opts.Dirs.Packages) || !isWithin(dir, i.opts.Dirs.Packages) {
		slog.Warn("refusing to uninstall directory outside the packages root", "dir", dir, "root", i.opts.Dirs.Packages)
		report.Message = fmt.Sprintf("cannot uninstall %s: not inside %s", dir, i.opts.Dirs.Packages)

		return report, nil
	}

	manifest, err := i.manifests.Parse(dir)
	if err != nil {
		slog.Warn("refusing to uninstall directory", "dir", dir, "error", err)
		report.Message = fmt.Sprintf("cannot uninstall %s: %v", dir, err)

		return report, nil
	}

	suffix := ""
	if i.opts.Upgrade {
		suffix = " before upgrade"
	}

	i.ui.DisplayStep(ctx, fmt.Sprintf("Uninstalling %s from %s%s...", manifest.Identifier(), dir, suffix))

	tracked, err := pkg.ReadTrackList(filepath.Join(dir, m.TrackingFileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Files written outside dir by the install stay behind.
		slog.Warn("package has no tracking list", "package", manifest.Identifier(), "dir", dir)
		i.ui.DisplayWarning(ctx, fmt.Sprintf("no %s found in %s", m.TrackingFileName, dir))
	case err != nil:
		report.Message = fmt.Sprintf("cannot read tracking list of %s", manifest.Identifier())
		return report, fmt.Errorf("uninstall %s: %w", manifest.Identifier(), err)
	}

	report.Removals = make([]m.FileRemoval, 0, len(tracked))

	for _, path := range tracked {
		err := i.fs.Remove(path)
		if err != nil {
			slog.Warn("failed to remove tracked file", "package", manifest.Identifier(), "path", path, "error", err)
		}

		report.Removals = append(report.Removals, m.FileRemoval{Path: path, Err: err})
	}

	if err := i.fs.RemoveAll(dir); err != nil {
		slog.Error("failed to remove package directory", "package", manifest.Identifier(), "dir", dir, "error", err)
		report.Message = fmt.Sprintf("cannot remove %s", dir)

		return report, fmt.Errorf("remove %s: %w", dir, err)
	}

	report.Success = true
	report.Message = "Uninstalled " + manifest.Identifier()

	return report, nil
}
