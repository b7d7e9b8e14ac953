package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"upm.dev/pkg/upm/internal/adapter"
	"upm.dev/pkg/upm/internal/controller"
	m "upm.dev/pkg/upm/internal/model"
)

func (i *installer) InstallFromArchive(ctx context.Context, archive string, expect *m.Identity) (bool, error) {
	scratch, err := i.fs.CreateTempDir("upm-unpacked-*")
	if err != nil {
		return false, fmt.Errorf("create scratch directory: %w", err)
	}

	defer i.removeScratch(scratch)

	i.ui.DisplayStep(ctx, fmt.Sprintf("Unpacking %s...", filepath.Base(archive)))

	if err := i.archives.Extract(ctx, archive, scratch); err != nil {
		slog.Error("archive extraction failed", "archive", archive, "error", err)
		i.ui.DisplayError(ctx, fmt.Sprintf("cannot unpack %s: %v", archive, err))

		return false, nil
	}

	root, err := i.archiveRoot(scratch)
	if err != nil {
		return false, err
	}

	return i.InstallFromDirectory(ctx, root, expect)
}

// archiveRoot returns the package directory of an extracted archive: the
// scratch directory itself, or its only subdirectory when the archive wraps
// the package in a top-level folder.
func (i *installer) archiveRoot(scratch string) (string, error) {
	for _, name := range []string{adapter.ManifestJSON, adapter.ManifestYAML} {
		ok, err := i.fs.Exists(filepath.Join(scratch, name))
		if err != nil {
			return "", err
		}

		if ok {
			return scratch, nil
		}
	}

	entries, err := i.fs.ReadDir(scratch)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", scratch, err)
	}

	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(scratch, entries[0].Name()), nil
	}

	return scratch, nil
}

func (i *installer) removeScratch(path string) {
	if err := i.fs.RemoveAll(path); err != nil {
		slog.Warn("failed to remove scratch path", "path", path, "error", err)
	}
}

func (i *installer) InstallFromRegistry(ctx context.Context, name, selector string) (bool, error) {
	ref := m.Ref{Name: name, Selector: selector}

	if !m.ValidName(name) {
		slog.Warn("refusing to install invalid package name", "ref", ref.String())
		i.ui.DisplayError(ctx, fmt.Sprintf("%q is not a valid package name", name))

		return false, nil
	}

	if installed, err := i.finder.Find(ref); err == nil && !i.opts.Upgrade {
		i.ui.DisplayNote(ctx, fmt.Sprintf("%s is already installed, specify --upgrade", installed.Identifier()))
		return true, nil
	}

	i.ui.DisplayStep(ctx, fmt.Sprintf("Finding package matching %s...", ref))

	info, err := i.registry.FindPackage(ctx, name, selector)
	if errors.Is(err, adapter.ErrPackageNotFound) {
		slog.Warn("package not found in registry", "ref", ref.String())
		i.ui.DisplayError(ctx, fmt.Sprintf("no package matching %s found in the registry", ref))

		return false, nil
	}

	if err != nil {
		slog.Error("registry lookup failed", "ref", ref.String(), "error", err)
		return false, fmt.Errorf("find %s: %w", ref, err)
	}

	if info.Name != name {
		slog.Error("registry answered with another package", "ref", ref.String(), "got", info.Name)
		i.ui.DisplayError(ctx, fmt.Sprintf("registry answered %s@%s for %s", info.Name, info.Version, ref))

		return false, nil
	}

	expect := m.Identity{Name: name, Version: info.Version}

	archive, err := i.download(ctx, *info)
	if archive != "" {
		defer i.removeScratch(archive)
	}

	if err != nil {
		return false, err
	}

	return i.InstallFromArchive(ctx, archive, &expect)
}

// download streams the archive described by info into a uniquely named temp
// file and returns its path. The path is returned even on failure so the
// caller can remove it.
func (i *installer) download(ctx context.Context, info adapter.PackageInfo) (string, error) {
	id := m.Identity{Name: info.Name, Version: info.Version}
	i.ui.DisplayStep(ctx, fmt.Sprintf("Downloading %s...", id))

	dl, err := i.registry.Download(ctx, info)
	if err != nil {
		slog.Error("download failed", "package", id.String(), "error", err)
		return "", fmt.Errorf("download %s: %w", id, err)
	}

	defer func() { _ = dl.Body.Close() }()

	tmp, err := i.fs.CreateTempFile(dl.Filename)
	if err != nil {
		return "", err
	}

	progress := &progressWriter{ctx: ctx, ui: i.ui, name: id.String(), total: dl.Size}

	_, copyErr := io.Copy(io.MultiWriter(tmp, progress), dl.Body)
	closeErr := tmp.Close()

	if err := errors.Join(copyErr, closeErr); err != nil {
		slog.Error("download failed", "package", id.String(), "file", tmp.Name(), "error", err)
		return tmp.Name(), fmt.Errorf("download %s: %w", id, err)
	}

	if progress.total < 0 {
		i.ui.DisplayDownloadProgress(ctx, progress.name, progress.done, progress.done)
	}

	slog.Debug("downloaded archive", "package", id.String(), "file", tmp.Name(), "bytes", progress.done)

	return tmp.Name(), nil
}

// progressWriter reports download progress synchronously from the copy loop.
type progressWriter struct {
	ctx   context.Context
	ui    controller.UI
	name  string
	done  int64
	total int64
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.done += int64(len(b))
	p.ui.DisplayDownloadProgress(p.ctx, p.name, p.done, p.total)

	return len(b), nil
}
