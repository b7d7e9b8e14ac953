package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"upm.dev/pkg/upm/internal/adapter"
	"upm.dev/pkg/upm/internal/controller"
	m "upm.dev/pkg/upm/internal/model"
	"upm.dev/pkg/upm/pkg"
)

// Installer installs packages into, and removes them from, one directory
// layout. A false result with a nil error is an expected failure that has
// already been reported; a non-nil error is an unexpected one.
type Installer interface {
	InstallFromDirectory(ctx context.Context, sourceDir string, expect *m.Identity) (bool, error)
	InstallFromArchive(ctx context.Context, archive string, expect *m.Identity) (bool, error)
	InstallFromRegistry(ctx context.Context, name, selector string) (bool, error)
	// InstallDependencies installs what the package in dir depends on,
	// without installing the package itself.
	InstallDependencies(ctx context.Context, dir string) (bool, error)
	Uninstall(ctx context.Context, name string) (m.UninstallReport, error)
	UninstallDirectory(ctx context.Context, dir string) (m.UninstallReport, error)
}

type installer struct {
	opts      Options
	fs        adapter.FSAdapter
	manifests adapter.ManifestReader
	registry  adapter.RegistryAdapter
	archives  adapter.ArchiveAdapter
	foreign   adapter.ForeignInstaller
	runtime   adapter.RuntimeAdapter
	ui        controller.UI
	finder    PackageFinder
	resolver  DependencyResolver
	launchers LauncherGenerator
}

// NewInstaller constructs an Installer for opts.
func NewInstaller(opts Options, deps InstallerDeps) Installer {
	if len(opts.SearchRoots) == 0 {
		opts.SearchRoots = []string{opts.Dirs.Packages}
	}

	i := &installer{
		opts:      opts,
		fs:        deps.FS,
		manifests: deps.Manifests,
		registry:  deps.Registry,
		archives:  deps.Archives,
		foreign:   deps.Foreign,
		runtime:   deps.Runtime,
		ui:        deps.UI,
		finder:    NewPackageFinder(deps.Manifests, opts.SearchRoots...),
		resolver:  deps.Resolver,
		launchers: deps.Launchers,
	}

	if i.resolver == nil {
		i.resolver = NewRecursiveResolver(i.finder, i.ui)
	}

	if i.launchers == nil {
		i.launchers = NewLauncherGenerator(i.fs, opts.Interpreter, opts.Dirs.PythonModules)
	}

	return i
}

// parse reads the manifest of dir and reports a failure through the UI.
func (i *installer) parse(ctx context.Context, dir, action string) (*m.Manifest, bool) {
	manifest, err := i.manifests.Parse(dir)
	if err != nil {
		slog.Warn("cannot read package manifest", "action", action, "dir", dir, "error", err)
		i.ui.DisplayError(ctx, fmt.Sprintf("cannot %s: %v", action, err))

		return nil, false
	}

	return manifest, true
}

func (i *installer) InstallFromDirectory(ctx context.Context, sourceDir string, expect *m.Identity) (bool, error) {
	manifest, ok := i.parse(ctx, sourceDir, "install")
	if !ok {
		return false, nil
	}

	if expect != nil && manifest.Identity() != *expect {
		slog.Error("package identity mismatch", "expected", expect.String(), "got", manifest.Identifier(), "dir", sourceDir)
		i.ui.DisplayError(ctx, fmt.Sprintf("expected to install %s but got %s in %s", expect, manifest.Identifier(), sourceDir))

		return false, nil
	}

	i.ui.DisplayStep(ctx, fmt.Sprintf("Installing %s...", manifest.Identifier()))

	target := i.opts.Dirs.Target(manifest.Name)

	proceed, err := i.prepareTarget(ctx, manifest, target)
	if err != nil || !proceed.install {
		return proceed.ok, err
	}

	if ok, err := i.installDependencies(ctx, manifest); !ok || err != nil {
		return false, err
	}

	i.ui.DisplayStep(ctx, fmt.Sprintf("Installing %s to %s...", manifest.Identifier(), target))

	if err := i.materialize(ctx, manifest, target); err != nil {
		slog.Error("install failed", "package", manifest.Identifier(), "target", target, "error", err)
		i.ui.DisplayError(ctx, fmt.Sprintf("installing %s failed: %v", manifest.Identifier(), err))

		return false, fmt.Errorf("install %s: %w", manifest.Identifier(), err)
	}

	if err := i.runPostinstall(ctx, manifest, target); err != nil {
		return false, err
	}

	slog.Info("package installed", "package", manifest.Identifier(), "target", target)

	return true, nil
}

type targetDecision struct {
	install bool
	ok      bool
}

// prepareTarget handles an existing target directory: it is left alone
// without --upgrade and fully uninstalled with it. Target directories are
// never merged into.
func (i *installer) prepareTarget(ctx context.Context, manifest *m.Manifest, target string) (targetDecision, error) {
	exists, err := i.fs.Exists(target)
	if err != nil {
		return targetDecision{}, fmt.Errorf("stat %s: %w", target, err)
	}

	if !exists {
		return targetDecision{install: true}, nil
	}

	if !i.opts.Upgrade {
		i.ui.DisplayNote(ctx, fmt.Sprintf("  Install directory %s already exists, specify --upgrade", target))
		return targetDecision{ok: true}, nil
	}

	if samePath(manifest.Directory, target) {
		i.ui.DisplayError(ctx, fmt.Sprintf("cannot upgrade %s from its own install directory", manifest.Identifier()))
		return targetDecision{}, nil
	}

	report, err := i.UninstallDirectory(ctx, target)
	i.ui.DisplayUninstallReport(ctx, report)

	if err != nil {
		return targetDecision{}, fmt.Errorf("upgrade %s: %w", manifest.Identifier(), err)
	}

	return targetDecision{install: report.Success}, nil
}

func (i *installer) InstallDependencies(ctx context.Context, dir string) (bool, error) {
	manifest, ok := i.parse(ctx, dir, "install dependencies")
	if !ok {
		return false, nil
	}

	i.ui.DisplayStep(ctx, fmt.Sprintf("Installing dependencies of %s...", manifest.Identifier()))

	return i.installDependencies(ctx, manifest)
}

// installDependencies runs the dependency resolver, then the foreign installer.
func (i *installer) installDependencies(ctx context.Context, manifest *m.Manifest) (bool, error) {
	if ok, err := i.resolver.Resolve(ctx, manifest, i); !ok || err != nil {
		return false, err
	}

	return i.installForeign(ctx, manifest), nil
}

func (i *installer) installForeign(ctx context.Context, manifest *m.Manifest) bool {
	if len(manifest.PythonDependencies) == 0 {
		return true
	}

	specs := make([]string, 0, len(manifest.PythonDependencies))
	for _, dep := range manifest.PythonDependencies {
		specs = append(specs, dep.Key+dep.Value)
	}

	i.ui.DisplayStep(ctx, "Installing Python dependencies via pip: "+strings.Join(specs, ", "))

	if err := i.foreign.Install(ctx, i.opts.Dirs.PythonModules, specs); err != nil {
		slog.Error("foreign dependency install failed", "package", manifest.Identifier(), "target", i.opts.Dirs.PythonModules, "error", err)
		i.ui.DisplayError(ctx, err.Error())

		return false
	}

	return true
}

// materialize copies the selected files and writes the launchers. Every path
// is added to the tracking list as soon as it is written.
func (i *installer) materialize(ctx context.Context, manifest *m.Manifest, target string) (err error) {
	if err := i.fs.MkdirAll(target); err != nil {
		return err
	}

	list, err := pkg.CreateTrackList(filepath.Join(target, m.TrackingFileName))
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := list.Close(); err == nil {
			err = closeErr
		}
	}()

	selector, err := NewFileSelector(manifest)
	if err != nil {
		return err
	}

	for abs, rel := range selector.Files() {
		if isWithin(abs, target) {
			continue
		}

		dst := filepath.Join(target, filepath.FromSlash(rel))
		slog.Debug("copying file", "package", manifest.Identifier(), "file", rel)

		if err := i.fs.CopyFile(abs, dst); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}

		if err := list.Append(dst); err != nil {
			return err
		}
	}

	if err := selector.Err(); err != nil {
		return err
	}

	for _, script := range manifest.Scripts {
		i.ui.DisplayNote(ctx, fmt.Sprintf("  Installing script %s", script.Key))

		argv, err := shellquote.Split(script.Value)
		if err != nil {
			return fmt.Errorf("script %s: %w", script.Key, err)
		}

		paths, err := i.launchers.MakeShellLauncher(script.Key, argv, i.opts.Dirs.Bin)
		if err != nil {
			return err
		}

		if err := list.AppendBatch(paths); err != nil {
			return err
		}
	}

	for _, bin := range manifest.Bin {
		i.ui.DisplayNote(ctx, fmt.Sprintf("  Installing script %s", bin.Key))

		entry := filepath.Join(target, filepath.FromSlash(bin.Value))

		paths, err := i.launchers.MakeEntrypointLauncher(bin.Key, entry, i.opts.Dirs.LocalDir, i.opts.Dirs.Bin)
		if err != nil {
			return err
		}

		if err := list.AppendBatch(paths); err != nil {
			return err
		}
	}

	return nil
}

func (i *installer) runPostinstall(ctx context.Context, manifest *m.Manifest, target string) error {
	if manifest.Postinstall == "" {
		return nil
	}

	script := filepath.Join(target, filepath.FromSlash(manifest.Postinstall))
	i.ui.DisplayNote(ctx, fmt.Sprintf("  Running postinstall script %s", manifest.Postinstall))

	output, err := i.runtime.Run(ctx, script, adapter.RunOptions{
		Dir:        target,
		LocalDir:   i.opts.Dirs.LocalDir,
		ModulePath: i.opts.Dirs.PythonModules,
	})
	if output != "" {
		slog.Debug("postinstall output", "package", manifest.Identifier(), "output", output)
	}

	if err != nil {
		slog.Error("postinstall failed", "package", manifest.Identifier(), "script", script, "output", output, "error", err)
		msg := fmt.Sprintf("postinstall script %s failed: %v", script, err)
		if trimmed := strings.TrimSpace(output); trimmed != "" {
			msg += "\n" + trimmed
		}

		i.ui.DisplayError(ctx, msg)

		return fmt.Errorf("postinstall %s: %w", manifest.Identifier(), err)
	}

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	return errA == nil && errB == nil && absA == absB
}

// isWithin reports whether path lies inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
