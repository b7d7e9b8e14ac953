package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"upm.dev/pkg/upm/internal/controller"
	m "upm.dev/pkg/upm/internal/model"
)

// RegistryInstaller installs a package from the registry.
type RegistryInstaller interface {
	InstallFromRegistry(ctx context.Context, name, selector string) (bool, error)
}

// DependencyResolver installs the unmet dependencies of a manifest.
type DependencyResolver interface {
	Resolve(ctx context.Context, manifest *m.Manifest, installer RegistryInstaller) (bool, error)
}

// recursiveResolver installs every unmet dependency through the registry.
// It keeps no visited set: a dependency cycle recurses until the stack or
// the registry gives out.
type recursiveResolver struct {
	finder PackageFinder
	ui     controller.UI
}

// NewRecursiveResolver returns the default DependencyResolver.
func NewRecursiveResolver(finder PackageFinder, ui controller.UI) DependencyResolver {
	return &recursiveResolver{finder: finder, ui: ui}
}

func (r *recursiveResolver) Resolve(ctx context.Context, manifest *m.Manifest, installer RegistryInstaller) (bool, error) {
	if len(manifest.Dependencies) == 0 {
		return true, nil
	}

	r.ui.DisplayStep(ctx, fmt.Sprintf("Collecting dependencies for %s...", manifest.Identifier()))

	var queue []m.Ref

	for _, dep := range manifest.Dependencies {
		ref := m.Ref{Name: dep.Key, Selector: dep.Value}

		if _, err := r.finder.Find(ref); err == nil {
			r.ui.DisplayNote(ctx, fmt.Sprintf("  Skipping satisfied dependency %s", ref))
			continue
		}

		queue = append(queue, ref)
	}

	if len(queue) == 0 {
		return true, nil
	}

	names := make([]string, 0, len(queue))
	for _, ref := range queue {
		names = append(names, ref.String())
	}

	r.ui.DisplayStep(ctx, "Installing dependencies: "+strings.Join(names, ", "))

	for _, ref := range queue {
		ok, err := installer.InstallFromRegistry(ctx, ref.Name, ref.Selector)
		if err != nil {
			return false, fmt.Errorf("dependency %s of %s: %w", ref, manifest.Identifier(), err)
		}

		if !ok {
			slog.Error("dependency install failed", "package", manifest.Identifier(), "dependency", ref.String())
			r.ui.DisplayError(ctx, fmt.Sprintf("could not install dependency %s of %s", ref, manifest.Identifier()))

			return false, nil
		}
	}

	return true, nil
}
