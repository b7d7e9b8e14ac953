// Package domain implements the package install/uninstall lifecycle.
package domain

import (
	"upm.dev/pkg/upm/internal/adapter"
	"upm.dev/pkg/upm/internal/controller"
	m "upm.dev/pkg/upm/internal/model"
)

// Options configures an Installer. It is resolved once by the caller and
// never changes for the lifetime of the Installer.
type Options struct {
	// Upgrade replaces installed packages instead of leaving them alone.
	Upgrade bool
	// Dirs is the active layout, local or global.
	Dirs m.Dirs
	// SearchRoots are the package roots consulted to decide whether a
	// dependency is already satisfied. Defaults to Dirs.Packages.
	SearchRoots []string
	// Interpreter runs entry files from generated launchers.
	Interpreter string
}

// Global reports whether the installer writes into the global layout.
func (o Options) Global() bool {
	return o.Dirs.Global()
}

// InstallerDeps are the collaborators of an Installer. Resolver and
// Launchers may be nil to select the defaults.
type InstallerDeps struct {
	FS        adapter.FSAdapter
	Manifests adapter.ManifestReader
	Registry  adapter.RegistryAdapter
	Archives  adapter.ArchiveAdapter
	Foreign   adapter.ForeignInstaller
	Runtime   adapter.RuntimeAdapter
	UI        controller.UI
	Resolver  DependencyResolver
	Launchers LauncherGenerator
}
