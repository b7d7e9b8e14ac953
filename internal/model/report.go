package model

// FileRemoval records the outcome of removing one tracked file.
type FileRemoval struct {
	Path string
	Err  error
}

// UninstallReport is the result of an uninstall attempt.
type UninstallReport struct {
	Directory string
	Message   string
	Success   bool
	Removals  []FileRemoval
}

// Failed returns the removals that did not succeed.
func (r UninstallReport) Failed() []FileRemoval {
	var failed []FileRemoval

	for _, removal := range r.Removals {
		if removal.Err != nil {
			failed = append(failed, removal)
		}
	}

	return failed
}

// InstalledPackage describes a package found under a packages root.
type InstalledPackage struct {
	Identity  Identity
	Directory string
	// Files is the number of entries in the tracking list.
	Files int
	// Tracked is false when the tracking list is missing.
	Tracked bool
}

// PackageHealth is the result of checking an installed package's tracked files.
type PackageHealth struct {
	Package InstalledPackage
	Missing []string
	Err     error
}

// Healthy reports whether every tracked file is present.
func (h PackageHealth) Healthy() bool {
	return h.Err == nil && h.Package.Tracked && len(h.Missing) == 0
}
