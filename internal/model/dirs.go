package model

import (
	"fmt"
	"path/filepath"
)

// TrackingFileName is the name of the installed-file list kept inside every
// installed package directory.
const TrackingFileName = ".upm-installed-files"

// Dirs is the directory layout an installer writes into.
type Dirs struct {
	// Packages is the root holding one directory per installed package.
	Packages string
	// Bin receives generated launchers.
	Bin string
	// PythonModules is the target of foreign (pip) dependencies.
	PythonModules string
	// LocalDir is the working directory of a local install; empty when global.
	LocalDir string
}

// GlobalDirs returns the layout used for installs under prefix.
func GlobalDirs(prefix string) Dirs {
	return Dirs{
		Packages:      filepath.Join(prefix, "packages"),
		Bin:           filepath.Join(prefix, "bin"),
		PythonModules: filepath.Join(prefix, "pymodules"),
	}
}

// LocalDirs returns the layout used for installs into packagesDir on behalf
// of the project in workDir.
func LocalDirs(workDir, packagesDir string) Dirs {
	if !filepath.IsAbs(packagesDir) {
		packagesDir = filepath.Join(workDir, packagesDir)
	}

	return Dirs{
		Packages:      packagesDir,
		Bin:           filepath.Join(packagesDir, ".bin"),
		PythonModules: filepath.Join(packagesDir, ".pymodules"),
		LocalDir:      workDir,
	}
}

// Global reports whether the layout belongs to a global install.
func (d Dirs) Global() bool {
	return d.LocalDir == ""
}

// Target returns the install directory of the named package.
func (d Dirs) Target(name string) string {
	return filepath.Join(d.Packages, name)
}

// Absolute returns a copy of d with every path made absolute. Tracking lists
// store absolute paths, so installers work on absolute layouts only.
func (d Dirs) Absolute() (Dirs, error) {
	for _, p := range []*string{&d.Packages, &d.Bin, &d.PythonModules, &d.LocalDir} {
		if *p == "" {
			continue
		}

		abs, err := filepath.Abs(*p)
		if err != nil {
			return Dirs{}, fmt.Errorf("resolve %s: %w", *p, err)
		}

		*p = abs
	}

	return d, nil
}
