package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"upm.dev/pkg/upm/internal/adapter"
	m "upm.dev/pkg/upm/internal/model"
)

// ErrPackageNotInstalled is returned when no visible root holds a matching package.
var ErrPackageNotInstalled = errors.New("package not installed")

// PackageFinder answers whether a package matching a reference is loadable
// from a set of package roots.
type PackageFinder interface {
	Find(ref m.Ref) (*m.Manifest, error)
}

type packageFinder struct {
	manifests adapter.ManifestReader
	roots     []string
}

// NewPackageFinder returns a finder that looks in roots, in order.
func NewPackageFinder(manifests adapter.ManifestReader, roots ...string) PackageFinder {
	return &packageFinder{manifests: manifests, roots: roots}
}

// Find returns the manifest of the first installed package named ref.Name
// whose version satisfies ref.Selector.
func (f *packageFinder) Find(ref m.Ref) (*m.Manifest, error) {
	for _, root := range f.roots {
		manifest, err := f.manifests.Parse(filepath.Join(root, ref.Name))
		if err != nil {
			var merr *m.ManifestError
			if errors.As(err, &merr) && merr.Kind == m.InvalidManifest {
				slog.Warn("ignoring installed package with invalid manifest", "root", root, "package", ref.Name, "error", err)
			}

			continue
		}

		if manifest.Name != ref.Name || !ref.Matches(manifest.Version) {
			slog.Debug("installed package does not match", "ref", ref.String(), "found", manifest.Identifier())
			continue
		}

		return manifest, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrPackageNotInstalled, ref)
}

// scanPackages returns the valid packages directly under root, including
// scoped packages under @scope directories, sorted by name.
func scanPackages(fs adapter.FSAdapter, manifests adapter.ManifestReader, root string) ([]*m.Manifest, error) {
	dirs, err := packageDirs(fs, root)
	if err != nil {
		return nil, err
	}

	found := make([]*m.Manifest, 0, len(dirs))

	for _, dir := range dirs {
		manifest, err := manifests.Parse(dir)
		if err != nil {
			slog.Debug("skipping directory without a valid manifest", "dir", dir, "error", err)
			continue
		}

		found = append(found, manifest)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return found, nil
}

func packageDirs(fs adapter.FSAdapter, root string) ([]string, error) {
	entries, err := fs.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var dirs []string

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		dir := filepath.Join(root, e.Name())
		if !strings.HasPrefix(e.Name(), "@") {
			dirs = append(dirs, dir)
			continue
		}

		scoped, err := fs.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}

		for _, s := range scoped {
			if s.IsDir() {
				dirs = append(dirs, filepath.Join(dir, s.Name()))
			}
		}
	}

	return dirs, nil
}
