package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"upm.dev/pkg/upm/internal/adapter"
	m "upm.dev/pkg/upm/internal/model"
	"upm.dev/pkg/upm/pkg"
)

// Inventory reports on the packages installed in one packages root.
type Inventory interface {
	List(ctx context.Context) ([]m.InstalledPackage, error)
	// Check verifies that every tracked file of every package still exists.
	// It never modifies anything.
	Check(ctx context.Context) ([]m.PackageHealth, error)
}

type inventory struct {
	dirs      m.Dirs
	fs        adapter.FSAdapter
	manifests adapter.ManifestReader
	parallel  int
}

// NewInventory returns an Inventory over dirs.Packages. parallel bounds the
// number of packages checked at once.
func NewInventory(dirs m.Dirs, fs adapter.FSAdapter, manifests adapter.ManifestReader, parallel int) Inventory {
	if parallel < 1 {
		parallel = 1
	}

	return &inventory{dirs: dirs, fs: fs, manifests: manifests, parallel: parallel}
}

type trackedPackage struct {
	info  m.InstalledPackage
	paths []string
	err   error
}

func (inv *inventory) collect(ctx context.Context) ([]trackedPackage, error) {
	manifests, err := scanPackages(inv.fs, inv.manifests, inv.dirs.Packages)
	if err != nil {
		return nil, err
	}

	packages := make([]trackedPackage, 0, len(manifests))

	for _, manifest := range manifests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := trackedPackage{info: m.InstalledPackage{Identity: manifest.Identity(), Directory: manifest.Directory}}

		p.paths, p.err = pkg.ReadTrackList(filepath.Join(manifest.Directory, m.TrackingFileName))
		if errors.Is(p.err, os.ErrNotExist) {
			p.err = nil
		} else if p.err == nil {
			p.info.Tracked = true
			p.info.Files = len(p.paths)
		}

		packages = append(packages, p)
	}

	return packages, nil
}

func (inv *inventory) List(ctx context.Context) ([]m.InstalledPackage, error) {
	packages, err := inv.collect(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]m.InstalledPackage, 0, len(packages))
	for _, p := range packages {
		list = append(list, p.info)
	}

	return list, nil
}

func (inv *inventory) Check(ctx context.Context) ([]m.PackageHealth, error) {
	packages, err := inv.collect(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]m.PackageHealth, len(packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inv.parallel)

	for idx, p := range packages {
		g.Go(func() error {
			health := m.PackageHealth{Package: p.info, Err: p.err}

			for _, path := range p.paths {
				if err := gctx.Err(); err != nil {
					return err
				}

				ok, err := inv.fs.Exists(path)
				if err != nil {
					health.Err = fmt.Errorf("stat %s: %w", path, err)
					break
				}

				if !ok {
					health.Missing = append(health.Missing, path)
				}
			}

			results[idx] = health

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
