package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	m "upm.dev/pkg/upm/internal/model"
)

// Manifest file names, in lookup order.
const (
	ManifestJSON = "package.json"
	ManifestYAML = "package.yaml"
)

// ManifestReader parses the package manifest of a directory.
type ManifestReader interface {
	// Parse returns the manifest of dir, or a *model.ManifestError.
	Parse(dir string) (*m.Manifest, error)
}

// LocalManifestReader reads package.json or package.yaml from disk and
// validates the result.
type LocalManifestReader struct {
	validator *validator.Validate
}

// NewLocalManifestReader constructs a LocalManifestReader.
func NewLocalManifestReader() *LocalManifestReader {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("pkgname", func(fl validator.FieldLevel) bool {
		return m.ValidName(fl.Field().String())
	})
	_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
		_, err := semver.NewVersion(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("relpath", func(fl validator.FieldLevel) bool {
		return isContainedRelPath(fl.Field().String())
	})

	return &LocalManifestReader{validator: v}
}

// Parse reads and validates the manifest in dir.
func (r *LocalManifestReader) Parse(dir string) (*m.Manifest, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &m.ManifestError{Kind: m.NotAPackage, Directory: dir, Err: err}
	}

	for _, name := range []string{ManifestJSON, ManifestYAML} {
		filename := filepath.Join(dir, name)

		// #nosec G304 - manifest path is derived from the package directory
		data, err := os.ReadFile(filename)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, &m.ManifestError{Kind: m.InvalidManifest, Directory: dir, Detail: err.Error(), Err: err}
		}

		manifest, err := r.decode(name, data)
		if err != nil {
			return nil, &m.ManifestError{Kind: m.InvalidManifest, Directory: dir, Detail: err.Error(), Err: err}
		}

		manifest.Directory = dir
		manifest.Filename = name

		return manifest, nil
	}

	return nil, &m.ManifestError{Kind: m.NotAPackage, Directory: dir, Err: os.ErrNotExist}
}

func (r *LocalManifestReader) decode(name string, data []byte) (*m.Manifest, error) {
	var manifest m.Manifest

	switch name {
	case ManifestYAML:
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	if err := r.validate(&manifest); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &manifest, nil
}

func (r *LocalManifestReader) validate(manifest *m.Manifest) error {
	err := r.validator.Struct(manifest)
	if err == nil {
		return r.validateEntries(manifest)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field %s failed %q check", fe.Namespace(), fe.Tag()))
	}

	return errors.New(strings.Join(msgs, "; "))
}

// validateEntries checks rules the struct tags cannot express for OrderedMap values.
func (r *LocalManifestReader) validateEntries(manifest *m.Manifest) error {
	for _, e := range manifest.Bin {
		if !isContainedRelPath(e.Value) {
			return fmt.Errorf("bin %q: entry file %q must be a relative path inside the package", e.Key, e.Value)
		}
	}

	for _, dep := range manifest.Dependencies {
		if !m.ValidName(dep.Key) {
			return fmt.Errorf("dependency %q is not a valid package name", dep.Key)
		}
	}

	for _, names := range []m.OrderedMap{manifest.Bin, manifest.Scripts} {
		for _, e := range names {
			if strings.ContainsAny(e.Key, `/\`) || e.Key == "." || e.Key == ".." {
				return fmt.Errorf("command name %q must not contain path separators", e.Key)
			}
		}
	}

	for _, e := range manifest.Scripts {
		argv, err := shellquote.Split(e.Value)
		if err != nil {
			return fmt.Errorf("script %q: %w", e.Key, err)
		}

		if len(argv) == 0 {
			return fmt.Errorf("script %q has an empty command", e.Key)
		}
	}

	return nil
}

// isContainedRelPath reports whether p is a relative path that stays inside its base.
func isContainedRelPath(p string) bool {
	if p == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return false
	}

	clean := path.Clean(filepath.ToSlash(p))

	return clean != ".." && !strings.HasPrefix(clean, "../")
}
