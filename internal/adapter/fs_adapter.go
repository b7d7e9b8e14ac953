// Package adapter contains the infrastructure adapters used by the installer.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSAdapter abstracts the filesystem operations the installer performs so the
// domain layer can be tested with injected failures.
//
//nolint:interfacebloat // A richer interface keeps installer logic decoupled from os.
type FSAdapter interface {
	// Exists reports whether path exists. Errors other than "not exist" are returned.
	Exists(path string) (bool, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error

	// CopyFile copies src to dst, keeping the source permission bits.
	CopyFile(src, dst string) error

	// WriteFile writes content to path, replacing any existing file.
	WriteFile(path string, content []byte, perm os.FileMode) error

	// Chmod changes the mode of path.
	Chmod(path string, mode os.FileMode) error

	// Remove deletes a single file.
	Remove(path string) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path string) error

	// CreateTempDir creates a scratch directory.
	CreateTempDir(pattern string) (string, error)

	// CreateTempFile creates a uniquely named file whose name ends in suffix.
	CreateTempFile(suffix string) (*os.File, error)
}

// LocalFSAdapter implements FSAdapter on top of the os package.
type LocalFSAdapter struct {
	tempRoot string
}

// NewLocalFSAdapter constructs a LocalFSAdapter using the system temp directory.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// NewLocalFSAdapterWithTempRoot constructs a LocalFSAdapter that creates
// scratch files and directories under tempRoot.
func NewLocalFSAdapterWithTempRoot(tempRoot string) *LocalFSAdapter {
	return &LocalFSAdapter{tempRoot: tempRoot}
}

// Exists reports whether path exists.
func (a *LocalFSAdapter) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// ReadDir lists the entries of a directory.
func (a *LocalFSAdapter) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalFSAdapter) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

// CopyFile copies a single file, creating the parent directory of dst.
func (a *LocalFSAdapter) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	// #nosec G304 - src comes from walking a package directory
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	// #nosec G304 - dst is inside the install target
	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, info.Mode().Perm())
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFSAdapter) WriteFile(path string, content []byte, perm os.FileMode) error {
	return os.WriteFile(path, content, perm)
}

// Chmod changes the mode of path.
func (a *LocalFSAdapter) Chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

// Remove deletes a single file.
func (a *LocalFSAdapter) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalFSAdapter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CreateTempDir creates a scratch directory.
func (a *LocalFSAdapter) CreateTempDir(pattern string) (string, error) {
	return os.MkdirTemp(a.tempRoot, pattern)
}

// CreateTempFile creates a new file named <uuid>_<suffix> in the temp root.
func (a *LocalFSAdapter) CreateTempFile(suffix string) (*os.File, error) {
	root := a.tempRoot
	if root == "" {
		root = os.TempDir()
	}

	name := "upm-" + uuid.NewString()
	if suffix != "" {
		name += "_" + filepath.Base(suffix)
	}

	path := filepath.Join(root, name)

	// #nosec G304 - path is generated here
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return file, nil
}
