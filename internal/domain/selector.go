package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	gitignore "github.com/sabhiram/go-gitignore"

	m "upm.dev/pkg/upm/internal/model"
)

// IgnoreFileName is the optional gitignore-style exclude file of a package.
const IgnoreFileName = ".upmignore"

// DefaultExcludes are excluded from every package.
var DefaultExcludes = []string{
	".DS_Store",
	".svn/*",
	".git/*",
	"upm_packages/*",
	"*.pyc",
	"*.pyo",
	"dist/*",
	"__pycache__/*",
	m.TrackingFileName,
}

type pattern struct {
	source string
	glob   glob.Glob
	// baseOnly patterns have no slash and may also match the base name.
	baseOnly bool
}

func compilePatterns(sources []string) ([]pattern, error) {
	patterns := make([]pattern, 0, len(sources))

	for _, src := range sources {
		g, err := glob.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", src, err)
		}

		patterns = append(patterns, pattern{source: src, glob: g, baseOnly: !strings.Contains(src, "/")})
	}

	return patterns, nil
}

func matchAny(patterns []pattern, rel string) bool {
	for _, p := range patterns {
		if p.glob.Match(rel) {
			return true
		}

		if p.baseOnly && p.glob.Match(path.Base(rel)) {
			return true
		}
	}

	return false
}

// FileSelector decides which files of a package directory are distributed.
// Like bufio.Scanner it keeps the error of the last walk in Err.
type FileSelector struct {
	manifest *m.Manifest
	includes []pattern
	excludes []pattern
	ignore   *gitignore.GitIgnore
	err      error
}

// NewFileSelector compiles the include and exclude rules of manifest.
func NewFileSelector(manifest *m.Manifest) (*FileSelector, error) {
	includes, err := compilePatterns(manifest.Dist.IncludeFiles)
	if err != nil {
		return nil, err
	}

	excludes, err := compilePatterns(append(append([]string{}, DefaultExcludes...), manifest.Dist.ExcludeFiles...))
	if err != nil {
		return nil, err
	}

	s := &FileSelector{manifest: manifest, includes: includes, excludes: excludes}

	ignorePath := filepath.Join(manifest.Directory, IgnoreFileName)
	if _, statErr := os.Stat(ignorePath); statErr == nil {
		s.ignore, err = gitignore.CompileIgnoreFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", IgnoreFileName, err)
		}
	}

	return s, nil
}

// Selected reports whether the POSIX relative path rel is distributed.
func (s *FileSelector) Selected(rel string) bool {
	if rel == s.manifest.Filename {
		return true
	}

	if matchAny(s.excludes, rel) {
		return false
	}

	if s.ignore != nil && s.ignore.MatchesPath(rel) {
		return false
	}

	return len(s.includes) == 0 || matchAny(s.includes, rel)
}

// Files yields (absolute, relative) pairs in walk order. Every range re-walks
// the directory. Relative paths use forward slashes.
func (s *FileSelector) Files() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		s.err = nil
		root := s.manifest.Directory

		err := filepath.WalkDir(root, func(abs string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if d.Type()&fs.ModeSymlink != 0 {
				info, statErr := os.Stat(abs)
				if statErr != nil || info.IsDir() {
					slog.Debug("skipping symlink", "path", abs)
					return nil
				}
			}

			rel, err := filepath.Rel(root, abs)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)
			if !s.Selected(rel) {
				return nil
			}

			if !yield(abs, rel) {
				return fs.SkipAll
			}

			return nil
		})
		if err != nil && !errors.Is(err, fs.SkipAll) {
			s.err = fmt.Errorf("walk %s: %w", root, err)
		}
	}
}

// Err returns the error that stopped the last walk, if any.
func (s *FileSelector) Err() error {
	return s.err
}

// SelectFiles is a convenience wrapper for callers that do not need walk
// errors. Invalid patterns select nothing.
func SelectFiles(manifest *m.Manifest) iter.Seq2[string, string] {
	s, err := NewFileSelector(manifest)
	if err != nil {
		slog.Warn("invalid file patterns", "package", manifest.Identifier(), "error", err)
		return func(func(string, string) bool) {}
	}

	return s.Files()
}
