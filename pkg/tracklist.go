// Package pkg provides utilities shared by upm commands.
package pkg

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// ErrInvalidTrackedPath is returned for paths that cannot be stored one per line.
var ErrInvalidTrackedPath = errors.New("tracked path must be non-empty and single-line")

// TrackList is an append-only list of absolute paths persisted one per line.
// Every Append reaches the file before it returns, so an interrupted install
// still leaves a list of what it wrote.
type TrackList interface {
	Len() int
	Path() string
	Append(path string) error
	AppendBatch(paths []string) error
	Paths() []string
	Close() error
}

type trackListImpl struct {
	path  string
	file  *os.File
	mu    sync.Mutex
	paths []string
}

// Append implements TrackList.
func (t *trackListImpl) Append(path string) error {
	if path == "" || strings.ContainsAny(path, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidTrackedPath, path)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.file == nil {
		return fmt.Errorf("track list %s is closed", t.path)
	}

	if _, err := t.file.WriteString(path + "\n"); err != nil {
		slog.Error("failed to append tracked path", "list", t.path, "path", path, "error", err)
		return fmt.Errorf("failed to append to track list: %w", err)
	}

	t.paths = append(t.paths, path)
	slog.Debug("tracked path", "list", t.path, "path", path, "index", len(t.paths)-1)

	return nil
}

// AppendBatch implements TrackList.
func (t *trackListImpl) AppendBatch(paths []string) error {
	for _, path := range paths {
		if err := t.Append(path); err != nil {
			return err
		}
	}

	return nil
}

// Path implements TrackList.
func (t *trackListImpl) Path() string {
	return t.path
}

// Len implements TrackList.
func (t *trackListImpl) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.paths)
}

// Paths implements TrackList.
func (t *trackListImpl) Paths() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.paths))
	copy(out, t.paths)

	return out
}

// Close implements TrackList. Closing twice is a no-op.
func (t *trackListImpl) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.file == nil {
		return nil
	}

	err := t.file.Close()
	t.file = nil

	if err != nil {
		slog.Error("failed to close track list", "path", t.path, "error", err)
		return err
	}

	slog.Debug("closed track list", "path", t.path, "length", len(t.paths))

	return nil
}

// CreateTrackList creates (or truncates) the list file at path.
func CreateTrackList(path string) (TrackList, error) {
	// #nosec G304 - path is the installer's own tracking file
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("failed to create track list", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create track list: %w", err)
	}

	slog.Debug("created track list", "path", path)

	return &trackListImpl{path: path, file: file}, nil
}

// ReadTrackList returns the paths stored in the list file at path, skipping
// blank lines. A missing file yields an error matching os.ErrNotExist.
func ReadTrackList(path string) ([]string, error) {
	// #nosec G304 - path is the installer's own tracking file
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close track list", "path", path, "error", err)
		}
	}()

	var paths []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read track list %s: %w", path, err)
	}

	return paths, nil
}
