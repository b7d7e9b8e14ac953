package adapter

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveAdapter unpacks a package archive.
type ArchiveAdapter interface {
	Extract(ctx context.Context, archive, dest string) error
}

// TarArchiveAdapter extracts tar archives, gzip-compressed or not.
type TarArchiveAdapter struct{}

// NewTarArchiveAdapter constructs a TarArchiveAdapter.
func NewTarArchiveAdapter() *TarArchiveAdapter {
	return &TarArchiveAdapter{}
}

// Extract unpacks archive into dest. Entries that would land outside dest
// are rejected. Links and special files are skipped.
func (a *TarArchiveAdapter) Extract(ctx context.Context, archive, dest string) error {
	// #nosec G304 - archive is a file the installer was asked to unpack
	file, err := os.Open(archive)
	if err != nil {
		return err
	}

	defer func() { _ = file.Close() }()

	reader, err := decompress(bufio.NewReader(file))
	if err != nil {
		return fmt.Errorf("open %s: %w", archive, err)
	}

	tr := tar.NewReader(reader)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read %s: %w", archive, err)
		}

		target, err := containedPath(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(tr, target, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		default:
			slog.Debug("skipping archive entry", "archive", archive, "entry", hdr.Name, "type", hdr.Typeflag)
		}
	}
}

// decompress returns a gzip reader when the stream starts with the gzip magic.
func decompress(r *bufio.Reader) (io.Reader, error) {
	magic, err := r.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return gzip.NewReader(r)
	}

	return r, nil
}

func containedPath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))

	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("archive entry %q escapes the extraction directory", name)
	}

	return target, nil
}

func writeEntry(r io.Reader, target string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if perm == 0 {
		perm = 0o644
	}

	// #nosec G304 - target was checked by containedPath
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	// #nosec G110 - package archives are trusted registry content
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
