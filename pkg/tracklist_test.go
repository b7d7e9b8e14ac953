package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackList(t *testing.T) {
	t.Run("CreateTrackList creates an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".upm-installed-files")
		list, err := CreateTrackList(path)
		require.NoError(t, err)
		defer list.Close()

		require.Equal(t, path, list.Path())
		require.Equal(t, 0, list.Len())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Empty(t, content)
	})

	t.Run("Append writes newline-terminated lines immediately", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list")
		list, err := CreateTrackList(path)
		require.NoError(t, err)
		defer list.Close()

		require.NoError(t, list.Append("/a/b.py"))
		require.NoError(t, list.Append("/bin/fooctl"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "/a/b.py\n/bin/fooctl\n", string(content))
		require.Equal(t, []string{"/a/b.py", "/bin/fooctl"}, list.Paths())
	})

	t.Run("AppendBatch keeps order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list")
		list, err := CreateTrackList(path)
		require.NoError(t, err)

		require.NoError(t, list.AppendBatch([]string{"/x", "/y", "/z"}))
		require.Equal(t, 3, list.Len())
		require.NoError(t, list.Close())

		paths, err := ReadTrackList(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/x", "/y", "/z"}, paths)
	})

	t.Run("Append rejects multi-line and empty paths", func(t *testing.T) {
		list, err := CreateTrackList(filepath.Join(t.TempDir(), "list"))
		require.NoError(t, err)
		defer list.Close()

		err = list.Append("/a\n/b")
		require.ErrorIs(t, err, ErrInvalidTrackedPath)

		err = list.Append("")
		require.ErrorIs(t, err, ErrInvalidTrackedPath)
		require.Equal(t, 0, list.Len())
	})

	t.Run("Append after Close fails", func(t *testing.T) {
		list, err := CreateTrackList(filepath.Join(t.TempDir(), "list"))
		require.NoError(t, err)
		require.NoError(t, list.Close())
		require.NoError(t, list.Close())
		require.Error(t, list.Append("/a"))
	})

	t.Run("CreateTrackList truncates an existing list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list")
		require.NoError(t, os.WriteFile(path, []byte("/old\n"), 0o644))

		list, err := CreateTrackList(path)
		require.NoError(t, err)
		require.NoError(t, list.Append("/new"))
		require.NoError(t, list.Close())

		paths, err := ReadTrackList(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/new"}, paths)
	})

	t.Run("CreateTrackList fails in a missing directory", func(t *testing.T) {
		_, err := CreateTrackList(filepath.Join(t.TempDir(), "missing", "list"))
		require.Error(t, err)
	})
}

func TestReadTrackList(t *testing.T) {
	t.Run("missing file matches ErrNotExist", func(t *testing.T) {
		_, err := ReadTrackList(filepath.Join(t.TempDir(), "nope"))
		require.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("skips blank lines and carriage returns", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list")
		require.NoError(t, os.WriteFile(path, []byte("/a\r\n\n/b\n"), 0o644))

		paths, err := ReadTrackList(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/a", "/b"}, paths)
	})
}
