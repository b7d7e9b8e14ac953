package domain

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upm.dev/pkg/upm/internal/adapter"
)

func TestMakeShellLauncher(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "bin")
	gen := NewLauncherGenerator(adapter.NewLocalFSAdapter(), "python3", "")

	paths, err := gen.MakeShellLauncher("hello", []string{"sh", "-c", "echo \"hi $0\"; exit 3", "there"}, bin)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(bin, "hello")}, paths)

	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	out, err := exec.Command(paths[0]).CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "launcher error = %v", err)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Equal(t, "hi there\n", string(out))
}

func TestMakeShellLauncher_Clobbers(t *testing.T) {
	bin := t.TempDir()
	existing := filepath.Join(bin, "tool")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	gen := NewLauncherGenerator(adapter.NewLocalFSAdapter(), "python3", "")
	_, err := gen.MakeShellLauncher("tool", []string{"true"}, bin)
	require.NoError(t, err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exec true\n")

	info, err := os.Stat(existing)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestMakeShellLauncher_EmptyCommand(t *testing.T) {
	gen := NewLauncherGenerator(adapter.NewLocalFSAdapter(), "python3", "")
	_, err := gen.MakeShellLauncher("tool", nil, t.TempDir())
	assert.Error(t, err)
}

func TestMakeEntrypointLauncher(t *testing.T) {
	t.Run("local install exports the local dir", func(t *testing.T) {
		root := t.TempDir()
		bin := filepath.Join(root, "bin")
		entry := filepath.Join(root, "pkg", "cli.sh")
		writeFiles(t, root, map[string]string{"pkg/cli.sh": "echo \"$UPM_LOCAL_DIR|$PYTHONPATH|$*\"\n"})

		// sh stands in for the interpreter so the launcher can be executed.
		gen := NewLauncherGenerator(adapter.NewLocalFSAdapter(), "sh", "/mods")
		paths, err := gen.MakeEntrypointLauncher("foo", entry, "/work dir", bin)
		require.NoError(t, err)

		cmd := exec.Command(paths[0], "a", "b")
		cmd.Env = append(os.Environ(), "PYTHONPATH=/existing")
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))

		assert.Equal(t, "/work dir|/mods"+string(filepath.ListSeparator)+"/existing|a b\n", string(out))
	})

	t.Run("global install clears the local dir", func(t *testing.T) {
		root := t.TempDir()
		entry := filepath.Join(root, "cli.sh")
		writeFiles(t, root, map[string]string{"cli.sh": "echo \"[$UPM_LOCAL_DIR]\"\n"})

		gen := NewLauncherGenerator(adapter.NewLocalFSAdapter(), "sh", "")
		paths, err := gen.MakeEntrypointLauncher("foo", entry, "", filepath.Join(root, "bin"))
		require.NoError(t, err)

		cmd := exec.Command(paths[0])
		cmd.Env = append(os.Environ(), "UPM_LOCAL_DIR=/stale")
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))

		assert.Equal(t, "[]\n", string(out))

		script, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(script), "PYTHONPATH"))
	})
}

func TestLauncherWriteFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "bin")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	gen := NewLauncherGenerator(adapter.NewLocalFSAdapter(), "python3", "")
	_, err := gen.MakeShellLauncher("tool", []string{"true"}, blocker)
	assert.Error(t, err)
}

func TestSuggestNames(t *testing.T) {
	installed := []string{"foo", "foobar", "requests", "zap"}

	assert.Equal(t, []string{"foo", "foobar"}, suggestNames("fo", installed)[:2])
	assert.Contains(t, suggestNames("fooo", installed), "foo")
	assert.Empty(t, suggestNames("xyz", installed))
	assert.LessOrEqual(t, len(suggestNames("o", []string{"o1", "o2", "o3", "o4"})), maxSuggestions)
}
