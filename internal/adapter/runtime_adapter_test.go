package adapter

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestRuntimeEnv(t *testing.T) {
	base := []string{"HOME=/home/u", "UPM_LOCAL_DIR=/stale", "PYTHONPATH=/existing"}

	t.Run("local install", func(t *testing.T) {
		env := runtimeEnv(base, RunOptions{LocalDir: "/proj", ModulePath: "/proj/upm_packages/.pymodules"})

		if !slices.Contains(env, "UPM_LOCAL_DIR=/proj") || slices.Contains(env, "UPM_LOCAL_DIR=/stale") {
			t.Fatalf("env = %v; want UPM_LOCAL_DIR replaced", env)
		}

		want := "PYTHONPATH=/proj/upm_packages/.pymodules" + string(filepath.ListSeparator) + "/existing"
		if !slices.Contains(env, want) {
			t.Fatalf("env = %v; want %s", env, want)
		}

		if !slices.Contains(env, "HOME=/home/u") {
			t.Fatalf("env = %v; want HOME kept", env)
		}
	})

	t.Run("global install drops local dir", func(t *testing.T) {
		env := runtimeEnv(base, RunOptions{})

		for _, kv := range env {
			if strings.HasPrefix(kv, LocalDirEnv+"=") {
				t.Fatalf("env = %v; want no %s", env, LocalDirEnv)
			}
		}

		if !slices.Contains(env, "PYTHONPATH=/existing") {
			t.Fatalf("env = %v; want PYTHONPATH kept", env)
		}
	})

	t.Run("module path without existing PYTHONPATH", func(t *testing.T) {
		env := runtimeEnv([]string{"HOME=/h"}, RunOptions{ModulePath: "/mods"})

		if !slices.Contains(env, "PYTHONPATH=/mods") {
			t.Fatalf("env = %v; want PYTHONPATH=/mods", env)
		}
	})
}

func TestLocalRuntimeAdapter_Run(t *testing.T) {
	t.Run("captures output and exports environment", func(t *testing.T) {
		dir := t.TempDir()
		script := filepath.Join(dir, "post.sh")
		writeTestFile(t, script, "echo \"local=$UPM_LOCAL_DIR\"\necho \"cwd=$(pwd)\"\necho \"arg=$1\"\n")

		out, err := NewLocalRuntimeAdapter("sh").Run(context.Background(), script, RunOptions{
			Dir:      dir,
			LocalDir: "/proj",
			Args:     []string{"x"},
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		for _, want := range []string{"local=/proj", "arg=x", "cwd="} {
			if !strings.Contains(out, want) {
				t.Fatalf("output = %q; want %q", out, want)
			}
		}
	})

	t.Run("non-zero exit is an error with output", func(t *testing.T) {
		dir := t.TempDir()
		script := filepath.Join(dir, "fail.sh")
		writeTestFile(t, script, "echo broken >&2\nexit 3\n")

		out, err := NewLocalRuntimeAdapter("sh").Run(context.Background(), script, RunOptions{Dir: dir})
		if err == nil {
			t.Fatal("Run() error = nil; want exit error")
		}

		if !strings.Contains(out, "broken") {
			t.Fatalf("output = %q; want stderr captured", out)
		}
	})

	t.Run("missing interpreter", func(t *testing.T) {
		_, err := NewLocalRuntimeAdapter("upm-no-such-interpreter").Run(context.Background(), "x.py", RunOptions{})
		if err == nil {
			t.Fatal("Run() error = nil; want exec error")
		}
	})
}
