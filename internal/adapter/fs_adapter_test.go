package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalFSAdapter_Exists(t *testing.T) {
	a := NewLocalFSAdapter()
	root := t.TempDir()

	ok, err := a.Exists(root)
	if err != nil || !ok {
		t.Fatalf("Exists(%s) = %v, %v; want true, nil", root, ok, err)
	}

	ok, err = a.Exists(filepath.Join(root, "missing"))
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v; want false, nil", ok, err)
	}
}

func TestLocalFSAdapter_CopyFile(t *testing.T) {
	t.Run("creates parents and keeps mode", func(t *testing.T) {
		a := NewLocalFSAdapter()
		root := t.TempDir()

		src := filepath.Join(root, "src.sh")
		writeTestFile(t, src, "echo hi\n")
		if err := os.Chmod(src, 0o755); err != nil {
			t.Fatalf("chmod: %v", err)
		}

		dst := filepath.Join(root, "out", "nested", "dst.sh")
		if err := a.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}

		content, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("read dst: %v", err)
		}
		if string(content) != "echo hi\n" {
			t.Fatalf("content = %q", content)
		}

		info, err := os.Stat(dst)
		if err != nil {
			t.Fatalf("stat dst: %v", err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Fatalf("mode = %v; want 0755", info.Mode().Perm())
		}
	})

	t.Run("overwrites existing destination", func(t *testing.T) {
		a := NewLocalFSAdapter()
		root := t.TempDir()

		src := filepath.Join(root, "a")
		dst := filepath.Join(root, "b")
		writeTestFile(t, src, "new")
		writeTestFile(t, dst, "old and longer")

		if err := a.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}

		content, _ := os.ReadFile(dst)
		if string(content) != "new" {
			t.Fatalf("content = %q; want %q", content, "new")
		}
	})

	t.Run("missing source fails", func(t *testing.T) {
		a := NewLocalFSAdapter()
		root := t.TempDir()

		if err := a.CopyFile(filepath.Join(root, "nope"), filepath.Join(root, "dst")); err == nil {
			t.Fatalf("CopyFile() expected error for missing source")
		}
	})
}

func TestLocalFSAdapter_TempResources(t *testing.T) {
	root := t.TempDir()
	a := NewLocalFSAdapterWithTempRoot(root)

	dir, err := a.CreateTempDir("upm-*_unpacked")
	if err != nil {
		t.Fatalf("CreateTempDir() error = %v", err)
	}
	if filepath.Dir(dir) != root || !strings.HasSuffix(dir, "_unpacked") {
		t.Fatalf("CreateTempDir() = %s; want under %s with suffix", dir, root)
	}

	f1, err := a.CreateTempFile("foo-1.0.0.tar.gz")
	if err != nil {
		t.Fatalf("CreateTempFile() error = %v", err)
	}
	defer f1.Close()

	f2, err := a.CreateTempFile("foo-1.0.0.tar.gz")
	if err != nil {
		t.Fatalf("CreateTempFile() error = %v", err)
	}
	defer f2.Close()

	if f1.Name() == f2.Name() {
		t.Fatalf("CreateTempFile() returned the same name twice: %s", f1.Name())
	}
	if !strings.HasSuffix(f1.Name(), "_foo-1.0.0.tar.gz") {
		t.Fatalf("CreateTempFile() name %s lacks suffix", f1.Name())
	}
	if filepath.Dir(f1.Name()) != root {
		t.Fatalf("CreateTempFile() dir = %s; want %s", filepath.Dir(f1.Name()), root)
	}
}

func TestLocalFSAdapter_RemoveAndWrite(t *testing.T) {
	a := NewLocalFSAdapter()
	root := t.TempDir()

	path := filepath.Join(root, "f")
	if err := a.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := a.Chmod(path, 0o755); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}
	if err := a.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := a.Remove(path); err == nil {
		t.Fatalf("Remove() of missing file expected error")
	}

	nested := filepath.Join(root, "d", "e")
	if err := a.MkdirAll(nested); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	entries, err := a.ReadDir(root)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadDir() = %v, %v", entries, err)
	}
	if err := a.RemoveAll(filepath.Join(root, "d")); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}
	if ok, _ := a.Exists(nested); ok {
		t.Fatalf("RemoveAll() left %s behind", nested)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
