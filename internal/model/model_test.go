package model

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderedMap_UnmarshalJSON(t *testing.T) {
	t.Run("keeps declaration order", func(t *testing.T) {
		var m Manifest
		err := json.Unmarshal([]byte(`{"name":"foo","version":"1.0.0","dependencies":{"zeta":"^1.0","alpha":"~2.1","mid":"*"}}`), &m)
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Dependencies.Keys())

		sel, ok := m.Dependencies.Get("alpha")
		assert.True(t, ok)
		assert.Equal(t, "~2.1", sel)
	})

	t.Run("null decodes to empty", func(t *testing.T) {
		var m Manifest
		require.NoError(t, json.Unmarshal([]byte(`{"name":"foo","scripts":null}`), &m))
		assert.Empty(t, m.Scripts)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		var m Manifest
		assert.Error(t, json.Unmarshal([]byte(`{"bin":["a"]}`), &m))
	})

	t.Run("rejects non-string value", func(t *testing.T) {
		var m Manifest
		assert.Error(t, json.Unmarshal([]byte(`{"bin":{"a":1}}`), &m))
	})
}

func TestOrderedMap_UnmarshalYAML(t *testing.T) {
	src := "name: foo\nversion: 1.0.0\nbin:\n  zz: ./z.py\n  aa: ./a.py\npython_dependencies:\n  requests: '>=2.0'\n"

	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte(src), &m))
	assert.Equal(t, []string{"zz", "aa"}, m.Bin.Keys())

	spec, ok := m.PythonDependencies.Get("requests")
	assert.True(t, ok)
	assert.Equal(t, ">=2.0", spec)

	var bad Manifest
	assert.Error(t, yaml.Unmarshal([]byte("bin:\n  - a\n"), &bad))
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
	}{
		{"foo", Ref{Name: "foo"}},
		{"foo@^1.2", Ref{Name: "foo", Selector: "^1.2"}},
		{" foo@1.0.0 ", Ref{Name: "foo", Selector: "1.0.0"}},
		{"@scope/foo", Ref{Name: "@scope/foo"}},
		{"@scope/foo@~2", Ref{Name: "@scope/foo", Selector: "~2"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseRef(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "foo@^1.2", Ref{Name: "foo", Selector: "^1.2"}.String())
	assert.Equal(t, "foo", Ref{Name: "foo"}.String())
}

func TestValidName(t *testing.T) {
	valid := []string{"foo", "foo-bar", "foo.py", "Foo_2", "@scope/foo", "@my.scope/x"}
	invalid := []string{"", ".", "..", "../x", "foo/..", "a/b", "/abs", "@scope", "@scope/..", "@../x", ".hidden", "foo bar", "-x"}

	for _, name := range valid {
		assert.True(t, ValidName(name), name)
	}

	for _, name := range invalid {
		assert.False(t, ValidName(name), name)
	}
}

func TestMatchSelector(t *testing.T) {
	tests := []struct {
		selector string
		version  string
		want     bool
	}{
		{"", "1.0.0", true},
		{"*", "0.0.1", true},
		{"latest", "3.0.0", true},
		{"^1.2.0", "1.4.0", true},
		{"^1.2.0", "2.0.0", false},
		{"~1.2.0", "1.2.9", true},
		{"~1.2.0", "1.3.0", false},
		{">=1.0.0 <2.0.0", "1.9.9", true},
		{"1.0.0", "1.0.0", true},
		{"1.0.0", "2.0.0", false},
		{"not a selector", "not a selector", true},
		{"^1.0.0", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.selector+"/"+tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSelector(tt.selector, tt.version))
		})
	}
}

func TestDirs(t *testing.T) {
	global := GlobalDirs("/opt/upm")
	assert.Equal(t, filepath.Join("/opt/upm", "packages"), global.Packages)
	assert.Equal(t, filepath.Join("/opt/upm", "bin"), global.Bin)
	assert.Equal(t, filepath.Join("/opt/upm", "pymodules"), global.PythonModules)
	assert.True(t, global.Global())
	assert.Equal(t, filepath.Join("/opt/upm", "packages", "foo"), global.Target("foo"))

	local := LocalDirs("/work", "upm_packages")
	assert.Equal(t, filepath.Join("/work", "upm_packages"), local.Packages)
	assert.Equal(t, filepath.Join("/work", "upm_packages", ".bin"), local.Bin)
	assert.Equal(t, filepath.Join("/work", "upm_packages", ".pymodules"), local.PythonModules)
	assert.Equal(t, "/work", local.LocalDir)
	assert.False(t, local.Global())

	abs := LocalDirs("/work", "/elsewhere/pkgs")
	assert.Equal(t, "/elsewhere/pkgs", abs.Packages)
}

func TestDirs_Absolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GlobalDirs("prefix").Absolute()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "prefix", "packages"), dirs.Packages)
	assert.Equal(t, filepath.Join(wd, "prefix", "bin"), dirs.Bin)
	assert.Empty(t, dirs.LocalDir)
	assert.True(t, dirs.Global())
}

func TestManifestError(t *testing.T) {
	notPkg := &ManifestError{Kind: NotAPackage, Directory: "/x", Err: os.ErrNotExist}
	assert.Contains(t, notPkg.Error(), "contains no package manifest")
	assert.True(t, errors.Is(notPkg, os.ErrNotExist))
	assert.Equal(t, "not-a-package", notPkg.Kind.String())

	invalid := &ManifestError{Kind: InvalidManifest, Directory: "/x", Detail: "name is required"}
	assert.Contains(t, invalid.Error(), "name is required")
	assert.Equal(t, "invalid-manifest", invalid.Kind.String())

	var target *ManifestError
	assert.True(t, errors.As(error(invalid), &target))
	assert.Equal(t, InvalidManifest, target.Kind)
}

func TestUninstallReport_Failed(t *testing.T) {
	report := UninstallReport{Removals: []FileRemoval{
		{Path: "/a"},
		{Path: "/b", Err: os.ErrPermission},
	}}

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "/b", failed[0].Path)
}

func TestPackageHealth_Healthy(t *testing.T) {
	ok := PackageHealth{Package: InstalledPackage{Tracked: true}}
	assert.True(t, ok.Healthy())

	missing := PackageHealth{Package: InstalledPackage{Tracked: true}, Missing: []string{"/a"}}
	assert.False(t, missing.Healthy())

	untracked := PackageHealth{Package: InstalledPackage{Tracked: false}}
	assert.False(t, untracked.Healthy())
}
