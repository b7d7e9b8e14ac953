package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "upm.dev/pkg/upm/internal/model"
)

func TestSimpleUI_Messages(t *testing.T) {
	var out bytes.Buffer
	ui := NewSimpleUI(&out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	ui.DisplayStep(ctx, "Installing foo@1.0.0")
	ui.DisplayNote(ctx, "bar@^2 is already installed")
	ui.DisplayWarning(ctx, "no tracking list")
	ui.DisplayError(ctx, "boom")
	ui.Close(ctx)

	text := out.String()
	assert.Contains(t, text, "Installing foo@1.0.0\n")
	assert.Contains(t, text, "bar@^2 is already installed\n")
	assert.Contains(t, text, "warning: no tracking list\n")
	assert.Contains(t, text, "error: boom\n")
}

func TestSimpleUI_StartCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, NewSimpleUI(&bytes.Buffer{}).Start(ctx))
}

func TestSimpleUI_DisplayDownloadProgress(t *testing.T) {
	t.Run("prints quarters and completion", func(t *testing.T) {
		var out bytes.Buffer
		ui := NewSimpleUI(&out)
		ctx := context.Background()

		for done := int64(0); done <= 4000; done += 500 {
			ui.DisplayDownloadProgress(ctx, "foo@1.0.0", done, 4000)
		}

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Downloading foo@1.0.0: 1.0 kB / 4.0 kB", lines[0])
		assert.Equal(t, "Downloading foo@1.0.0: 4.0 kB / 4.0 kB", lines[3])
	})

	t.Run("unknown size prints nothing", func(t *testing.T) {
		var out bytes.Buffer
		ui := NewSimpleUI(&out)

		ui.DisplayDownloadProgress(context.Background(), "foo", 100, -1)
		assert.Empty(t, out.String())
	})

	t.Run("a second download of the same name reports again", func(t *testing.T) {
		var out bytes.Buffer
		ui := NewSimpleUI(&out)
		ctx := context.Background()

		ui.DisplayDownloadProgress(ctx, "foo", 10, 10)
		ui.DisplayDownloadProgress(ctx, "foo", 10, 10)
		assert.Equal(t, 2, strings.Count(out.String(), "Downloading foo"))
	})
}

func TestSimpleUI_DisplayPackages(t *testing.T) {
	t.Run("table of packages", func(t *testing.T) {
		var out bytes.Buffer
		NewSimpleUI(&out).DisplayPackages(context.Background(), []m.InstalledPackage{
			{Identity: m.Identity{Name: "foo", Version: "1.0.0"}, Directory: "/p/foo", Files: 3, Tracked: true},
			{Identity: m.Identity{Name: "bar", Version: "2.1.0"}, Directory: "/p/bar"},
		})

		text := out.String()
		assert.Contains(t, text, "foo")
		assert.Contains(t, text, "1.0.0")
		assert.Contains(t, text, "/p/bar")
		assert.Contains(t, strings.ToUpper(text), "TOTAL 2")
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		NewSimpleUI(&out).DisplayPackages(context.Background(), nil)
		assert.Equal(t, "No packages installed.\n", out.String())
	})
}

func TestSimpleUI_DisplayHealth(t *testing.T) {
	var out bytes.Buffer
	NewSimpleUI(&out).DisplayHealth(context.Background(), []m.PackageHealth{
		{Package: m.InstalledPackage{Identity: m.Identity{Name: "ok", Version: "1.0.0"}, Tracked: true}},
		{Package: m.InstalledPackage{Identity: m.Identity{Name: "broken", Version: "1.0.0"}, Tracked: true}, Missing: []string{"/bin/broken"}},
		{Package: m.InstalledPackage{Identity: m.Identity{Name: "legacy", Version: "0.1.0"}}},
		{Package: m.InstalledPackage{Identity: m.Identity{Name: "bad", Version: "0.1.0"}}, Err: errors.New("unreadable")},
	})

	text := out.String()
	assert.Contains(t, text, "1 missing")
	assert.Contains(t, text, "broken: missing /bin/broken")
	assert.Contains(t, text, "untracked")
	assert.Contains(t, text, "error: unreadable")
}

func TestSimpleUI_DisplayUninstallReport(t *testing.T) {
	t.Run("success with a failed removal", func(t *testing.T) {
		var out bytes.Buffer
		NewSimpleUI(&out).DisplayUninstallReport(context.Background(), m.UninstallReport{
			Directory: "/p/foo",
			Success:   true,
			Removals: []m.FileRemoval{
				{Path: "/p/foo/a.py"},
				{Path: "/bin/fooctl", Err: errors.New("permission denied")},
			},
		})

		text := out.String()
		assert.Contains(t, text, "Uninstalled foo (1 of 2 tracked files removed)")
		assert.Contains(t, text, "warning: could not remove /bin/fooctl: permission denied")
	})

	t.Run("not installed", func(t *testing.T) {
		var out bytes.Buffer
		NewSimpleUI(&out).DisplayUninstallReport(context.Background(), m.UninstallReport{
			Message: "foo is not installed",
		})

		assert.Equal(t, "warning: foo is not installed\n", out.String())
	})
}
