package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "upm.dev/pkg/upm/internal/model"
)

func TestUninstallCmd_Success(t *testing.T) {
	f := withFakes(t)
	wd := workDir(t)

	f.installer.EXPECT().Uninstall(mock.Anything, "foo").Return(m.UninstallReport{
		Directory: "/x/upm_packages/foo",
		Success:   true,
		Message:   "Uninstalled foo@1.0.0",
		Removals:  []m.FileRemoval{{Path: "/x/upm_packages/foo/a.py"}},
	}, nil)

	require.NoError(t, execute(t, "uninstall", "foo"))

	assert.Contains(t, f.out.String(), "Uninstalled foo@1.0.0")
	assert.False(t, f.opts.Upgrade)
	assert.Equal(t, m.LocalDirs(wd, defaultLocalPackagesDir), f.opts.Dirs)
}

func TestUninstallCmd_ReportsEveryMissingPackage(t *testing.T) {
	f := withFakes(t)
	workDir(t)

	f.installer.EXPECT().Uninstall(mock.Anything, "fo").
		Return(m.UninstallReport{Message: `no package "fo" installed; did you mean foo?`}, nil)
	f.installer.EXPECT().Uninstall(mock.Anything, "foo").
		Return(m.UninstallReport{Success: true, Message: "Uninstalled foo@1.0.0"}, nil)

	err := execute(t, "uninstall", "fo", "foo")
	require.EqualError(t, err, "1 of 2 packages could not be uninstalled")

	assert.Contains(t, f.out.String(), "did you mean foo?")
	assert.Contains(t, f.out.String(), "Uninstalled foo@1.0.0")
}

func TestUninstallCmd_RequiresName(t *testing.T) {
	withFakes(t)

	assert.Error(t, execute(t, "uninstall"))
}

func TestUninstallCmd_Global(t *testing.T) {
	f := withFakes(t)
	workDir(t)

	f.installer.EXPECT().Uninstall(mock.Anything, "foo").Return(m.UninstallReport{Success: true}, nil)

	require.NoError(t, execute(t, "uninstall", "--global", "foo"))
	assert.Equal(t, m.GlobalDirs(f.prefix), f.opts.Dirs)
}
