package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"upm.dev/pkg/upm/internal/domain"
	m "upm.dev/pkg/upm/internal/model"
)

var upgradeFlag bool

var registryFlag string

const installLongDescription = `Install packages.

Each argument is one of:
  - a directory containing a package.json or package.yaml
  - a tar archive (optionally gzip-compressed) of such a directory
  - a registry reference, name or name@selector (e.g. foo@^1.2.0)

Without arguments the dependencies of the package in the current directory
are installed. Packages that are already installed are left untouched
unless --upgrade is given.`

// installCmd represents the install command.
var installCmd = newInstallCmd()

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [package|directory|archive...]",
		Short: "Install packages",
		Long:  installLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&upgradeFlag, upgradeFlagName, "U", false, "uninstall and reinstall packages that are already installed")
	cmd.Flags().StringVar(&registryFlag, registryFlagName, viper.GetString(registryURLKey), "base URL of the package registry")
	bindFlagToConfig(cmd.Flags().Lookup(registryFlagName), registryURLKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	dirs, err := activeDirs(globalFlag)
	if err != nil {
		return err
	}

	roots, err := searchRoots(dirs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ui := uiFactory(cmd)

	if err := ui.Start(ctx); err != nil {
		return err
	}

	defer ui.Close(ctx)

	installer := installerFactory(domain.Options{
		Upgrade:     upgradeFlag,
		Dirs:        dirs,
		SearchRoots: roots,
		Interpreter: viper.GetString(pythonInterpreterKey),
	}, ui)

	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		ok, err := installer.InstallDependencies(ctx, wd)

		return installFailure(wd, ok, err)
	}

	for _, arg := range args {
		ok, err := installArg(ctx, installer, arg)
		if err := installFailure(arg, ok, err); err != nil {
			return err
		}
	}

	return nil
}

// installArg dispatches arg to the directory, archive or registry install.
func installArg(ctx context.Context, installer domain.Installer, arg string) (bool, error) {
	info, err := os.Stat(arg)
	if err != nil {
		ref := m.ParseRef(arg)
		slog.Debug("installing from registry", "ref", ref.String())

		return installer.InstallFromRegistry(ctx, ref.Name, ref.Selector)
	}

	path, err := filepath.Abs(arg)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", arg, err)
	}

	if info.IsDir() {
		return installer.InstallFromDirectory(ctx, path, nil)
	}

	return installer.InstallFromArchive(ctx, path, nil)
}

// installFailure converts an engine result into the command's error.
func installFailure(ref string, ok bool, err error) error {
	if err == nil && ok {
		return nil
	}

	slog.Error("install failed", "ref", ref, "error", err)

	return &m.InstallError{Ref: ref, Err: err}
}
