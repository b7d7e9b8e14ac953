// Package cmd provides the root command and CLI setup for upm.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"upm.dev/pkg/upm/internal/adapter"
	"upm.dev/pkg/upm/internal/controller"
	"upm.dev/pkg/upm/internal/domain"
	m "upm.dev/pkg/upm/internal/model"
)

// globalFlag selects the per-user prefix instead of the project's packages directory.
var globalFlag bool

var verboseFlag bool

// Dependency factories. Tests replace them with mocks.
var (
	uiFactory        = defaultUI
	installerFactory = defaultInstaller
	inventoryFactory = defaultInventory
)

const rootLongDescription = `upm installs packages into a project-local packages directory or, with
--global, into a per-user prefix.

Packages are directories carrying a package.json or package.yaml manifest.
They can be installed from a directory, a tar archive or the registry.
Every installed file is recorded so that uninstall removes exactly what
install wrote.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "upm",
		Short:        "Package manager for Python applications",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&globalFlag, globalFlagName, "g", false, "operate on the global prefix instead of the local packages directory")
	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "write debug output to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func defaultUI(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout))
}

func defaultInstaller(opts domain.Options, ui controller.UI) domain.Installer {
	interpreter := viper.GetString(pythonInterpreterKey)
	timeout := time.Duration(viper.GetInt64(registryTimeoutKey)) * time.Second

	return domain.NewInstaller(opts, domain.InstallerDeps{
		FS:        adapter.NewLocalFSAdapter(),
		Manifests: adapter.NewLocalManifestReader(),
		Registry:  adapter.NewHTTPRegistryAdapter(viper.GetString(registryURLKey), timeout),
		Archives:  adapter.NewTarArchiveAdapter(),
		Foreign:   adapter.NewPipAdapter(interpreter),
		Runtime:   adapter.NewLocalRuntimeAdapter(interpreter),
		UI:        ui,
	})
}

func defaultInventory(dirs m.Dirs) domain.Inventory {
	return domain.NewInventory(dirs, adapter.NewLocalFSAdapter(), adapter.NewLocalManifestReader(), viper.GetInt(checkParallelKey))
}

// activeDirs returns the absolute layout selected by --global.
func activeDirs(global bool) (m.Dirs, error) {
	var dirs m.Dirs

	if global {
		prefix, err := expandHome(viper.GetString(prefixKey))
		if err != nil {
			return m.Dirs{}, err
		}

		dirs = m.GlobalDirs(prefix)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return m.Dirs{}, fmt.Errorf("working directory: %w", err)
		}

		dirs = m.LocalDirs(wd, viper.GetString(localPackagesDirKey))
	}

	return dirs.Absolute()
}

// searchRoots lists the packages roots whose contents satisfy dependencies.
// Local installs also see globally installed packages.
func searchRoots(dirs m.Dirs) ([]string, error) {
	if dirs.Global() {
		return []string{dirs.Packages}, nil
	}

	global, err := activeDirs(true)
	if err != nil {
		return nil, err
	}

	return []string{dirs.Packages, global.Packages}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	return filepath.Join(home, path[1:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
