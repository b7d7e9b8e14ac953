package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "(devel)"

// buildInfo is the subset of the embedded build information shown by version.
type buildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Modified  bool
}

func readBuildInfo() (buildInfo, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildInfo{}, false
	}

	return parseBuildInfo(info), true
}

func parseBuildInfo(info *debug.BuildInfo) buildInfo {
	b := buildInfo{Version: info.Main.Version, GoVersion: info.GoVersion}
	if b.Version == "" {
		b.Version = unknownVersion
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}

	return b
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Print the upm release, the Go toolchain it was built with and, for builds
from a source checkout, the VCS revision.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := readBuildInfo()
			if !ok {
				cmd.Println("upm version: unknown")
				return
			}

			cmd.Printf("upm %s (%s)\n", info.Version, info.GoVersion)

			if info.Revision != "" {
				revision := info.Revision
				if info.Modified {
					revision += "+dirty"
				}

				cmd.Printf("revision %s\n", revision)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
