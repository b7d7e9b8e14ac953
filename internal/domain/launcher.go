package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"upm.dev/pkg/upm/internal/adapter"
)

const launcherMode = 0o755

const launcherHeader = "#!/bin/sh\n# Generated by upm. Reinstalling the package overwrites this file.\n"

// LauncherGenerator writes the executables declared by a package into a bin
// directory. Both methods return the absolute paths they wrote.
type LauncherGenerator interface {
	// MakeShellLauncher writes a script that execs argv.
	MakeShellLauncher(name string, argv []string, outputDir string) ([]string, error)
	// MakeEntrypointLauncher writes a script that runs entryFile with the
	// host interpreter. localDir is empty for global installs.
	MakeEntrypointLauncher(name, entryFile, localDir, outputDir string) ([]string, error)
}

type shLauncherGenerator struct {
	fs          adapter.FSAdapter
	interpreter string
	modulePath  string
}

// NewLauncherGenerator returns a generator of POSIX sh launchers. modulePath
// is prepended to PYTHONPATH by entrypoint launchers.
func NewLauncherGenerator(fs adapter.FSAdapter, interpreter, modulePath string) LauncherGenerator {
	return &shLauncherGenerator{fs: fs, interpreter: interpreter, modulePath: modulePath}
}

func (g *shLauncherGenerator) MakeShellLauncher(name string, argv []string, outputDir string) ([]string, error) {
	if len(argv) == 0 {
		return nil, errors.New("launcher " + name + ": empty command")
	}

	return g.write(name, "exec "+shellquote.Join(argv...)+"\n", outputDir)
}

func (g *shLauncherGenerator) MakeEntrypointLauncher(name, entryFile, localDir, outputDir string) ([]string, error) {
	var b strings.Builder

	if localDir != "" {
		fmt.Fprintf(&b, "%s=%s\nexport %s\n", adapter.LocalDirEnv, shellquote.Join(localDir), adapter.LocalDirEnv)
	} else {
		fmt.Fprintf(&b, "unset %s\n", adapter.LocalDirEnv)
	}

	if g.modulePath != "" {
		fmt.Fprintf(&b, "PYTHONPATH=%s${PYTHONPATH:+%c$PYTHONPATH}\nexport PYTHONPATH\n",
			shellquote.Join(g.modulePath), filepath.ListSeparator)
	}

	fmt.Fprintf(&b, "exec %s \"$@\"\n", shellquote.Join(g.interpreter, entryFile))

	return g.write(name, b.String(), outputDir)
}

func (g *shLauncherGenerator) write(name, body, outputDir string) ([]string, error) {
	if err := g.fs.MkdirAll(outputDir); err != nil {
		return nil, fmt.Errorf("create %s: %w", outputDir, err)
	}

	target, err := filepath.Abs(filepath.Join(outputDir, name))
	if err != nil {
		return nil, err
	}

	if err := g.fs.WriteFile(target, []byte(launcherHeader+body), launcherMode); err != nil {
		return nil, fmt.Errorf("write launcher %s: %w", target, err)
	}

	// WriteFile keeps the mode of a file it overwrites.
	if err := g.fs.Chmod(target, launcherMode); err != nil {
		return nil, fmt.Errorf("chmod launcher %s: %w", target, err)
	}

	return []string{target}, nil
}
