package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LocalDirEnv names the variable that carries the local resolution directory
// to scripts run by the host runtime.
const LocalDirEnv = "UPM_LOCAL_DIR"

// RunOptions configures a host runtime invocation.
type RunOptions struct {
	// Dir is the working directory of the process.
	Dir string
	// LocalDir is exported as UPM_LOCAL_DIR when non-empty.
	LocalDir string
	// ModulePath is prepended to PYTHONPATH when non-empty.
	ModulePath string
	Args       []string
}

// RuntimeAdapter runs a script through the host runtime.
type RuntimeAdapter interface {
	// Run executes script and returns the combined stdout/stderr output.
	Run(ctx context.Context, script string, opts RunOptions) (output string, err error)
}

// LocalRuntimeAdapter runs scripts with a local Python interpreter.
type LocalRuntimeAdapter struct {
	interpreter string
}

// NewLocalRuntimeAdapter constructs a LocalRuntimeAdapter for interpreter.
func NewLocalRuntimeAdapter(interpreter string) *LocalRuntimeAdapter {
	return &LocalRuntimeAdapter{interpreter: interpreter}
}

// Run executes the interpreter against script.
func (a *LocalRuntimeAdapter) Run(ctx context.Context, script string, opts RunOptions) (string, error) {
	args := append([]string{script}, opts.Args...)

	// #nosec G204 - interpreter comes from configuration, script from an installed package
	cmd := exec.CommandContext(ctx, a.interpreter, args...)
	cmd.Dir = opts.Dir
	cmd.Env = runtimeEnv(os.Environ(), opts)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return output.String(), fmt.Errorf("%s %s: %w", a.interpreter, script, err)
	}

	return output.String(), nil
}

func runtimeEnv(base []string, opts RunOptions) []string {
	env := make([]string, 0, len(base)+2)

	pythonPath := ""

	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, LocalDirEnv+"="):
			continue
		case strings.HasPrefix(kv, "PYTHONPATH="):
			pythonPath = strings.TrimPrefix(kv, "PYTHONPATH=")
			continue
		}

		env = append(env, kv)
	}

	if opts.LocalDir != "" {
		env = append(env, LocalDirEnv+"="+opts.LocalDir)
	}

	if opts.ModulePath != "" {
		if pythonPath != "" {
			pythonPath = opts.ModulePath + string(filepath.ListSeparator) + pythonPath
		} else {
			pythonPath = opts.ModulePath
		}
	}

	if pythonPath != "" {
		env = append(env, "PYTHONPATH="+pythonPath)
	}

	return env
}
