package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ForeignInstaller installs third-party runtime dependencies into an
// isolated directory.
type ForeignInstaller interface {
	Install(ctx context.Context, targetDir string, requirements []string) error
}

// PipAdapter installs Python requirements with `python -m pip install --target`.
type PipAdapter struct {
	interpreter string
}

// NewPipAdapter constructs a PipAdapter for interpreter.
func NewPipAdapter(interpreter string) *PipAdapter {
	return &PipAdapter{interpreter: interpreter}
}

// Install runs pip once for all requirements.
func (a *PipAdapter) Install(ctx context.Context, targetDir string, requirements []string) error {
	if len(requirements) == 0 {
		return nil
	}

	args := append([]string{"-m", "pip", "install", "--target", targetDir}, requirements...)

	// #nosec G204 - interpreter comes from configuration
	cmd := exec.CommandContext(ctx, a.interpreter, args...)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pip install %s failed: %w\n%s",
			strings.Join(requirements, " "), err, strings.TrimSpace(output.String()))
	}

	return nil
}
