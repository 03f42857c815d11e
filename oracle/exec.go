package oracle

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/ZaguanLabs/goident"
)

// CommandOracle implements Oracle by running an external command with the
// prompt appended as the final argument and reading its standard output.
// A typical configuration is an AI CLI in print mode, e.g.
//
//	oracle.NewCommandOracle("claude", "--print")
type CommandOracle struct {
	command string
	args    []string
}

// NewCommandOracle creates an oracle backed by an external command.
func NewCommandOracle(command string, args ...string) *CommandOracle {
	return &CommandOracle{
		command: command,
		args:    args,
	}
}

// Invoke runs the command. Context expiry kills the process; a non-zero
// exit is an invocation failure. Both surface as OracleError, with stderr
// attached when available.
func (o *CommandOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	args := make([]string, 0, len(o.args)+1)
	args = append(args, o.args...)
	args = append(args, prompt)

	cmd := exec.CommandContext(ctx, o.command, args...) // #nosec G204 - command is caller-configured
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Report the timeout rather than the generic "signal: killed"
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", &goident.OracleError{
				Message:   "command timed out",
				Cause:     ctxErr,
				Retryable: true,
			}
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &goident.OracleError{
				Message: "command exited non-zero: " + strings.TrimSpace(stderr.String()),
				Cause:   err,
			}
		}

		return "", &goident.OracleError{
			Message: "command failed to start",
			Cause:   err,
		}
	}

	return stdout.String(), nil
}

// Verify CommandOracle implements Oracle
var _ Oracle = (*CommandOracle)(nil)
