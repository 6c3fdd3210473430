package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// CommandRunner executes external commands.
type CommandRunner interface {
	OutputContext(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// OutputContext runs name with args and returns its stdout. The process is
// killed when ctx expires.
func (r *ExecRunner) OutputContext(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")
	// Do not wait on pipes held open by grandchildren once the process is gone.
	cmd.WaitDelay = 10 * time.Millisecond
	output, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("get command output %s: %w", name, ctxErr)
		}
		return nil, fmt.Errorf("get command output %s: %w", name, err)
	}
	return output, nil
}
