package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecExecutor runs commands as child processes.
type ExecExecutor struct{}

func (e *ExecExecutor) Execute(ctx context.Context, cmd *Command, stdout io.Writer, stderr io.Writer) (int, error) {
	execCmd := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	if cmd.Stdin != nil {
		execCmd.Stdin = cmd.Stdin
	} else {
		execCmd.Stdin = os.Stdin
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	err := execCmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() >= 0 {
		return ee.ExitCode(), nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	return -1, err
}
