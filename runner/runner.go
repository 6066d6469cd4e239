// Package runner executes the zpool / zfs command lines built by zfstool.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	log "github.com/sirupsen/logrus"
)

var ErrCommandFailed = errors.New("command failed")

// CommandError is returned when an external command can not be started or exits non-zero.
type CommandError struct {
	Args     []string
	ExitCode int // -1 if the command did not run to completion
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %s exited with status %d", ErrCommandFailed, Format(e.Args), e.ExitCode)
	if e.Err != nil && e.ExitCode < 0 {
		msg += ": " + e.Err.Error()
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrCommandFailed, e.Err}
	}
	return []error{ErrCommandFailed}
}

// Command is one external program invocation. Args[0] is the program.
type Command struct {
	Args []string
	// Fed to the program as stdin. If nil, the program inherits os.Stdin.
	Stdin io.Reader
}

func NewCommand(args ...string) *Command {
	return &Command{Args: args}
}

func (c *Command) String() string {
	return Format(c.Args)
}

// Format renders argv as a shell command line.
func Format(args []string) string {
	return shellquote.Join(args...)
}

// Executor starts a command and waits for it.
type Executor interface {
	Execute(ctx context.Context, cmd *Command, stdout io.Writer, stderr io.Writer) (exitCode int, err error)
}

// Recorder is notified of every command that was actually executed.
type Recorder interface {
	Record(args []string, exitCode int, err error)
}

type Runner struct {
	Executor Executor
	// Print commands instead of executing side-effecting ones.
	Simulate bool
	// Echo every command to Out before it runs.
	Verbose bool
	// Where simulated and echoed commands are printed.
	Out      io.Writer
	Stdout   io.Writer
	Stderr   io.Writer
	Recorder Recorder
}

func New(simulate bool, verbose bool) *Runner {
	return &Runner{
		Executor: &ExecExecutor{},
		Simulate: simulate,
		Verbose:  verbose,
		Out:      os.Stdout,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Run executes a side-effecting command with its output passed through.
// In simulate mode it only prints the command line.
func (r *Runner) Run(ctx context.Context, cmd *Command) error {
	if r.Simulate {
		fmt.Fprintf(r.Out, "%s\n", cmd)
		return nil
	}
	tail := &bytes.Buffer{}
	return r.execute(ctx, cmd, r.Stdout, io.MultiWriter(r.Stderr, tail), tail)
}

// RunAll runs cmds in order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, cmds ...*Command) error {
	for _, cmd := range cmds {
		if err := r.Run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Output executes a read-only query and returns its stdout. It runs in simulate mode too.
func (r *Runner) Output(ctx context.Context, cmd *Command) ([]byte, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := r.execute(ctx, cmd, stdout, stderr, stderr)
	return stdout.Bytes(), err
}

func (r *Runner) execute(ctx context.Context, cmd *Command, stdout io.Writer, stderr io.Writer,
	stderrTail *bytes.Buffer) error {
	if len(cmd.Args) == 0 {
		return &CommandError{ExitCode: -1, Err: errors.New("empty command")}
	}
	if r.Verbose {
		fmt.Fprintf(r.Out, "+ %s\n", cmd)
	}
	log.Infof("Run: %s", cmd)
	exitCode, err := r.Executor.Execute(ctx, cmd, stdout, stderr)
	if r.Recorder != nil {
		r.Recorder.Record(cmd.Args, exitCode, err)
	}
	if err != nil || exitCode != 0 {
		log.Debugf("Command %s failed: code=%d, err=%v", cmd, exitCode, err)
		return &CommandError{
			Args:     cmd.Args,
			ExitCode: exitCode,
			Stderr:   lastLines(stderrTail.String(), 5),
			Err:      err,
		}
	}
	return nil
}

func lastLines(str string, n int) string {
	lines := strings.Split(strings.TrimRight(str, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
