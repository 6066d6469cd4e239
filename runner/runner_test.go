package runner_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakeogh/zfstool/runner"
)

type fakeExecutor struct {
	calls  [][]string
	stdin  []string
	codes  map[string]int
	stdout string
	stderr string
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd *runner.Command, stdout io.Writer,
	stderr io.Writer) (int, error) {
	f.calls = append(f.calls, cmd.Args)
	if cmd.Stdin != nil {
		data, _ := io.ReadAll(cmd.Stdin)
		f.stdin = append(f.stdin, string(data))
	}
	io.WriteString(stdout, f.stdout)
	io.WriteString(stderr, f.stderr)
	return f.codes[cmd.Args[0]], nil
}

type record struct {
	args []string
	code int
}

type fakeRecorder struct {
	records []record
}

func (f *fakeRecorder) Record(args []string, exitCode int, err error) {
	f.records = append(f.records, record{args, exitCode})
}

func newRunner(executor runner.Executor) (*runner.Runner, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &runner.Runner{
		Executor: executor,
		Out:      out,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}, out
}

func TestRunSimulate(t *testing.T) {
	executor := &fakeExecutor{}
	r, out := newRunner(executor)
	r.Simulate = true
	err := r.Run(context.Background(), runner.NewCommand("zfs", "set", "sharenfs=rw=10.0.0.0/24", "tank/my home"))
	require.NoError(t, err)
	assert.Empty(t, executor.calls)
	assert.Equal(t, "zfs set sharenfs=rw=10.0.0.0/24 'tank/my home'\n", out.String())
}

func TestRunFailure(t *testing.T) {
	executor := &fakeExecutor{
		codes:  map[string]int{"zpool": 1},
		stderr: "line1\nline2\ncannot create 'tank': pool already exists\n",
	}
	recorder := &fakeRecorder{}
	r, _ := newRunner(executor)
	r.Recorder = recorder
	err := r.RunAll(context.Background(),
		runner.NewCommand("modprobe", "zfs"),
		runner.NewCommand("zpool", "create", "tank", "/dev/sda"),
		runner.NewCommand("zfs", "create", "tank/home"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrCommandFailed)
	var cmdErr *runner.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Equal(t, []string{"zpool", "create", "tank", "/dev/sda"}, cmdErr.Args)
	assert.Contains(t, err.Error(), "pool already exists")
	assert.Len(t, executor.calls, 2, "stops at first failure")
	require.Len(t, recorder.records, 2)
	assert.Equal(t, 1, recorder.records[1].code)
}

func TestRunStdinAndVerbose(t *testing.T) {
	executor := &fakeExecutor{}
	r, out := newRunner(executor)
	r.Verbose = true
	cmd := runner.NewCommand("zpool", "create", "tank", "/dev/sda")
	cmd.Stdin = strings.NewReader("secret")
	require.NoError(t, r.Run(context.Background(), cmd))
	assert.Equal(t, []string{"secret"}, executor.stdin)
	assert.Equal(t, "+ zpool create tank /dev/sda\n", out.String())
}

func TestOutputRunsInSimulate(t *testing.T) {
	executor := &fakeExecutor{stdout: "tank\t/tank\n"}
	r, _ := newRunner(executor)
	r.Simulate = true
	output, err := r.Output(context.Background(), runner.NewCommand("zfs", "get", "mountpoint"))
	require.NoError(t, err)
	assert.Equal(t, "tank\t/tank\n", string(output))
}

func TestEmptyCommand(t *testing.T) {
	r, _ := newRunner(&fakeExecutor{})
	assert.ErrorIs(t, r.Run(context.Background(), &runner.Command{}), runner.ErrCommandFailed)
}

func TestExecExecutor(t *testing.T) {
	r := runner.New(false, false)
	stderr := &bytes.Buffer{}
	r.Stdout = io.Discard
	r.Stderr = stderr
	err := r.Run(context.Background(), runner.NewCommand("sh", "-c", "echo oops >&2; exit 3"))
	var cmdErr *runner.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "oops", cmdErr.Stderr)
	assert.Equal(t, "oops\n", stderr.String())

	cmd := runner.NewCommand("cat")
	cmd.Stdin = strings.NewReader("passphrase")
	output, err := r.Output(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "passphrase", string(output))

	_, err = r.Output(context.Background(), runner.NewCommand("/nonexistent/zfstool-test-binary"))
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
}
