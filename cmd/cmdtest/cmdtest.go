// Package cmdtest runs zfstool commands in tests against fake devices and a fake executor.
package cmdtest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/runner"
)

// Executor records commands instead of running them.
type Executor struct {
	Commands [][]string
	Stdins   []string
	// Exit code by program name.
	ExitCodes map[string]int
	// Stdout by program name.
	Outputs map[string]string
}

func (e *Executor) Execute(ctx context.Context, command *runner.Command, stdout io.Writer, stderr io.Writer) (int, error) {
	e.Commands = append(e.Commands, command.Args)
	stdin := ""
	if command.Stdin != nil {
		contents, _ := io.ReadAll(command.Stdin)
		stdin = string(contents)
	}
	e.Stdins = append(e.Stdins, stdin)
	program := command.Args[0]
	if output, ok := e.Outputs[program]; ok {
		fmt.Fprint(stdout, output)
	}
	if code := e.ExitCodes[program]; code != 0 {
		fmt.Fprintf(stderr, "%s: failed\n", program)
		return code, nil
	}
	return 0, nil
}

// Formatted returns the recorded command lines.
func (e *Executor) Formatted() []string {
	lines := []string{}
	for _, args := range e.Commands {
		lines = append(lines, runner.Format(args))
	}
	return lines
}

type Device struct {
	Size     int64
	Mounted  bool
	NotBlock bool
}

// Inspector serves devices from a map. Unknown devices are not block devices.
type Inspector map[string]Device

func (i Inspector) IsBlockSpecial(path string) (bool, error) {
	device, ok := i[path]
	return ok && !device.NotBlock, nil
}

func (i Inspector) Size(path string) (int64, error) {
	device, ok := i[path]
	if !ok {
		return 0, fmt.Errorf("%s: no such device", path)
	}
	return device.Size, nil
}

func (i Inspector) IsMounted(path string) (bool, error) {
	return i[path].Mounted, nil
}

// Setup installs fake collaborators and a config file path in a temp dir.
// It restores the real collaborators when the test ends.
func Setup(t *testing.T, inspector Inspector) *Executor {
	t.Helper()
	executor := &Executor{ExitCodes: map[string]int{}, Outputs: map[string]string{}}
	oldExecutor, oldInspector := common.Executor, common.Inspector
	oldPrompt, oldConfirm := common.PromptPassphrase, common.Confirm
	common.Executor = executor
	common.Inspector = inspector
	common.PromptPassphrase = func(label string) ([]byte, error) {
		return []byte("correct horse"), nil
	}
	common.Confirm = func(message string) bool {
		return false
	}
	config.SetConfigFile(filepath.Join(t.TempDir(), "zfstool.toml"))
	t.Cleanup(func() {
		common.Executor, common.Inspector = oldExecutor, oldInspector
		common.PromptPassphrase, common.Confirm = oldPrompt, oldConfirm
	})
	return executor
}

// Run executes zfstool with args and returns its combined output.
// Flags of the invoked command are reset to their defaults first.
func Run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if command, _, err := cmd.RootCmd.Find(args); err == nil {
		resetFlags(command)
	}
	output := &bytes.Buffer{}
	cmd.RootCmd.SetOut(output)
	cmd.RootCmd.SetErr(output)
	cmd.RootCmd.SetArgs(append([]string{"--config", config.ConfigFile}, args...))
	err := cmd.RootCmd.ExecuteContext(context.Background())
	return output.String(), err
}

func resetFlags(command *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		if flag.Value.Type() == "stringSlice" || flag.Value.Type() == "stringArray" {
			return
		}
		flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	command.Flags().VisitAll(reset)
	command.InheritedFlags().VisitAll(reset)
}

// Lines splits output into trimmed non-empty lines.
func Lines(output string) []string {
	lines := []string{}
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
