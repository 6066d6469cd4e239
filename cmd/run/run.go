package run

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
)

var command = &cobra.Command{
	Use:   "run {cmdline}",
	Short: `Run cmdline. Accept the whole cmdline as single arg.`,
	Long: `Run cmdline. Accept the whole cmdline as single arg, e.g.:
  zfstool run "plan --raid mirror --raid-group-size 2 /dev/sda /dev/sdb"`,
	DisableFlagParsing: true,
	Args:               cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:               run,
}

func init() {
	cmd.RootCmd.AddCommand(command)
}

func run(command *cobra.Command, args []string) error {
	cmdline := args[0]
	cmdlineArgs, err := shlex.Split(cmdline)
	if err != nil {
		return fmt.Errorf("failed to parse cmdline '%s': %v", cmdline, err)
	}
	if len(cmdlineArgs) == 0 {
		return fmt.Errorf("empty cmdline")
	}
	if cmdlineArgs[0] == command.Name() {
		return fmt.Errorf("recursive run is NOT supported")
	}
	fmt.Fprintf(command.ErrOrStderr(), "Run cmdline: %v\n", cmdlineArgs)
	defer cmd.RootCmd.SetArgs(nil)
	cmd.RootCmd.SetArgs(cmdlineArgs)
	return cmd.RootCmd.ExecuteContext(command.Context())
}
