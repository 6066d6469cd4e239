package shell

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/runner"
)

var Exec = &cobra.Command{
	Use:     "!",
	Aliases: []string{"exec"},
	Short:   "(shell only) Execute external program, e.g. \"! lsblk\" or \"! zpool status\".",
	Long:    `Execute external program. It is recorded in the history like any other executed command.`,
	Args:    cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(command *cobra.Command, args []string) error {
		return common.NewRunner(command, false).Run(command.Context(), runner.NewCommand(args...))
	},
}

var Exit = &cobra.Command{
	Use:   "exit",
	Short: "(shell only) Exit shell",
	Run: func(command *cobra.Command, args []string) {
		os.Exit(0)
	},
}
