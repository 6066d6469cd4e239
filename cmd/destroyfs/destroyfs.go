package destroyfs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "zfs-filesystem-destroy {pool} {name}",
	Short: "Destroy filesystem {pool}/{name}.",
	Long: `Destroy filesystem {pool}/{name}.
It asks for confirmation unless --yes. Snapshots and children are NOT destroyed,
zfs refuses to destroy a filesystem that has them.`,
	Args: cobra.MatchAll(cobra.ExactArgs(2), cobra.OnlyValidArgs),
	RunE: destroyfs,
}

var (
	simulate = false
	yes      = false
)

func init() {
	command.Flags().BoolVarP(&simulate, "simulate", "", false, constants.HELP_SIMULATE)
	command.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.RootCmd.AddCommand(command)
}

func destroyfs(command *cobra.Command, args []string) error {
	destroy, err := zpool.DestroyArgs(args[0], args[1])
	if err != nil {
		return err
	}
	filesystem := destroy[len(destroy)-1]
	if !simulate && !yes {
		common.Warn(command.ErrOrStderr(), "WARNING: This will DESTROY ALL DATA in %s", filesystem)
		if !common.Confirm(fmt.Sprintf("Destroy %s?", filesystem)) {
			return fmt.Errorf("abort")
		}
	}
	return common.NewRunner(command, simulate).Run(command.Context(), runner.NewCommand(destroy...))
}
