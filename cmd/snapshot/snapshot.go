package snapshot

import (
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "create-zfs-filesystem-snapshot {pool/filesystem}",
	Short: "Snapshot a filesystem as {pool/filesystem}@__{unix-timestamp}.",
	Long:  `Snapshot a filesystem as {pool/filesystem}@__{unix-timestamp}.`,
	Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:  snapshot,
}

var (
	simulate = false
)

func init() {
	command.Flags().BoolVarP(&simulate, "simulate", "", false, constants.HELP_SIMULATE)
	cmd.RootCmd.AddCommand(command)
}

func snapshot(command *cobra.Command, args []string) error {
	snap, err := zpool.SnapshotArgs(args[0], common.Now())
	if err != nil {
		return err
	}
	return common.NewRunner(command, simulate).Run(command.Context(), runner.NewCommand(snap...))
}
