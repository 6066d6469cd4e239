package sharenfs

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "zfs-set-sharenfs {pool} {name} [subnet]",
	Short: "Export filesystem {pool}/{name} via NFS.",
	Long: `Export filesystem {pool}/{name} via NFS, read-write to subnet (e.g. "10.0.0.0/24").
Root of the clients keeps write access unless --no-root-write.
--off disables the export; subnet is not needed then.`,
	Args: cobra.MatchAll(cobra.RangeArgs(2, 3), cobra.OnlyValidArgs),
	RunE: sharenfs,
}

var (
	simulate    = false
	off         = false
	noRootWrite = false
)

func init() {
	command.Flags().BoolVarP(&simulate, "simulate", "", false, constants.HELP_SIMULATE)
	command.Flags().BoolVarP(&off, "off", "", false, "Disable NFS export")
	command.Flags().BoolVarP(&noRootWrite, "no-root-write", "", false, "Squash root of the clients (root_squash)")
	command.MarkFlagsMutuallyExclusive("off", "no-root-write")
	cmd.RootCmd.AddCommand(command)
}

func sharenfs(command *cobra.Command, args []string) error {
	subnet := ""
	if len(args) > 2 {
		subnet = args[2]
	} else if !off {
		return fmt.Errorf("subnet is required unless --off")
	}
	filesystem := args[0] + "/" + args[1]
	set, err := zpool.ShareNfsArgs(filesystem, subnet, noRootWrite, off)
	if err != nil {
		return err
	}
	r := common.NewRunner(command, simulate)
	if config.VerboseLevel > 0 {
		current, err := r.Output(command.Context(), runner.NewCommand("zfs", "get", "sharenfs", filesystem))
		if err != nil {
			log.Warnf("Failed to get current sharenfs of %s: %v", filesystem, err)
		} else {
			fmt.Fprintf(command.ErrOrStderr(), "%s", current)
		}
	}
	return r.Run(command.Context(), runner.NewCommand(set...))
}
