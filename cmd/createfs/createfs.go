package createfs

import (
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "create-zfs-filesystem {pool} {name}",
	Short: "Create filesystem {pool}/{name}.",
	Long: `Create filesystem {pool}/{name}.
It is created with setuid=off, devices=off and, unless --exec, exec=off.
Unless --nomount, it is mounted at /{pool}/{name}.
With --nfs-subnet, it is also exported via NFS to the subnet (see "zfs-set-sharenfs").`,
	Args: cobra.MatchAll(cobra.ExactArgs(2), cobra.OnlyValidArgs),
	RunE: createfs,
}

var (
	simulate    = false
	encrypt     = false
	exec        = false
	nomount     = false
	nfsSubnet   = ""
	reservation = ""
)

func init() {
	command.Flags().BoolVarP(&simulate, "simulate", "", false, constants.HELP_SIMULATE)
	command.Flags().BoolVarP(&encrypt, "encrypt", "", false,
		"Encrypt the filesystem with a passphrase. zfs prompts for it on the terminal")
	command.Flags().BoolVarP(&exec, "exec", "", false, "Allow execution of programs on the filesystem")
	command.Flags().BoolVarP(&nomount, "nomount", "", false, "Do not set a mountpoint")
	command.Flags().StringVarP(&nfsSubnet, "nfs-subnet", "", "", `Export the filesystem read-write to this subnet, e.g. "10.0.0.0/24"`)
	command.Flags().StringVarP(&reservation, "reservation", "", "", `Reserved space, e.g. "10G"`)
	cmd.RootCmd.AddCommand(command)
}

func createfs(command *cobra.Command, args []string) error {
	pool := args[0]
	name := args[1]
	filesystem, err := zpool.Filesystem(pool, name)
	if err != nil {
		return err
	}
	create, err := zpool.FilesystemCreateArgs(zpool.FilesystemOptions{
		Pool:        pool,
		Name:        name,
		Encrypt:     encrypt,
		Exec:        exec,
		NoMount:     nomount,
		Reservation: reservation,
	})
	if err != nil {
		return err
	}
	commands := []*runner.Command{runner.NewCommand(create...)}
	if nfsSubnet != "" {
		share, err := zpool.ShareNfsArgs(filesystem, nfsSubnet, false, false)
		if err != nil {
			return err
		}
		commands = append(commands, runner.NewCommand(share...))
	}
	return common.NewRunner(command, simulate).RunAll(command.Context(), commands...)
}
