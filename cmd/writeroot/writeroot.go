package writeroot

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/util"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "write-zfs-root-filesystem-on-devices --pool-name {pool} --mount-point {dir} --raid {raid} --raid-group-size {n} {device}...",
	Short: "Create a bootable root pool below an alternate root.",
	Long: `Create a bootable root pool below an alternate root (e.g. /mnt/gentoo).
` + constants.HELP_DEVICE_ARGS + `.

It runs, in order:
  zpool create -f ... -o cachefile={cachefile} ... -m none -R {mount-point} {pool} {vdevs}
  zfs create -o mountpoint=none {pool}/ROOT
  zfs create -o mountpoint=/ {pool}/ROOT/{boot-environment}
  zpool set bootfs={pool}/ROOT/{boot-environment} {pool}
  mkdir -p {mount-point}/etc/zfs
  cp {cachefile} {mount-point}/etc/zfs/zpool.cache
and stops at the first failure. Nothing is rolled back.`,
	Args: cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
	RunE: writeroot,
}

var (
	force           = false
	simulate        = false
	raid            = ""
	raidGroupSize   = 0
	poolName        = ""
	mountPoint      = ""
	bootEnvironment = ""
)

func init() {
	command.Flags().BoolVarP(&force, "force", "", false, `Do not ask for confirmation. zpool create always runs with "-f"`)
	command.Flags().BoolVarP(&simulate, "simulate", "", false, constants.HELP_SIMULATE)
	command.Flags().IntVarP(&raidGroupSize, "raid-group-size", "", 0, "Devices per redundancy group")
	command.Flags().StringVarP(&poolName, "pool-name", "", "", "Pool name")
	command.Flags().StringVarP(&mountPoint, "mount-point", "", "", "Alternate root of the new system. Must be an existing dir")
	command.Flags().StringVarP(&bootEnvironment, "boot-environment", "", "",
		`Name of the root dataset below {pool}/ROOT. Default: "bootEnvironment" of config file, or "gentoo"`)
	cmd.AddEnumFlagP(command, &raid, "raid", "", common.RaidFlag)
	command.MarkFlagRequired("raid")
	command.MarkFlagRequired("raid-group-size")
	command.MarkFlagRequired("pool-name")
	command.MarkFlagRequired("mount-point")
	command.MarkFlagDirname("mount-point")
	cmd.RootCmd.AddCommand(command)
}

func writeroot(command *cobra.Command, devices []string) error {
	if stat, err := os.Stat(mountPoint); err != nil || !stat.IsDir() {
		return fmt.Errorf("mount point %q is not an existing dir", mountPoint)
	}
	if err := common.CheckDevices(devices, simulate, false); err != nil {
		return err
	}
	vdevs, err := common.ResolveVdevs(devices, raid, raidGroupSize)
	if err != nil {
		return err
	}
	be := bootEnvironment
	if be == "" {
		be = config.Get().BootEnvironment
	}
	commands, err := zpool.RootCommands(zpool.RootOptions{
		Name:            poolName,
		Vdevs:           vdevs,
		MountPoint:      mountPoint,
		BootEnvironment: be,
		Properties:      config.Get().PoolProperties(),
	})
	if err != nil {
		return err
	}
	if !simulate && !force {
		common.Warn(command.ErrOrStderr(), "WARNING: This will DESTROY ALL DATA on %v", vdevs.Devices())
		if !common.Confirm(fmt.Sprintf("Create root pool %s on %d device(s)?", poolName, len(vdevs.Devices()))) {
			return fmt.Errorf("abort")
		}
	}

	r := common.NewRunner(command, simulate)
	if err := common.LoadZfsModule(command, r); err != nil {
		return err
	}
	return r.RunAll(command.Context(), util.Map(commands, func(args []string) *runner.Command {
		return runner.NewCommand(args...)
	})...)
}
