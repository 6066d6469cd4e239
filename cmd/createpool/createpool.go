package createpool

import (
	"bytes"
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
	Use:         "create-zfs-pool --pool-name {pool} --raid {raid} --raid-group-size {n} {device}...",
	Short:       "Create a data pool on whole block devices.",
	Long: `Create a data pool on whole block devices.
` + constants.HELP_DEVICE_ARGS + `.

` + constants.HELP_RAID_GROUP_SIZE + `.

Unless --skip-checks, every device must be an unmounted block device and all devices must have the same size.
--skip-checks is only allowed together with --simulate, which implies it.
With --encrypt, the passphrase is prompted on the terminal and fed to zpool.`,
	Args: cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
	RunE: createpool,
}

var (
	force         = false
	simulate      = false
	skipChecks    = false
	encrypt       = false
	raid          = ""
	raidGroupSize = 0
	poolName      = ""
	ashift        = 0
)

func init() {
	command.Flags().BoolVarP(&force, "force", "", false, `Pass "-f" to zpool create`)
	command.Flags().BoolVarP(&simulate, "simulate", "", false, constants.HELP_SIMULATE)
	command.Flags().BoolVarP(&skipChecks, "skip-checks", "", false, "Skip block device, mount and size checks")
	command.Flags().BoolVarP(&encrypt, "encrypt", "", false, "Encrypt the pool with a passphrase (aes-256-gcm)")
	command.Flags().IntVarP(&raidGroupSize, "raid-group-size", "", 0, "Devices per redundancy group")
	command.Flags().StringVarP(&poolName, "pool-name", "", "", "Pool name")
	command.Flags().IntVarP(&ashift, "ashift", "", 0, constants.HELP_ASHIFT)
	cmd.AddEnumFlagP(command, &raid, "raid", "", common.RaidFlag)
	command.MarkFlagRequired("raid")
	command.MarkFlagRequired("raid-group-size")
	command.MarkFlagRequired("pool-name")
	cmd.RootCmd.AddCommand(command)
}

func createpool(command *cobra.Command, devices []string) error {
	if skipChecks && !simulate {
		return fmt.Errorf("--skip-checks requires --simulate")
	}
	poolAshift := ashift
	if !command.Flags().Changed("ashift") {
		poolAshift = int(config.Get().Ashift)
	}
	if err := zpool.ValidateAshift(poolAshift); err != nil {
		return err
	}
	if poolAshift != 0 {
		fmt.Fprintf(command.ErrOrStderr(), "using block size: %d (ashift=%d)\n", 1<<poolAshift, poolAshift)
	}
	if err := common.CheckDevices(devices, skipChecks || simulate, true); err != nil {
		return err
	}
	vdevs, err := common.ResolveVdevs(devices, raid, raidGroupSize)
	if err != nil {
		return err
	}
	args, err := zpool.CreateArgs(zpool.CreateOptions{
		Name:       poolName,
		Vdevs:      vdevs,
		Ashift:     poolAshift,
		Encrypt:    encrypt,
		Force:      force,
		Properties: config.Get().PoolProperties(),
	})
	if err != nil {
		return err
	}

	create := runner.NewCommand(args...)
	if encrypt && !simulate {
		passphrase, err := common.PromptPassphrase("zpool " + poolName)
		if err != nil {
			return err
		}
		create.Stdin = bytes.NewReader(append(passphrase, '\n'))
	}
	r := common.NewRunner(command, simulate)
	if err := common.LoadZfsModule(command, r); err != nil {
		return err
	}
	log.Debugf("zpool command: %s", create)
	return r.Run(command.Context(), create)
}
