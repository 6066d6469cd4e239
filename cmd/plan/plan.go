package plan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/topology"
	"github.com/jakeogh/zfstool/util"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "plan {--raid {raid} --raid-group-size {n} {device}... | --vdevs {spec}}",
	Short: "Show the vdev layout and zpool create command for devices.",
	Long: `Show the vdev layout and zpool create command for devices.
Devices are not inspected and nothing is executed.
` + constants.HELP_DEVICE_ARGS + `.

` + constants.HELP_RAID_GROUP_SIZE + `.

Instead of devices, an existing vdev spec can be given with --vdevs, e.g.:
  zfstool plan --vdevs "mirror /dev/sda /dev/sdb mirror /dev/sdc /dev/sdd"`,
	Args: cobra.MatchAll(cobra.ArbitraryArgs, cobra.OnlyValidArgs),
	RunE: plan,
}

var (
	raid          = ""
	raidGroupSize = 0
	poolName      = ""
	vdevSpec      = ""
	ashift        = 0
	encrypt       = false
	force         = false
)

func init() {
	command.Flags().IntVarP(&raidGroupSize, "raid-group-size", "", 0, "Devices per redundancy group")
	command.Flags().StringVarP(&poolName, "pool-name", "", "tank", "Pool name")
	command.Flags().StringVarP(&vdevSpec, "vdevs", "", "", "Use this vdev spec instead of grouping devices")
	command.Flags().IntVarP(&ashift, "ashift", "", 0, constants.HELP_ASHIFT)
	command.Flags().BoolVarP(&encrypt, "encrypt", "", false, "Show the command of an encrypted pool")
	command.Flags().BoolVarP(&force, "force", "", false, `Show the command with "-f"`)
	cmd.AddEnumFlagP(command, &raid, "raid", "", common.RaidFlag)
	command.MarkFlagsMutuallyExclusive("vdevs", "raid")
	command.MarkFlagsMutuallyExclusive("vdevs", "raid-group-size")
	cmd.RootCmd.AddCommand(command)
}

func plan(command *cobra.Command, devices []string) error {
	var vdevs topology.VdevSpec
	var err error
	if vdevSpec != "" {
		if len(devices) > 0 {
			return fmt.Errorf("--vdevs and device args are mutually exclusive")
		}
		vdevs, err = topology.Parse(vdevSpec)
	} else {
		if len(devices) == 0 || raid == "" {
			return fmt.Errorf("devices and --raid are required unless --vdevs is set")
		}
		if err = common.CheckDevices(devices, true, false); err == nil {
			vdevs, err = common.ResolveVdevs(devices, raid, raidGroupSize)
		}
	}
	if err != nil {
		return err
	}
	planAshift := ashift
	if !command.Flags().Changed("ashift") {
		planAshift = int(config.Get().Ashift)
	}
	args, err := zpool.CreateArgs(zpool.CreateOptions{
		Name:       poolName,
		Vdevs:      vdevs,
		Ashift:     planAshift,
		Encrypt:    encrypt,
		Force:      force,
		Properties: config.Get().PoolProperties(),
	})
	if err != nil {
		return err
	}
	PrintVdevs(command, vdevs)
	fmt.Fprintf(command.OutOrStdout(), "\nVdev spec: %s\n", vdevs)
	fmt.Fprintf(command.OutOrStdout(), "Command:\n%s\n", runner.Format(args))
	return nil
}

// PrintVdevs prints one row per group.
func PrintVdevs(command *cobra.Command, vdevs topology.VdevSpec) {
	output := command.OutOrStdout()
	fmt.Fprintf(output, "%-5s  %-8s  %-7s  %s\n", "Group", "Kind", "Devices", "List")
	for i, vdev := range vdevs {
		fmt.Fprintf(output, "%-5d  ", i+1)
		util.PrintStringInWidth(output, vdev.Kind.String(), 8, true)
		fmt.Fprintf(output, "  %-7d  %s\n", len(vdev.Devices), strings.Join(vdev.Devices, " "))
	}
	fmt.Fprintf(output, "// %d group(s), %d device(s)\n", len(vdevs), len(vdevs.Devices()))
}
