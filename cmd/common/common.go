package common

import (
	"fmt"
	"io"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/constants"
	"github.com/jakeogh/zfstool/device"
	"github.com/jakeogh/zfstool/journal"
	"github.com/jakeogh/zfstool/passphrase"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/topology"
	"github.com/jakeogh/zfstool/util"
)

// Collaborators of the commands. Tests replace them.
var (
	Executor         runner.Executor  = &runner.ExecExecutor{}
	Inspector        device.Inspector = device.NewLocal()
	PromptPassphrase                  = passphrase.Prompt
	Confirm                           = confirm
	Now                               = time.Now
)

// NewRunner returns a runner writing to the command's output streams.
// Executed (not simulated) commands are recorded in the journal unless history is disabled.
func NewRunner(command *cobra.Command, simulate bool) *runner.Runner {
	r := runner.New(simulate, config.VerboseLevel > 0)
	r.Executor = Executor
	r.Out = command.OutOrStdout()
	r.Stdout = command.OutOrStdout()
	r.Stderr = command.ErrOrStderr()
	if !simulate && config.Get().HistoryEnabled() {
		r.Recorder = journal.New(config.HistoryFile())
	}
	return r
}

// LoadZfsModule runs "modprobe zfs".
func LoadZfsModule(command *cobra.Command, r *runner.Runner) error {
	if err := r.Run(command.Context(), runner.NewCommand("modprobe", constants.ZFS_KERNEL_MODULE)); err != nil {
		return fmt.Errorf("failed to load zfs kernel module: %w", err)
	}
	return nil
}

// ResolveVdevs groups devices into the vdev layout of raid.
func ResolveVdevs(devices []string, raid string, groupSize int) (topology.VdevSpec, error) {
	kind, err := topology.ParseRaidKind(raid)
	if err != nil {
		return nil, err
	}
	vdevs, err := topology.Resolve(devices, kind, groupSize)
	if err != nil {
		return nil, err
	}
	log.Infof("vdevs: %s", vdevs.Describe())
	return vdevs, nil
}

// CheckDevices rejects partition names. Unless skipChecks, every device must also be
// an unmounted block device and, if sameSize, all devices must have the same size.
func CheckDevices(devices []string, skipChecks bool, sameSize bool) error {
	if err := device.CheckNames(devices); err != nil {
		return err
	}
	if skipChecks {
		return nil
	}
	if err := device.CheckUnused(Inspector, devices); err != nil {
		return err
	}
	if sameSize {
		size, err := device.CheckSameSize(Inspector, devices)
		if err != nil {
			return err
		}
		log.Infof("Device size: %s (%d Byte)", util.BytesSize(float64(size)), size)
	}
	return nil
}

// Warn prints a highlighted warning about a destructive operation.
func Warn(output io.Writer, format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprintf(output, format+"\n", args...)
}

func confirm(message string) bool {
	ok := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false
	}
	return ok
}
