package checkmountpoints

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/runner"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "zfs-check-mountpoints",
	Short: "Check that every dataset is mounted at /{dataset}.",
	Long: `Check that every dataset is mounted at /{dataset}.
Datasets with mountpoint "none" or "legacy" are skipped. "-" is only accepted on snapshots.
All mismatches are printed. It exits with non-zero status if any was found.`,
	Args: cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE: checkmountpoints,
}

func init() {
	cmd.RootCmd.AddCommand(command)
}

func checkmountpoints(command *cobra.Command, args []string) error {
	r := common.NewRunner(command, false)
	output, err := r.Output(command.Context(), runner.NewCommand(zpool.MountpointsArgs...))
	if err != nil {
		return err
	}
	issues, checked, err := zpool.CheckMountpoints(string(output))
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Fprintf(command.OutOrStdout(), "%s\n", issue)
	}
	fmt.Fprintf(command.OutOrStdout(), "// %d datasets checked, %d mismatch(es)\n", checked, len(issues))
	if len(issues) > 0 {
		return fmt.Errorf("%w: %d dataset(s)", zpool.ErrMountpointMismatch, len(issues))
	}
	return nil
}
