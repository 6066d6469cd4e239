package versioncmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/topology"
	"github.com/jakeogh/zfstool/version"
	"github.com/jakeogh/zfstool/zpool"
)

var command = &cobra.Command{
	Use:   "version",
	Short: "Display zfstool version.",
	Long:  `Display zfstool version.`,
	Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE:  versioncmd,
}

func init() {
	cmd.RootCmd.AddCommand(command)
}

func versioncmd(command *cobra.Command, args []string) error {
	output := command.OutOrStdout()
	fmt.Fprintf(output, "zfstool %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(output, "- commit: %s\n", version.Commit)
	}
	fmt.Fprintf(output, "- os/type: %s\n", runtime.GOOS)
	fmt.Fprintf(output, "- os/arch: %s\n", runtime.GOARCH)
	fmt.Fprintf(output, "- go/version: %s\n", runtime.Version())
	fmt.Fprintf(output, "- raid/kinds: %v\n", topology.RaidKinds)
	fmt.Fprintf(output, "- zpool/features: %v\n", zpool.PoolFeatures)
	return nil
}
