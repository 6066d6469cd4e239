package create

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd/configcmd"
	"github.com/jakeogh/zfstool/config"
)

var command = &cobra.Command{
	Use:   "create",
	Short: "Create initial config file.",
	Long: `Create initial config file from the example config.
It refuses to overwrite an existing config file.`,
	Args: cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE: create,
}

func init() {
	configcmd.Command.AddCommand(command)
}

func create(command *cobra.Command, args []string) error {
	fmt.Fprintf(command.OutOrStdout(), "Creating config file %s\n", config.ConfigFile)
	return config.CreateDefaultConfig()
}
