package show

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd/configcmd"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/util"
)

var command = &cobra.Command{
	Use:   "show [alias]...",
	Short: "Show effective config.",
	Long: `Show effective config, with defaults applied.
Without args, it shows the pool properties. Otherwise it shows the named aliases.
It prints output in toml format.`,
	Args: cobra.MatchAll(cobra.ArbitraryArgs, cobra.OnlyValidArgs),
	RunE: show,
}

func init() {
	configcmd.Command.AddCommand(command)
}

func show(command *cobra.Command, names []string) error {
	output := command.OutOrStdout()
	if len(names) == 0 {
		data := *config.Get()
		data.Aliases = nil
		str, err := toml.Marshal(util.StructToMap(data, true, true))
		if err != nil {
			return fmt.Errorf("failed to get effective configuration: %w", err)
		}
		fmt.Fprintf(output, "# %s\n%s\n", config.ConfigFile, str)
		return nil
	}
	for _, name := range names {
		if aliasConfig := config.GetAliasConfig(name); aliasConfig != nil {
			str, err := toml.Marshal(util.StructToMap(*aliasConfig, true, true))
			if err != nil {
				fmt.Fprintf(output, "# %s : failed to get detailed configuration: %v\n", name, err)
				continue
			}
			fmt.Fprintf(output, "# %s\n[[aliases]]\n%s\n", name, str)
		} else {
			fmt.Fprintf(output, "# '%s' does NOT match with any alias\n\n", name)
		}
	}
	return nil
}
