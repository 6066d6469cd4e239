package configcmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/util"
)

var Command = &cobra.Command{
	Use:   "config",
	Short: "Display or manage config file contents.",
	Long:  `Display or manage config file contents.`,
	Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE:  configcmd,
}

var (
	filter = ""
)

func init() {
	Command.Flags().StringVarP(&filter, "filter", "", "", "Only show aliases which name or cmd contains this")
	cmd.RootCmd.AddCommand(Command)
}

func configcmd(command *cobra.Command, args []string) error {
	output := command.OutOrStdout()
	fmt.Fprintf(output, "Config file: %s\n", config.ConfigFile)
	if _, err := os.Stat(config.ConfigFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(output, "<config file not exists, using defaults. Create one with \"zfstool config create\">\n")
		} else {
			fmt.Fprintf(output, "<config file can not be accessed: %v>\n", err)
			return nil
		}
	}
	data := config.Get()
	fmt.Fprintf(output, "History file: %s (enabled: %t)\n\n", config.HistoryFile(), data.HistoryEnabled())

	fmt.Fprintf(output, "Pool properties:\n")
	fmt.Fprintf(output, "%-16s  %s\n", "compression", data.Compression)
	fmt.Fprintf(output, "%-16s  %s\n", "checksum", data.Checksum)
	fmt.Fprintf(output, "%-16s  %d\n", "pbkdf2Iters", data.Pbkdf2Iters)
	fmt.Fprintf(output, "%-16s  %d\n", "ashift", data.Ashift)
	fmt.Fprintf(output, "%-16s  %s\n", "cachefile", data.Cachefile)
	fmt.Fprintf(output, "%-16s  %s\n", "bootEnvironment", data.BootEnvironment)
	fmt.Fprintf(output, "\n")

	aliases := util.CopySlice(data.Aliases)
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})
	emptyListPlaceholder := "<none found>\n"
	if filter != "" {
		emptyListPlaceholder = "<none matched found>\n"
		fmt.Fprintf(output, "Applying filter '%s'\n", filter)
	}
	fmt.Fprintf(output, `Aliases: (run: "zfstool alias <name> [args...]")`+"\n")
	fmt.Fprintf(output, "%-15s  %-s\n", "Name", "Cmd")
	emptyFlag := true
	for _, aliasConfig := range aliases {
		if filter != "" && !aliasConfig.MatchFilter(filter) {
			continue
		}
		emptyFlag = false
		fmt.Fprintf(output, "%-15s  %-s\n", aliasConfig.Name, aliasConfig.Cmd)
	}
	if emptyFlag {
		fmt.Fprint(output, emptyListPlaceholder)
	}
	return nil
}
