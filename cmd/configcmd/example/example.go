package example

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd/configcmd"
	"github.com/jakeogh/zfstool/config"
)

var command = &cobra.Command{
	Use:   "example",
	Short: "Display example config file contents.",
	Long:  `Display example config file contents.`,
	Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE:  example,
}

var (
	format = ""
)

func init() {
	command.Flags().StringVarP(&format, "format", "", "", `Select the format of example config file to display, `+
		`e.g. "toml", "yaml". By default it uses the format of current config file`)
	configcmd.Command.AddCommand(command)
}

func example(command *cobra.Command, args []string) error {
	exampleFormat := format
	if exampleFormat == "" {
		exampleFormat = config.ConfigType
	}
	if file, err := config.DefaultConfigFs.Open(config.EXAMPLE_CONFIG_FILE + "." + exampleFormat); err != nil {
		return fmt.Errorf("unsupported config file type %q: %w", exampleFormat, err)
	} else {
		defer file.Close()
		fmt.Fprintf(command.OutOrStdout(), "# %s.%s\n\n", config.EXAMPLE_CONFIG_FILE, exampleFormat)
		_, err = io.Copy(command.OutOrStdout(), file)
		return err
	}
}
