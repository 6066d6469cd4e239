package shell

import (
	"fmt"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	cobraprompt "github.com/stromland/cobra-prompt"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/config"
)

var command = &cobra.Command{
	Use:   "shell",
	Short: "Start a interactive shell in which you can execute any zfstool commands.",
	Long: `Start a interactive shell in which you can execute any zfstool commands.
Flags and sub commands are completed with Tab. Flag values are reset after every command
unless "--persist-flag-values" is given.`,
	Args: cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE: shell,
}

func init() {
	cmd.RootCmd.AddCommand(command)
}

var advancedPrompt = &cobraprompt.CobraPrompt{
	RootCmd:                  cmd.RootCmd,
	PersistFlagValues:        true,
	ShowHelpCommandAndFlags:  true,
	DisableCompletionCommand: true,
	GoPromptOptions: []prompt.Option{
		prompt.OptionTitle("zfstool-shell"),
		prompt.OptionPrefix("zfstool> "),
		prompt.OptionMaxSuggestion(8),
	},
	OnErrorFunc: func(err error) {
		cmd.RootCmd.PrintErrln(err)
	},
}

func shell(command *cobra.Command, args []string) error {
	if config.LockFile != "" {
		return fmt.Errorf("--lock flag can NOT be used with shell")
	}
	cmd.RootCmd.AddCommand(Exec)
	cmd.RootCmd.AddCommand(Exit)
	advancedPrompt.Run()
	return nil
}
