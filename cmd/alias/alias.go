package alias

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/config"
)

var command = &cobra.Command{
	Use:   "alias {name} [args...]",
	Short: "Run alias.",
	Long: `Run alias defined in the "aliases" of config file.
Args are appended to the alias cmd. If exactly "minArgs" args are given, "defaultArgs" are appended too.`,
	DisableFlagParsing: true,
	Args:               cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
	RunE:               aliascmd,
}

var (
	inAlias = false
)

func init() {
	cmd.RootCmd.AddCommand(command)
}

// Expand returns the full args of alias invoked with args.
func Expand(aliasConfig *config.AliasConfigStruct, args []string) ([]string, error) {
	argsCmd := strings.TrimSpace(aliasConfig.Cmd)
	if argsCmd == "" {
		return nil, fmt.Errorf("alias '%s' does not have cmd", aliasConfig.Name)
	}
	aliasArgs, err := shlex.Split(argsCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alias %s cmdline '%s': %w", aliasConfig.Name, argsCmd, err)
	}
	if len(args) < int(aliasConfig.MinArgs) {
		return nil, fmt.Errorf("alias '%s' requires at least %d arg(s), only received %d",
			aliasConfig.Name, aliasConfig.MinArgs, len(args))
	}
	aliasArgs = append(aliasArgs, args...)
	if len(args) == int(aliasConfig.MinArgs) && aliasConfig.DefaultArgs != "" {
		if aliasDefaultArgs, err := shlex.Split(aliasConfig.DefaultArgs); err != nil {
			return nil, fmt.Errorf("failed to parse alias '%s' defaultArgs '%s': %w",
				aliasConfig.Name, aliasConfig.DefaultArgs, err)
		} else {
			aliasArgs = append(aliasArgs, aliasDefaultArgs...)
		}
	}
	return aliasArgs, nil
}

func aliascmd(command *cobra.Command, args []string) error {
	if inAlias {
		return fmt.Errorf("recursive alias definition is NOT supported")
	}
	inAlias = true
	defer func() {
		inAlias = false
	}()
	aliasName := args[0]
	aliasConfig := config.GetAliasConfig(aliasName)
	if aliasConfig == nil {
		return fmt.Errorf("alias '%s' not found. Run 'zfstool config' to list aliases", aliasName)
	}
	aliasArgs, err := Expand(aliasConfig, args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintf(command.ErrOrStderr(), "Run alias '%s': %v\n", aliasName, aliasArgs)
	defer cmd.RootCmd.SetArgs(nil)
	cmd.RootCmd.SetArgs(aliasArgs)
	return cmd.RootCmd.ExecuteContext(command.Context())
}
