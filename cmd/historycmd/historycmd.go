package historycmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/cmd/common"
	"github.com/jakeogh/zfstool/config"
	"github.com/jakeogh/zfstool/journal"
	"github.com/jakeogh/zfstool/util"
)

var command = &cobra.Command{
	Use:   "history",
	Short: "Show commands executed by zfstool.",
	Long: `Show commands executed by zfstool, most recent first.
Commands are recorded in the "zfstool_history.txt" file in the same dir of the config file.
Simulated commands are not recorded. To disable recording, add "history = false" to the config file.`,
	Args: cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	RunE: history,
}

var (
	failed       = false
	clearHistory = false
	filter       = ""
	limit        = 0
)

func init() {
	command.Flags().BoolVarP(&failed, "failed", "", false, "Only show commands that failed")
	command.Flags().BoolVarP(&clearHistory, "clear", "", false, "Clear the history")
	command.Flags().StringVarP(&filter, "filter", "", "", "Only show commands that contain this")
	command.Flags().IntVarP(&limit, "limit", "", 20, "Show at most this number of commands. -1: no limit")
	cmd.RootCmd.AddCommand(command)
}

func history(command *cobra.Command, args []string) error {
	j := journal.New(config.HistoryFile())
	if clearHistory {
		if !common.Confirm(fmt.Sprintf("Clear %s?", j.Path)) {
			return fmt.Errorf("abort")
		}
		return j.Clear()
	}
	records, err := j.Find(journal.Query{Failed: failed, Filter: filter, Limit: limit})
	if err != nil {
		return err
	}
	PrintRecords(command, records, commandWidth())
	return nil
}

func commandWidth() int64 {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 60 {
		return 100
	}
	return int64(width) - 30
}

// PrintRecords prints one row per record. Long command lines are truncated to width.
func PrintRecords(command *cobra.Command, records []*journal.CommandRecord, width int64) {
	output := command.OutOrStdout()
	fmt.Fprintf(output, "%-19s  %-5s  %s\n", "Time", "Exit", "Command")
	for _, record := range records {
		cmdline, _ := util.StringPrefixInWidth(record.Command, width)
		fmt.Fprintf(output, "%-19s  %-5d  %s\n", util.FormatTime(record.Ts), record.ExitCode, cmdline)
		if record.Error != "" {
			fmt.Fprintf(output, "%-19s  %-5s  // %s\n", "", "", record.Error)
		}
	}
	fmt.Fprintf(output, "// %d record(s)\n", len(records))
}
