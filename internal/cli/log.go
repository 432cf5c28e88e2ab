package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/agentx-labs/learn/internal/learning"
	"github.com/agentx-labs/learn/internal/learnlog"
	"github.com/agentx-labs/learn/internal/userdata"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	logCategory string
	logJSON     bool
	logLimit    int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List recorded learnings",
	Long:  `List learnings from ~/.claude/learnings.json, oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logCategory, "category", "", "Filter by category (Git/GitHub, Flutter/Dart, Bug Fixes, General)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output in JSON format")
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Show only the most recent N learnings")
	adminCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	category := ""
	if logCategory != "" {
		c, ok := learning.ParseCategory(logCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", logCategory)
		}
		category = string(c)
	}

	logPath, err := userdata.GetLogPath()
	if err != nil {
		return err
	}
	l, err := learnlog.NewStore(appFs, logPath, newLogger()).Load()
	if err != nil {
		return err
	}

	entries := l.Filter(category)
	if logLimit > 0 && len(entries) > logLimit {
		entries = entries[len(entries)-logLimit:]
	}

	if logJSON {
		if entries == nil {
			entries = []learnlog.Learning{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling learnings: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No learnings recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tLEARNING")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", day(e.Timestamp), e.Category, e.Text)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, summarize(l, len(entries)))
	return nil
}

// day returns the date part of a log timestamp.
func day(ts string) string {
	if len(ts) < len(learning.DateLayout) {
		return "-"
	}
	return ts[:len(learning.DateLayout)]
}

// summarize renders totals with thousands separators, e.g.
// "Showing 12 of 1,204 learnings (Bug Fixes 88, General 1,002, Git/GitHub 114)".
func summarize(l *learnlog.Log, shown int) string {
	p := message.NewPrinter(language.English)
	counts := l.CategoryCounts()

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	breakdown := ""
	for i, name := range names {
		if i > 0 {
			breakdown += ", "
		}
		breakdown += p.Sprintf("%s %d", name, counts[name])
	}
	return p.Sprintf("Showing %d of %d learnings (%s)", shown, len(l.Learnings), breakdown)
}
