package cli

import (
	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/config"
	"github.com/spf13/cobra"
)

// adminName is the binary that carries the maintenance subcommands.
var adminName = branding.CLIName() + "ctl"

func init() {
	adminCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug diagnostics to stderr")
}

var adminCmd = &cobra.Command{
	Use:   adminName,
	Short: "Inspect and maintain recorded learnings",
	Long: `Inspect the learning log, manage settings, and check the health of the
instructions documents written by ` + branding.CLIName() + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// ExecuteAdmin runs the maintenance command tree with build info injected via ldflags.
func ExecuteAdmin(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return report(adminCmd, adminCmd.Execute())
}
