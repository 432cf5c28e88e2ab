package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/userdata"
	"github.com/agentx-labs/learn/internal/version"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create the home directory and repair log counters")
	adminCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for instructions documents and the learning log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n\n", branding.CLIName(), version.Normalize(buildVersion))

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		return userdata.CheckHome(out, appFs, wd, doctorFix)
	},
}
