package cli

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	adminCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		v := version.Normalize(buildVersion)

		if versionShort {
			fmt.Fprintln(out, v)
			return nil
		}

		if versionJSON {
			info := map[string]any{
				"version": v,
				"release": version.IsRelease(buildVersion),
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), v, buildCommit, buildDate)
		return nil
	},
}
