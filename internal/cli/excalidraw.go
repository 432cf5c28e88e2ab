package cli

import (
	"github.com/agentx-labs/learn/internal/config"
	"github.com/agentx-labs/learn/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	excalidrawFull   bool
	excalidrawViewer string
)

func init() {
	excalidrawCmd.Flags().BoolVar(&excalidrawFull, "full", false, "Print complete links instead of a preview")
	excalidrawCmd.Flags().StringVar(&excalidrawViewer, "viewer-url", "", "Link prefix the encoded diagram is appended to")
	excalidrawCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug diagnostics to stderr")
}

var excalidrawCmd = &cobra.Command{
	Use:   "excalidraw-link [file...]",
	Short: "Print shareable Excalidraw links for diagram files",
	Long: `Encode Excalidraw scene files into shareable excalidraw.com links.

Without arguments, docs/architecture-diagram.excalidraw and
docs/flow-diagram.excalidraw are used. Static PNG export is not supported;
follow the printed steps to export images by hand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runExcalidraw,
}

// ExecuteExcalidraw runs the excalidraw-link command.
func ExecuteExcalidraw(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	excalidrawCmd.Version = version
	return report(excalidrawCmd, excalidrawCmd.Execute())
}

func runExcalidraw(cmd *cobra.Command, args []string) error {
	diagrams := diagram.DefaultDiagrams
	if len(args) > 0 {
		diagrams = make([]diagram.Diagram, 0, len(args))
		for _, path := range args {
			diagrams = append(diagrams, diagram.Diagram{Label: diagram.LabelFor(path), Path: path})
		}
	}

	viewer := excalidrawViewer
	if viewer == "" {
		viewer = config.ViewerURL()
	}

	logger := newLogger()
	logger.Debug().Int("diagrams", len(diagrams)).Str("viewer", viewer).Msg("rendering diagram links")

	return diagram.Render(cmd.OutOrStdout(), appFs, diagrams, diagram.RenderOptions{
		ViewerURL:     viewer,
		PreviewLength: config.PreviewLength(),
		Full:          excalidrawFull,
	})
}
