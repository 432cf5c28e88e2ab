package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/config"
	"github.com/agentx-labs/learn/internal/learning"
	"github.com/agentx-labs/learn/internal/learnlog"
	"github.com/agentx-labs/learn/internal/logging"
	"github.com/agentx-labs/learn/internal/userdata"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

// appFs is the filesystem every command reads and writes through.
var appFs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <what to learn>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` appends a learning to the "` + branding.SectionHeading() + `" section of
CLAUDE.md and mirrors it into learnings.json.

Learnings that mention this project, this repo, this app, this codebase, or
"here" go to ./CLAUDE.md when that file exists. Everything else goes to
~/.claude/CLAUDE.md. Every argument is part of the learning text, including
words such as "help" or "--force". Use ` + adminName + ` to list the log, change
settings, or run health checks.`,
	Args: cobra.ArbitraryArgs,
	// No flags and no subcommands: every word belongs to the learning text.
	DisableFlagParsing: true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runLearn,
}

// Execute runs the learn command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return report(rootCmd, rootCmd.Execute())
}

// report prints err to cmd's error stream once. Usage errors have already
// been printed.
func report(cmd *cobra.Command, err error) error {
	if err != nil && !errors.Is(err, learning.ErrNoLearning) {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func newLogger() zerolog.Logger {
	level := config.LogLevel()
	if verbose {
		level = logging.LevelDebug
	}
	return logging.New(os.Stderr, level)
}

// newRecorder wires a Recorder to the user's home directory and the
// current working directory.
func newRecorder(logger zerolog.Logger) (*learning.Recorder, error) {
	globalDoc, err := userdata.GetGlobalDocumentPath()
	if err != nil {
		return nil, err
	}
	logPath, err := userdata.GetLogPath()
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	return &learning.Recorder{
		Fs:          appFs,
		GlobalPath:  globalDoc,
		ProjectPath: userdata.ProjectDocumentPath(wd),
		WorkDir:     wd,
		Title:       branding.DocumentTitle(),
		Heading:     branding.SectionHeading(),
		Log:         learnlog.NewStore(appFs, logPath, logger),
		Logger:      logger,
	}, nil
}

func runLearn(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		errOut := cmd.ErrOrStderr()
		color.New(color.FgRed).Fprintln(errOut, "❌ No learning provided")
		fmt.Fprintf(errOut, "Usage: %s <what to learn>\n", branding.CLIName())
		return learning.ErrNoLearning
	}

	rec, err := newRecorder(newLogger())
	if err != nil {
		return err
	}

	res, err := rec.Record(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Duplicate {
		fmt.Fprintf(out, "%s Already learned: %s\n", color.New(color.FgCyan).Sprint("ℹ️"), text)
		return nil
	}

	fmt.Fprintf(out, "%s Learned and saved to %s %s:\n",
		color.New(color.FgGreen).Sprint("✅"), res.Tier, branding.DocumentFile())
	fmt.Fprintf(out, "   %s\n", text)
	fmt.Fprintf(out, "📁 File: %s\n", res.Path)
	return nil
}
