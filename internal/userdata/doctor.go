package userdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/learnlog"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CheckHome validates the home directory, the global and project documents,
// and the learning log. When fix is true, it attempts to repair issues.
func CheckHome(w io.Writer, fs afero.Fs, projectDir string, fix bool) error {
	root, err := GetHomeRoot()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Home check:")

	info, statErr := fs.Stat(root)
	if os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", root)
		if !fix {
			fmt.Fprintf(w, "         It is created on the first '%s <text>'\n", branding.CLIName())
			return nil
		}
		if mkErr := fs.MkdirAll(root, DirPermNormal); mkErr != nil {
			fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", root, mkErr)
			return nil
		}
		fmt.Fprintf(w, "  [FIX ] Created %s\n", root)
	} else if statErr != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", root, statErr)
		return nil
	} else if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", root)
		return nil
	} else {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", root)
	}

	globalDoc, err := GetGlobalDocumentPath()
	if err != nil {
		return err
	}
	checkDocument(w, fs, globalDoc, "global")

	if projectDir != "" {
		projectDoc := ProjectDocumentPath(projectDir)
		if exists, _ := afero.Exists(fs, projectDoc); exists {
			checkDocument(w, fs, projectDoc, "project")
		} else {
			fmt.Fprintf(w, "  [INFO] no project document at %s\n", projectDoc)
		}
	}

	logPath, err := GetLogPath()
	if err != nil {
		return err
	}
	checkLog(w, fs, logPath, fix)

	return nil
}

func checkDocument(w io.Writer, fs afero.Fs, path, tier string) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s document %s does not exist\n", tier, path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !strings.Contains(string(data), branding.SectionHeading()) {
		fmt.Fprintf(w, "  [WARN] %s has no %q section yet\n", path, branding.SectionHeading())
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s document %s\n", tier, path)
}

func checkLog(w io.Writer, fs afero.Fs, path string, fix bool) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}

	result, err := learnlog.Validate(data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s is not valid JSON and will be reset on the next recording: %v\n", path, err)
		return
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %s does not match the log schema and will be reset on the next recording:\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s\n", issue)
		}
		return
	}

	var l learnlog.Log
	if err := json.Unmarshal(data, &l); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if l.Stats.Total != len(l.Learnings) {
		fmt.Fprintf(w, "  [WARN] %s stats.total is %d but it holds %d learnings\n", path, l.Stats.Total, len(l.Learnings))
		if fix {
			l.Stats.Total = len(l.Learnings)
			store := learnlog.NewStore(fs, path, zerolog.Nop())
			if saveErr := store.Save(&l); saveErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not rewrite %s: %v\n", path, saveErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Set stats.total to %d\n", l.Stats.Total)
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s (%d learnings)\n", path, len(l.Learnings))
}
