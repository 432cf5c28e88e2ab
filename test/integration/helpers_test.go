//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/learning"
	"github.com/agentx-labs/learn/internal/learnlog"
	"github.com/agentx-labs/learn/internal/userdata"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // LEARN_HOME, holds the global CLAUDE.md and learnings.json
	ProjectDir string // A mock project working directory
}

// setupTestEnv creates isolated temp directories and sets LEARN_HOME so all
// recordings are sandboxed. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    filepath.Join(t.TempDir(), ".claude"),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("LEARN_HOME", env.HomeDir)
	return env
}

// newRecorder builds a Recorder over the real filesystem, wired the same way
// the learn command wires it.
func newRecorder(t *testing.T, env *testEnv, now time.Time) *learning.Recorder {
	t.Helper()

	globalDoc, err := userdata.GetGlobalDocumentPath()
	if err != nil {
		t.Fatalf("GetGlobalDocumentPath: %v", err)
	}
	logPath, err := userdata.GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath: %v", err)
	}

	fs := afero.NewOsFs()
	return &learning.Recorder{
		Fs:          fs,
		GlobalPath:  globalDoc,
		ProjectPath: userdata.ProjectDocumentPath(env.ProjectDir),
		WorkDir:     env.ProjectDir,
		Title:       branding.DocumentTitle(),
		Heading:     branding.SectionHeading(),
		Log:         learnlog.NewStore(fs, logPath, zerolog.Nop()),
		Logger:      zerolog.Nop(),
		Now:         func() time.Time { return now },
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
