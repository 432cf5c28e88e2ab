package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/agentx-labs/learn/internal/config"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetHomeRoot returns the directory holding the global document and the log.
// It checks the LEARN_HOME environment variable first, then the "home"
// config key, then falls back to ~/.claude.
func GetHomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	if v := config.Home(); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetGlobalDocumentPath returns the path to the per-user CLAUDE.md.
func GetGlobalDocumentPath() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, branding.DocumentFile()), nil
}

// GetLogPath returns the path to learnings.json.
func GetLogPath() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, branding.LogFile()), nil
}

// ProjectDocumentPath returns the CLAUDE.md path inside dir.
func ProjectDocumentPath(dir string) string {
	return filepath.Join(dir, branding.DocumentFile())
}
