//go:build integration

package integration_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agentx-labs/learn/internal/diagram"
	"github.com/agentx-labs/learn/internal/learnlog"
	"github.com/spf13/afero"
)

// TestFullFlowRecordLearnings tests the complete flow:
// fresh home -> record global learnings -> record a project learning ->
// repeat one -> verify documents and log.
func TestFullFlowRecordLearnings(t *testing.T) {
	env := setupTestEnv(t)
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	rec := newRecorder(t, env, now)

	globalDoc := filepath.Join(env.HomeDir, "CLAUDE.md")
	projectDoc := filepath.Join(env.ProjectDir, "CLAUDE.md")
	logPath := filepath.Join(env.HomeDir, "learnings.json")

	// Step 1: Fresh global document.
	res, err := rec.Record("Always run git status before committing")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if res.Path != globalDoc {
		t.Errorf("expected %s, got %s", globalDoc, res.Path)
	}
	assertFileContains(t, globalDoc, "## Learned from Sessions\n- [2026-10-18] **Git/GitHub**: Always run git status before committing")

	// Step 2: Project phrase without a project document stays global.
	if _, err := rec.Record("this app needs xcode 16"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	assertFileNotExists(t, projectDoc)
	assertFileContains(t, globalDoc, "**General**: this app needs xcode 16")

	// Step 3: With a project document, it becomes the target.
	writeFile(t, projectDoc, "# Project\n\nBuild with make.\n")
	res, err = rec.Record("this repo pins dart 3.5")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if res.Path != projectDoc {
		t.Errorf("expected project document, got %s", res.Path)
	}
	if got := readFile(t, projectDoc); got != "# Project\n\nBuild with make.\n\n## Learned from Sessions\n- [2026-10-18] **Flutter/Dart**: this repo pins dart 3.5\n" {
		t.Errorf("project document:\n%q", got)
	}

	// Step 4: Repeat is a no-op.
	before := readFile(t, logPath)
	res, err = rec.Record("Always run git status before committing")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !res.Duplicate {
		t.Error("expected duplicate")
	}
	if readFile(t, logPath) != before {
		t.Error("log changed on duplicate")
	}

	// Step 5: The log mirrors the three recordings.
	var l learnlog.Log
	if err := json.Unmarshal([]byte(readFile(t, logPath)), &l); err != nil {
		t.Fatalf("decoding log: %v", err)
	}
	if len(l.Learnings) != 3 || l.Stats.Total != 3 {
		t.Fatalf("expected 3 learnings, got %d (total %d)", len(l.Learnings), l.Stats.Total)
	}
	for _, entry := range l.Learnings {
		if entry.Project != env.ProjectDir {
			t.Errorf("entry project = %s, want %s", entry.Project, env.ProjectDir)
		}
	}
}

// TestFullFlowDiagramLinks renders links for real files on disk.
func TestFullFlowDiagramLinks(t *testing.T) {
	env := setupTestEnv(t)
	scene := `{"type":"excalidraw","version":2,"elements":[{"id":"a","type":"rectangle"}],"appState":{},"files":{}}`

	var diagrams []diagram.Diagram
	for _, d := range diagram.DefaultDiagrams {
		path := filepath.Join(env.ProjectDir, d.Path)
		writeFile(t, path, scene)
		diagrams = append(diagrams, diagram.Diagram{Label: d.Label, Path: path})
	}
	assertFileExists(t, diagrams[0].Path)

	var buf bytes.Buffer
	err := diagram.Render(&buf, afero.NewOsFs(), diagrams, diagram.RenderOptions{Full: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "Architecture Diagram Link:" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	payload := strings.TrimPrefix(lines[1], diagram.DefaultViewerURL)
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if string(decoded) != scene {
		t.Errorf("decoded payload = %q", decoded)
	}
}
