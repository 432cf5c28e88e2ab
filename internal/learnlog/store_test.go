package learnlog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const logPath = "/home/user/.claude/learnings.json"

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewStore(fs, logPath, zerolog.Nop()), fs
}

func writeLog(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, logPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing log: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(l.Learnings) != 0 || l.Stats.Total != 0 {
		t.Errorf("expected empty log, got %+v", l)
	}
}

func TestLoad_CorruptResets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{not json"},
		{"empty file", ""},
		{"learnings not an array", `{"learnings": "oops", "stats": {}}`},
		{"entry missing text", `{"learnings": [{"category": "General"}]}`},
		{"negative total", `{"learnings": [], "stats": {"total": -1}}`},
		{"top level array", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs := newTestStore(t)
			writeLog(t, fs, tt.content)

			l, err := s.Load()
			if err != nil {
				t.Fatalf("Load returned error for corrupt log: %v", err)
			}
			if len(l.Learnings) != 0 {
				t.Errorf("expected reset log, got %d learnings", len(l.Learnings))
			}
		})
	}
}

func TestLoad_PythonStyleTimestampsAccepted(t *testing.T) {
	s, fs := newTestStore(t)
	writeLog(t, fs, `{
  "learnings": [
    {"text": "use gh pr view", "category": "Git/GitHub", "timestamp": "2025-01-02T10:11:12.123456", "project": "/src/app"}
  ],
  "stats": {"total": 1, "last_updated": "2025-01-02T10:11:12.123456"}
}`)

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(l.Learnings) != 1 {
		t.Fatalf("expected 1 learning, got %d", len(l.Learnings))
	}
	if l.Learnings[0].Timestamp != "2025-01-02T10:11:12.123456" {
		t.Errorf("timestamp rewritten: %s", l.Learnings[0].Timestamp)
	}
}

func TestAppend_UpdatesStats(t *testing.T) {
	s, fs := newTestStore(t)
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	for i, text := range []string{"first", "second", "first"} {
		l, err := s.Append(Learning{Text: text, Category: "General", Timestamp: now.Format(TimeLayout), Project: "/p"}, now)
		if err != nil {
			t.Fatalf("Append(%q) failed: %v", text, err)
		}
		if l.Stats.Total != i+1 {
			t.Errorf("after %d appends Stats.Total = %d", i+1, l.Stats.Total)
		}
	}

	data, err := afero.ReadFile(fs, logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	var raw struct {
		Learnings []Learning `json:"learnings"`
		Stats     Stats      `json:"stats"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("log is not valid JSON: %v", err)
	}
	if len(raw.Learnings) != 3 {
		t.Errorf("expected 3 learnings (no dedup), got %d", len(raw.Learnings))
	}
	if raw.Stats.Total != len(raw.Learnings) {
		t.Errorf("stats.total = %d, want %d", raw.Stats.Total, len(raw.Learnings))
	}
	if raw.Stats.LastUpdated != "2026-10-18T09:30:00Z" {
		t.Errorf("stats.last_updated = %q", raw.Stats.LastUpdated)
	}
	if !strings.Contains(string(data), "\n  \"learnings\"") {
		t.Errorf("expected two-space indented output, got:\n%s", data)
	}
}

func TestAppend_AfterCorruptStartsFresh(t *testing.T) {
	s, fs := newTestStore(t)
	writeLog(t, fs, "garbage")

	l, err := s.Append(Learning{Text: "x", Category: "General"}, time.Now())
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if l.Stats.Total != 1 {
		t.Errorf("expected total 1 after reset, got %d", l.Stats.Total)
	}
}

func TestAppend_PreservesUnknownKeys(t *testing.T) {
	s, fs := newTestStore(t)
	writeLog(t, fs, `{"learnings": [], "stats": {}, "owner": "jules"}`)

	if _, err := s.Append(Learning{Text: "x", Category: "General"}, time.Now()); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, _ := afero.ReadFile(fs, logPath)
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decoding log: %v", err)
	}
	if raw["owner"] != "jules" {
		t.Errorf("expected owner key preserved, got %v", raw["owner"])
	}
}

func TestAppend_PreservesUnknownStatsKeys(t *testing.T) {
	s, fs := newTestStore(t)
	writeLog(t, fs, `{"learnings": [], "stats": {"total": 0, "by_category": {"General": 4}}}`)

	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	if _, err := s.Append(Learning{Text: "x", Category: "General"}, now); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, _ := afero.ReadFile(fs, logPath)
	var raw struct {
		Stats map[string]any `json:"stats"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decoding log: %v", err)
	}
	byCategory, ok := raw.Stats["by_category"].(map[string]any)
	if !ok || byCategory["General"] != float64(4) {
		t.Errorf("expected stats.by_category preserved, got %v", raw.Stats)
	}
	if raw.Stats["total"] != float64(1) {
		t.Errorf("stats.total = %v, want 1", raw.Stats["total"])
	}
	if raw.Stats["last_updated"] != "2026-10-18T09:30:00Z" {
		t.Errorf("stats.last_updated = %v", raw.Stats["last_updated"])
	}
}

func TestFilterAndCounts(t *testing.T) {
	l := New()
	now := time.Now()
	l.Add(Learning{Text: "a", Category: "General"}, now)
	l.Add(Learning{Text: "b", Category: "Git/GitHub"}, now)
	l.Add(Learning{Text: "c", Category: "General"}, now)

	if got := l.Filter("General"); len(got) != 2 || got[0].Text != "a" || got[1].Text != "c" {
		t.Errorf("Filter(General) = %+v", got)
	}
	if got := l.Filter(""); len(got) != 3 {
		t.Errorf("Filter(\"\") returned %d entries, want 3", len(got))
	}
	if got := l.Filter("Bug Fixes"); len(got) != 0 {
		t.Errorf("Filter(Bug Fixes) = %+v", got)
	}

	counts := l.CategoryCounts()
	if counts["General"] != 2 || counts["Git/GitHub"] != 1 {
		t.Errorf("CategoryCounts() = %v", counts)
	}
}

func TestValidate_ReportsIssues(t *testing.T) {
	result, err := Validate([]byte(`{"learnings": [{"category": 3}]}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	for _, issue := range result.Issues {
		if !strings.HasPrefix(issue.Path, "/learnings/0") {
			t.Errorf("unexpected issue path %q", issue.Path)
		}
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
