package learnlog

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the layout used for every timestamp the log writes.
const TimeLayout = time.RFC3339Nano

// Learning is one recorded note as stored in the log.
type Learning struct {
	Text      string `json:"text"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
	Project   string `json:"project"`
}

// Stats holds aggregate counters recomputed on every append. Keys other
// than "total" and "last_updated" are carried through unchanged.
type Stats struct {
	Total       int
	LastUpdated string

	extra map[string]json.RawMessage
}

// MarshalJSON writes total, last_updated, and any preserved extra keys.
func (s Stats) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+2)
	for k, v := range s.extra {
		out[k] = v
	}
	out["total"] = s.Total
	if s.LastUpdated != "" {
		out["last_updated"] = s.LastUpdated
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads total and last_updated, keeping other keys.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Stats{}
	if v, ok := raw["total"]; ok {
		if err := json.Unmarshal(v, &s.Total); err != nil {
			return fmt.Errorf("decoding total: %w", err)
		}
		delete(raw, "total")
	}
	if v, ok := raw["last_updated"]; ok {
		if err := json.Unmarshal(v, &s.LastUpdated); err != nil {
			return fmt.Errorf("decoding last_updated: %w", err)
		}
		delete(raw, "last_updated")
	}
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

// Log is the in-memory form of learnings.json. Top-level keys other than
// "learnings" and "stats" are carried through unchanged.
type Log struct {
	Learnings []Learning
	Stats     Stats

	extra map[string]json.RawMessage
}

// New returns an empty log.
func New() *Log {
	return &Log{Learnings: []Learning{}}
}

// Add appends a learning and recomputes the stats.
func (l *Log) Add(entry Learning, now time.Time) {
	l.Learnings = append(l.Learnings, entry)
	l.Stats.Total = len(l.Learnings)
	l.Stats.LastUpdated = now.Format(TimeLayout)
}

// Filter returns the learnings in the given category, in log order.
// An empty category returns every learning.
func (l *Log) Filter(category string) []Learning {
	if category == "" {
		return l.Learnings
	}
	var out []Learning
	for _, entry := range l.Learnings {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// CategoryCounts returns the number of learnings per category.
func (l *Log) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, entry := range l.Learnings {
		counts[entry.Category]++
	}
	return counts
}

// MarshalJSON writes learnings, stats, and any preserved extra keys.
func (l *Log) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.extra)+2)
	for k, v := range l.extra {
		out[k] = v
	}
	learnings := l.Learnings
	if learnings == nil {
		learnings = []Learning{}
	}
	out["learnings"] = learnings
	out["stats"] = l.Stats
	return json.Marshal(out)
}

// UnmarshalJSON reads learnings and stats, keeping other keys for the next write.
func (l *Log) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Learnings = []Learning{}
	l.Stats = Stats{}
	l.extra = nil

	if v, ok := raw["learnings"]; ok {
		if err := json.Unmarshal(v, &l.Learnings); err != nil {
			return fmt.Errorf("decoding learnings: %w", err)
		}
		if l.Learnings == nil {
			l.Learnings = []Learning{}
		}
		delete(raw, "learnings")
	}
	if v, ok := raw["stats"]; ok {
		if err := json.Unmarshal(v, &l.Stats); err != nil {
			return fmt.Errorf("decoding stats: %w", err)
		}
		delete(raw, "stats")
	}
	if len(raw) > 0 {
		l.extra = raw
	}
	return nil
}
