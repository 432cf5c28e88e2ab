package learning

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentx-labs/learn/internal/learnlog"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrNoLearning is returned when Record is called with blank text.
var ErrNoLearning = errors.New("no learning provided")

// Recorder writes learnings into an instructions document and the learning log.
// Every path and the filesystem are supplied by the caller.
type Recorder struct {
	Fs afero.Fs

	// GlobalPath is the per-user instructions document.
	GlobalPath string
	// ProjectPath is the instructions document in the working directory.
	ProjectPath string
	// WorkDir is recorded as the project of every log entry.
	WorkDir string

	// Title is the first line of a newly created document.
	Title string
	// Heading is the section learnings are inserted under.
	Heading string

	Log    *learnlog.Store
	Logger zerolog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Result describes what Record did.
type Result struct {
	Tier      Tier
	Path      string
	Entry     Entry
	Duplicate bool
}

func (r *Recorder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Target picks the document a learning is written to. The project document
// wins only if text mentions the project and the file already exists.
func (r *Recorder) Target(text string) (Tier, string, error) {
	if !IsProjectSpecific(text) || r.ProjectPath == "" {
		return TierGlobal, r.GlobalPath, nil
	}
	exists, err := afero.Exists(r.Fs, r.ProjectPath)
	if err != nil {
		return "", "", fmt.Errorf("checking project document %s: %w", r.ProjectPath, err)
	}
	if !exists {
		return TierGlobal, r.GlobalPath, nil
	}
	return TierProject, r.ProjectPath, nil
}

// Record adds text to the selected instructions document and, unless the text
// is already present there, appends it to the learning log.
func (r *Recorder) Record(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoLearning
	}

	tier, path, err := r.Target(text)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug().Str("tier", string(tier)).Str("path", path).Msg("selected instructions document")

	content, err := r.readDocument(path)
	if err != nil {
		return nil, err
	}

	if strings.Contains(content, text) {
		r.Logger.Debug().Str("path", path).Msg("learning already present")
		return &Result{Tier: tier, Path: path, Duplicate: true}, nil
	}

	now := r.now()
	entry := NewEntry(text, now, r.WorkDir)

	doc := ParseDocument(EnsureSection(content, r.Heading))
	doc.Insert(r.Heading, entry)

	if err := r.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(r.Fs, path, []byte(doc.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing instructions document %s: %w", path, err)
	}

	if r.Log != nil {
		_, err := r.Log.Append(learnlog.Learning{
			Text:      entry.Text,
			Category:  string(entry.Category),
			Timestamp: now.Format(learnlog.TimeLayout),
			Project:   r.WorkDir,
		}, now)
		if err != nil {
			return nil, err
		}
	}

	return &Result{Tier: tier, Path: path, Entry: entry}, nil
}

// readDocument returns the document content, or a fresh header when the
// file does not exist yet.
func (r *Recorder) readDocument(path string) (string, error) {
	data, err := afero.ReadFile(r.Fs, path)
	if os.IsNotExist(err) {
		return r.Title + "\n\n", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading instructions document %s: %w", path, err)
	}
	return string(data), nil
}
