package learnlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store reads and writes a learning log file on an injected filesystem.
type Store struct {
	Fs     afero.Fs
	Path   string
	Logger zerolog.Logger
}

// NewStore returns a Store for the log at path.
func NewStore(fs afero.Fs, path string, logger zerolog.Logger) *Store {
	return &Store{Fs: fs, Path: path, Logger: logger}
}

// Load reads the log. A missing file yields an empty log. A file that is not
// valid JSON or does not match the schema also yields an empty log; the
// problem is only reported at debug level.
func (s *Store) Load() (*Log, error) {
	data, err := afero.ReadFile(s.Fs, s.Path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading learning log %s: %w", s.Path, err)
	}

	result, err := Validate(data)
	if err != nil {
		s.Logger.Debug().Err(err).Str("path", s.Path).Msg("learning log unreadable, starting fresh")
		return New(), nil
	}
	if !result.Valid {
		s.Logger.Debug().Str("path", s.Path).Int("issues", len(result.Issues)).
			Msg("learning log failed schema validation, starting fresh")
		return New(), nil
	}

	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		s.Logger.Debug().Err(err).Str("path", s.Path).Msg("learning log undecodable, starting fresh")
		return New(), nil
	}
	return &l, nil
}

// Save rewrites the whole log file, creating its directory if needed.
func (s *Store) Save(l *Log) error {
	if err := s.Fs.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating learning log directory: %w", err)
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling learning log: %w", err)
	}

	if err := afero.WriteFile(s.Fs, s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing learning log %s: %w", s.Path, err)
	}
	return nil
}

// Append loads the log, adds entry, and saves it. It returns the saved log.
func (s *Store) Append(entry Learning, now time.Time) (*Log, error) {
	l, err := s.Load()
	if err != nil {
		return nil, err
	}
	l.Add(entry, now)
	if err := s.Save(l); err != nil {
		return nil, err
	}
	s.Logger.Debug().Str("path", s.Path).Int("total", l.Stats.Total).Msg("learning log updated")
	return l, nil
}
