package learning

import (
	"fmt"
	"time"
)

// DateLayout is the day-granularity date shown in document entries.
const DateLayout = "2006-01-02"

// Entry is a single recorded learning.
type Entry struct {
	Text      string
	Category  Category
	Timestamp time.Time
	Project   string
}

// NewEntry categorizes text and stamps it with at.
func NewEntry(text string, at time.Time, project string) Entry {
	return Entry{
		Text:      text,
		Category:  Categorize(text),
		Timestamp: at,
		Project:   project,
	}
}

// Line renders the entry as a document line:
//
//	- [2026-10-18] **Git/GitHub**: Always run git status before committing
func (e Entry) Line() string {
	return fmt.Sprintf("- [%s] %s %s", e.Timestamp.Format(DateLayout), e.Category.Tag(), e.Text)
}
