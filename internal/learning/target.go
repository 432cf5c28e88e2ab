package learning

import "strings"

// projectPhrases mark a learning as specific to the current project.
var projectPhrases = []string{
	"this project",
	"this app",
	"this repo",
	"here",
	"this codebase",
}

// IsProjectSpecific reports whether text mentions the current project.
// The match is a case-insensitive substring search, so "there" counts too.
func IsProjectSpecific(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range projectPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Tier names which instructions document a learning went to.
type Tier string

const (
	TierGlobal  Tier = "global"
	TierProject Tier = "project"
)
