// Package config manages user-level settings stored at ~/.claude/learn.yaml.
// It provides functions to load, read, and write configuration keys such as
// the log level, the diagram viewer URL, and an alternate home directory for
// the global instructions document and learning log.
package config
