// Package userdata resolves the per-user ~/.claude/ directory that holds the
// global CLAUDE.md and learnings.json, plus the project-local CLAUDE.md in the
// working directory. It also implements the doctor checks for those files.
package userdata
