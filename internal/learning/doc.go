// Package learning records short free-text notes into an instructions
// document (CLAUDE.md) and mirrors each one into the learning log.
//
// The document manipulation is pure: ParseDocument splits the content into
// heading-delimited sections, Document.Insert places an Entry next to others
// of its category, and Document.String reproduces every untouched line.
// Recorder performs the file I/O around it against an injected afero.Fs.
package learning
