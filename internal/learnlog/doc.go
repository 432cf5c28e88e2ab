// Package learnlog maintains learnings.json, the structured mirror of every
// learning recorded into an instructions document. The file is loaded,
// extended, and rewritten in full on each recording. A missing, unparseable,
// or schema-invalid file is treated as an empty log.
package learnlog
