package learning

import "strings"

// Section is a heading line and the lines up to the next heading.
// The document preamble is a Section with an empty Heading.
type Section struct {
	Heading string
	Body    []string
}

// Document is an instructions document split into sections. Joining every
// section's heading and body lines with "\n" reproduces the original content.
type Document struct {
	Sections []Section
}

// ParseDocument splits content into a preamble and heading-delimited sections.
func ParseDocument(content string) *Document {
	lines := strings.Split(content, "\n")
	doc := &Document{Sections: []Section{{}}}
	for _, line := range lines {
		if isHeading(line) {
			doc.Sections = append(doc.Sections, Section{Heading: line})
			continue
		}
		last := &doc.Sections[len(doc.Sections)-1]
		last.Body = append(last.Body, line)
	}
	return doc
}

// isHeading reports whether line is an ATX markdown heading ("#" to "######"
// followed by a space or end of line).
func isHeading(line string) bool {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return n == len(line) || line[n] == ' ' || line[n] == '\t'
}

// String serializes the document back to text.
func (d *Document) String() string {
	var lines []string
	for i, s := range d.Sections {
		if i > 0 {
			lines = append(lines, s.Heading)
		}
		lines = append(lines, s.Body...)
	}
	return strings.Join(lines, "\n")
}

// FindSection returns the index of the first section whose heading line
// starts with heading, or -1.
func (d *Document) FindSection(heading string) int {
	for i, s := range d.Sections {
		if i > 0 && strings.HasPrefix(s.Heading, heading) {
			return i
		}
	}
	return -1
}

// Entries returns the section's entry run: the contiguous non-blank lines
// directly under the heading.
func (s Section) Entries() []string {
	return s.Body[:entryRunEnd(s.Body)]
}

func entryRunEnd(body []string) int {
	for i, line := range body {
		if strings.TrimSpace(line) == "" {
			return i
		}
	}
	return len(body)
}

// insertPosition returns where a line tagged with c goes within body: right
// after the last entry of the same category, or at the top of the run.
func insertPosition(body []string, c Category) int {
	run := body[:entryRunEnd(body)]
	tag := c.Tag()
	pos := 0
	for i, line := range run {
		if strings.Contains(line, tag) {
			pos = i + 1
		}
	}
	return pos
}

// Insert places e in the section headed by heading. When no such section
// exists the line is appended to the end of the document.
func (d *Document) Insert(heading string, e Entry) {
	line := e.Line()

	idx := d.FindSection(heading)
	if idx < 0 {
		last := &d.Sections[len(d.Sections)-1]
		last.Body = append(last.Body, line)
		return
	}

	s := &d.Sections[idx]
	pos := insertPosition(s.Body, e.Category)
	s.Body = append(s.Body, "")
	copy(s.Body[pos+1:], s.Body[pos:])
	s.Body[pos] = line
}

// EnsureSection appends heading as a new section when the content does not
// mention it anywhere.
func EnsureSection(content, heading string) string {
	if strings.Contains(content, heading) {
		return content
	}
	return content + "\n" + heading + "\n"
}
