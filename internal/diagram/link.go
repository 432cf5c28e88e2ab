package diagram

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// DefaultViewerURL is the Excalidraw link prefix the payload is appended to.
const DefaultViewerURL = "https://excalidraw.com/#json="

// DefaultPreviewLength is how many characters of a link are printed.
const DefaultPreviewLength = 100

// ErrNotJSON is returned when a diagram file does not contain valid JSON.
var ErrNotJSON = errors.New("diagram is not valid JSON")

// Diagram is a labelled input file.
type Diagram struct {
	Label string
	Path  string
}

// DefaultDiagrams are rendered when no paths are given.
var DefaultDiagrams = []Diagram{
	{Label: "Architecture Diagram", Path: "docs/architecture-diagram.excalidraw"},
	{Label: "Flow Diagram", Path: "docs/flow-diagram.excalidraw"},
}

// Link embeds doc into viewerURL as standard base64.
func Link(viewerURL string, doc []byte) string {
	return viewerURL + base64.StdEncoding.EncodeToString(doc)
}

// LinkFile reads the diagram at path and returns its viewer link.
func LinkFile(fs afero.Fs, viewerURL, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("reading diagram %s: %w", path, err)
	}
	if !json.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrNotJSON)
	}
	return Link(viewerURL, data), nil
}

// Preview returns the first n characters of link followed by "...".
// The marker is always added so a preview is never mistaken for a full link.
// A non-positive n returns the link unchanged.
func Preview(link string, n int) string {
	if n <= 0 {
		return link
	}
	if len(link) > n {
		link = link[:n]
	}
	return link + "..."
}

// LabelFor derives a display label from a file name,
// e.g. "docs/flow-diagram.excalidraw" → "Flow Diagram".
func LabelFor(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Instructions returns the manual steps for exporting static images.
func Instructions() string {
	return `Note: For static images in README, you need to:
1. Open each link in Excalidraw
2. Use File > Export image > PNG
3. Save to docs/images/ directory
4. Reference in README as ![Diagram](docs/images/architecture.png)
`
}

// RenderOptions controls Render output.
type RenderOptions struct {
	ViewerURL     string
	PreviewLength int
	Full          bool
}

// Render writes a link for each diagram followed by the export instructions.
// Every diagram is encoded before anything is written, so a missing or
// invalid file produces no partial output.
func Render(w io.Writer, fs afero.Fs, diagrams []Diagram, opts RenderOptions) error {
	viewer := opts.ViewerURL
	if viewer == "" {
		viewer = DefaultViewerURL
	}
	previewLen := opts.PreviewLength
	if previewLen <= 0 {
		previewLen = DefaultPreviewLength
	}
	links := make([]string, len(diagrams))
	for i, d := range diagrams {
		link, err := LinkFile(fs, viewer, d.Path)
		if err != nil {
			return err
		}
		links[i] = link
	}

	for i, d := range diagrams {
		link := links[i]
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s Link:\n", d.Label)
		if opts.Full {
			fmt.Fprintln(w, link)
		} else {
			fmt.Fprintln(w, Preview(link, previewLen))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, Instructions())
	return nil
}
