// Package diagram turns Excalidraw scene files into shareable viewer links.
// The file's bytes are base64-encoded into the fragment of the viewer URL, so
// nothing is uploaded and the link decodes back to the exact file contents.
package diagram
