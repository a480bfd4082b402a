// Package parser reads one UI dialect document into a typed element forest,
// a document-local template library, and a pending cross-file reference map.
//
// Parsing is deliberately tolerant: a malformed document root fails only
// that document, and malformed or missing individual fields silently fall
// back to their documented defaults.
package parser

import (
	"github.com/jacoelho/uidef/errors"
	"github.com/jacoelho/uidef/internal/node"
	"github.com/jacoelho/uidef/internal/template"
)

// Document is the result of parsing one dialect document.
type Document struct {
	// Filename tags the document and every element parsed from it.
	Filename string
	// Arena owns every element of the document's trees.
	Arena *node.Arena
	// Roots lists the top-level elements in document order.
	Roots []node.ID
	// Templates holds the document's template records.
	Templates *template.Library
	// Errors collects document-scoped parse errors.
	Errors errors.ParseList
	// Items maps each "item" name declared on an element to its node.
	Items map[string]node.ID
	// Pending maps a node to the item names its <piece> children reference,
	// in document order. Resolution happens after all documents are parsed.
	Pending map[node.ID][]string
	// Includes is the ordered include list when the document is a manifest.
	Includes []string
}

// IsManifest reports whether the document is a manifest rather than content.
func (d *Document) IsManifest() bool {
	return len(d.Includes) > 0
}

func newDocument(filename string) *Document {
	return &Document{
		Filename:  filename,
		Arena:     node.NewArena(),
		Templates: template.NewLibrary(),
		Items:     make(map[string]node.ID),
		Pending:   make(map[node.ID][]string),
	}
}
