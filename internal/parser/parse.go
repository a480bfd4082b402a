package parser

import (
	"github.com/jacoelho/uidef/errors"
	"github.com/jacoelho/uidef/internal/node"
	"github.com/jacoelho/uidef/internal/uixml"
)

// Dialect tag names with structural meaning.
const (
	tagWindow   = "window"
	tagLoadList = "loadlist"
	tagInclude  = "include"
	tagPiece    = "piece"
	tagID       = "id"
)

// nonPieceTags enumerates every simple property tag, so a property
// sub-structure is never mistaken for a nested visual child.
var nonPieceTags = map[string]bool{
	tagID:      true,
	"location": true,
	"size":     true,
	"anchors":  true,
	"offsets":  true,
	"color":    true,
	"font":     true,
	"text":     true,
	"tooltip":  true,

	"transparent": true,
	"border":      true,
	"titlebar":    true,
	"closebox":    true,
	"minimizebox": true,
	"tilebox":     true,
	"sizable":     true,
	"escapeclose": true,
	"vscroll":     true,
	"hscroll":     true,

	"windowtemplate": true,
	"gaugetemplate":  true,
	"buttontemplate": true,
	"fill":           true,
	"orientation":    true,
	"normal":         true,
	"hover":          true,
	"pressed":        true,
	"disabled":       true,
	"limit":          true,
	"password":       true,
	"min":            true,
	"max":            true,
	"step":           true,
	"rows":           true,
	"cols":           true,
	"cellwidth":      true,
	"cellheight":     true,
	"choice":         true,
}

// Parse reads one dialect document. A malformed root yields an empty
// document carrying a single DocumentMalformed error; the failure never
// propagates past this boundary.
func Parse(text, filename string) *Document {
	doc := newDocument(filename)

	root, err := uixml.ParseString(text)
	if err != nil {
		doc.Errors = append(doc.Errors,
			errors.NewParsef(errors.ErrDocumentMalformed, filename, "document does not parse: %v", err))
		return doc
	}

	if includes, ok := manifestIncludes(root); ok {
		doc.Includes = includes
		return doc
	}

	for _, child := range root.Children {
		switch {
		case isTemplateTag(child.Name):
			doc.parseTemplate(child)
		case isTopLevelElement(child):
			id := doc.parseElement(child, node.None)
			if id != node.None {
				doc.Roots = append(doc.Roots, id)
			}
		}
	}
	return doc
}

// manifestIncludes detects a manifest document: the root's sole meaningful
// content is a loadlist holding an ordered list of include filenames.
func manifestIncludes(root *uixml.Element) ([]string, bool) {
	var list *uixml.Element
	for _, child := range root.Children {
		if !child.Is(tagLoadList) || list != nil {
			return nil, false
		}
		list = child
	}
	if list == nil {
		return nil, false
	}

	var includes []string
	for _, entry := range list.Children {
		if !entry.Is(tagInclude) {
			continue
		}
		if name := entry.TrimmedText(); name != "" {
			includes = append(includes, name)
		}
	}
	return includes, true
}

// isTopLevelElement reports whether a top-level node is a visual element:
// the root window tag, a known vocabulary tag, or any node carrying an
// identity child.
func isTopLevelElement(e *uixml.Element) bool {
	if e.Is(tagWindow) {
		return true
	}
	if _, ok := node.KindForTag(e.Name); ok {
		return true
	}
	return e.Child(tagID) != nil
}
