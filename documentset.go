package uidef

import (
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/uidef/internal/parser"
	"github.com/jacoelho/uidef/internal/resolver"
	"github.com/jacoelho/uidef/internal/template"
)

// DocumentSet accumulates parsed documents and resolves their cross-file
// references in one pass.
//
// Documents parse independently, so Add and AddFS may run parsers
// concurrently. Resolve is the synchronization barrier: it must only be
// called once every document is in, and it takes exclusive ownership of the
// set's trees for the duration of the pass.
type DocumentSet struct {
	mu        sync.Mutex
	documents []*Document
	resolved  bool
	warnings  []Warning
	library   *template.Library
}

// NewDocumentSet returns an empty document set.
func NewDocumentSet() *DocumentSet {
	return &DocumentSet{}
}

// Add parses text as one document and adds it to the set. The returned
// document carries any document-scoped parse errors.
func (s *DocumentSet) Add(name, text string) *Document {
	doc := parser.Parse(text, name)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, doc)
	return doc
}

// AddFS reads and parses the named files concurrently, one parser per
// document, and adds the results in argument order. Only file reads fail;
// parse problems stay on the individual documents.
func (s *DocumentSet) AddFS(fsys fs.FS, names ...string) error {
	parsed := make([]*Document, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read document %s: %w", name, err)
			}
			parsed[i] = parser.Parse(string(data), name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, parsed...)
	return nil
}

// Documents returns the documents in the order they were added.
func (s *DocumentSet) Documents() []*Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Document(nil), s.documents...)
}

// Includes returns the concatenated include lists of every manifest
// document, in document order.
func (s *DocumentSet) Includes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var includes []string
	for _, doc := range s.documents {
		includes = append(includes, doc.Includes...)
	}
	return includes
}

// Resolve links every pending cross-file reference in the set and merges
// the per-document template libraries into the project-wide library,
// last-loaded wins. It runs as a single exclusive pass; repeated calls
// return the warnings of the first.
func (s *DocumentSet) Resolve() []Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return append([]Warning(nil), s.warnings...)
	}
	s.resolved = true

	s.library = template.NewLibrary()
	for _, doc := range s.documents {
		s.library.Merge(doc.Templates)
	}

	s.warnings = resolver.Resolve(s.documents)
	return append([]Warning(nil), s.warnings...)
}

// TemplateLibrary returns the merged project-wide template library; nil
// before Resolve.
func (s *DocumentSet) TemplateLibrary() *TemplateLibrary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.library
}
