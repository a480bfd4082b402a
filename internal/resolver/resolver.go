// Package resolver links named fragments across independently parsed
// documents by cloning their subtrees under the referencing nodes.
//
// Resolution is a synchronization stage: it requires every document's local
// registry and takes exclusive write access to every document's tree for the
// duration of the pass.
package resolver

import (
	"fmt"
	"slices"

	"github.com/jacoelho/uidef/internal/node"
	"github.com/jacoelho/uidef/internal/parser"
)

// Warning reports a pending reference whose item name was not found in any
// document. The reference is skipped, matching the legacy format's
// tolerance; the warning exists so tooling can surface the drop.
type Warning struct {
	File string
	Item string
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("%s: unresolved reference %q", w.File, w.Item)
}

// target locates a named fragment: the document owning it and its node.
type target struct {
	doc *parser.Document
	id  node.ID
}

// Resolve links every pending reference across the document set, mutating
// trees in place. For each referenced name, in reference order, the named
// fragment's subtree is deep-cloned with fresh ids into the referencing
// document's arena and appended to the referencing node's children. A
// fragment's own references are resolved before it is cloned, regardless of
// document order, so clones always carry the fragment's resolved children.
// Clones are fully independent of their source and of sibling clones.
// Missing names and reference cycles are skipped and returned as warnings.
func Resolve(documents []*parser.Document) []Warning {
	r := &resolution{items: globalItems(documents)}
	for _, doc := range documents {
		for _, id := range orderedPending(doc) {
			r.resolveNode(doc, id, map[string]bool{})
		}
	}
	return r.warnings
}

// resolution carries the pass state: the merged item registry and the
// warnings accumulated so far.
type resolution struct {
	items    map[string]target
	warnings []Warning
}

// resolveNode links the pending references of one node. Each target
// fragment's own references are resolved first, so the clone taken
// afterwards is complete. The node's pending entry is consumed on entry,
// which also marks in-progress fragments during mutually recursive chains.
func (r *resolution) resolveNode(doc *parser.Document, id node.ID, path map[string]bool) {
	names := doc.Pending[id]
	delete(doc.Pending, id)

	for _, name := range names {
		tgt, ok := r.items[name]
		if !ok || path[name] {
			r.warnings = append(r.warnings, Warning{File: doc.Filename, Item: name})
			continue
		}

		path[name] = true
		r.resolveSubtree(tgt.doc, tgt.id, path)
		delete(path, name)

		cloned := doc.Arena.CloneFrom(tgt.doc.Arena, tgt.id, id)
		if cloned == node.None {
			continue
		}
		owner := doc.Arena.Get(id)
		owner.Children = append(owner.Children, cloned)
	}
}

// resolveSubtree resolves every pending reference inside the subtree rooted
// at id. Resolved clones never carry pending entries, so a single walk
// snapshot covers the whole subtree.
func (r *resolution) resolveSubtree(doc *parser.Document, id node.ID, path map[string]bool) {
	var withPending []node.ID
	doc.Arena.Walk(id, func(n node.ID, _ *node.Element) {
		if len(doc.Pending[n]) > 0 {
			withPending = append(withPending, n)
		}
	})
	for _, n := range withPending {
		r.resolveNode(doc, n, path)
	}
}

// globalItems merges every document's item registry. On a name collision
// the later document in input order wins.
func globalItems(documents []*parser.Document) map[string]target {
	items := make(map[string]target)
	for _, doc := range documents {
		for name, id := range doc.Items {
			items[name] = target{doc: doc, id: id}
		}
	}
	return items
}

// orderedPending returns the nodes with pending references in ascending id
// order, so resolution order is deterministic regardless of map iteration.
func orderedPending(doc *parser.Document) []node.ID {
	ids := make([]node.ID, 0, len(doc.Pending))
	for id := range doc.Pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
