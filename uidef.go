// Package uidef parses, links, and serializes the legacy UI-definition XML
// dialect, and decodes the texture formats its documents reference.
//
// Documents are parsed independently and tolerantly: a malformed document
// fails alone, and malformed fields fall back to defaults. Cross-file item
// references are linked afterwards by [DocumentSet.Resolve], which clones
// each referenced fragment under its referencing node.
package uidef

import (
	"github.com/jacoelho/uidef/internal/parser"
	"github.com/jacoelho/uidef/internal/resolver"
	"github.com/jacoelho/uidef/internal/schema"
	"github.com/jacoelho/uidef/internal/template"
	"github.com/jacoelho/uidef/internal/texture"
	"github.com/jacoelho/uidef/internal/writer"
)

// Document is one parsed dialect document: its element forest, template
// library, item registry, pending references, and parse errors.
type Document = parser.Document

// Warning reports a pending reference whose target was not found.
type Warning = resolver.Warning

// TemplateLibrary indexes template records by item name.
type TemplateLibrary = template.Library

// Texture is a decoded image with a uniform RGBA buffer.
type Texture = texture.Image

// TextureCache is a bounded decoded-texture cache keyed by source name.
type TextureCache = texture.Cache

// ParseDocument parses one document. It never fails: a malformed document
// yields an empty result whose Errors field carries the failure.
func ParseDocument(text, filename string) *Document {
	return parser.Parse(text, filename)
}

// ResolveReferences links pending cross-file references across the given
// documents, mutating their trees in place. The caller must ensure no
// concurrent access to any of the documents for the duration.
func ResolveReferences(documents []*Document) []Warning {
	return resolver.Resolve(documents)
}

// Serialize renders a document as dialect text that ParseDocument re-reads
// with identical semantics.
func Serialize(doc *Document) string {
	return writer.Serialize(doc)
}

// DecodeTexture decodes image bytes using a filename-extension hint.
func DecodeTexture(data []byte, hint string) (*Texture, error) {
	return texture.Decode(data, hint)
}

// NewTextureCache returns a texture cache holding at most capacity images.
func NewTextureCache(capacity int) (*TextureCache, error) {
	return texture.NewCache(capacity)
}

// SchemaProperty is one declared property on an element type.
type SchemaProperty = schema.Property

// SchemaDefinition is one element type with its ordered properties.
type SchemaDefinition = schema.Definition

// Schema is the advisory type/inheritance/property metadata for the
// dialect. It describes documents; parsing never enforces it.
type Schema struct {
	defs    schema.Map
	parents schema.ParentMap
}

// ParseSchema reads schema XML.
func ParseSchema(text string) (*Schema, error) {
	defs, parents, err := schema.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Schema{defs: defs, parents: parents}, nil
}

// Definition returns the named element type definition.
func (s *Schema) Definition(typeName string) (*SchemaDefinition, bool) {
	def, ok := s.defs[typeName]
	return def, ok
}

// InheritedProperties returns the properties of typeName and its supertype
// chain, base class first. A cyclic chain yields a partial list.
func (s *Schema) InheritedProperties(typeName string) []SchemaProperty {
	return schema.InheritedProperties(s.defs, typeName)
}

// InheritsFrom reports whether typeName has ancestor in its supertype chain.
func (s *Schema) InheritsFrom(typeName, ancestor string) bool {
	return schema.InheritsFrom(s.parents, typeName, ancestor)
}

// DefaultValues returns the explicit property defaults of typeName and its
// supertype chain, converted per the declared property types.
func (s *Schema) DefaultValues(typeName string) map[string]any {
	return schema.DefaultValues(s.defs, typeName)
}
