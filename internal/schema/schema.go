// Package schema loads the advisory type/inheritance/property metadata for
// the UI dialect. The schema describes the dialect; content parsing never
// enforces it.
package schema

import (
	"strconv"
	"strings"

	"github.com/jacoelho/uidef/errors"
	"github.com/jacoelho/uidef/internal/uixml"
)

// Property is one declared property on an element type.
type Property struct {
	Name       string
	Type       string
	Default    string
	HasDefault bool
	MinOccurs  int
	MaxOccurs  int
	Reference  bool
}

// Definition is one element type with its ordered property list.
type Definition struct {
	Name       string
	SuperType  string
	Properties []Property
}

// Map indexes definitions by type name.
type Map map[string]*Definition

// ParentMap maps a type name to its declared supertype name.
type ParentMap map[string]string

// Parse reads schema XML into a definition map and a child-to-parent map.
func Parse(text string) (Map, ParentMap, error) {
	root, err := uixml.ParseString(text)
	if err != nil {
		return nil, nil, errors.ParseList{
			errors.NewParsef(errors.ErrSchemaMalformed, "", "schema does not parse: %v", err),
		}
	}

	defs := make(Map)
	parents := make(ParentMap)
	for _, child := range root.Children {
		if !child.Is("ElementType") {
			continue
		}
		name := child.Attr("name")
		if name == "" {
			continue
		}
		def := &Definition{
			Name:      name,
			SuperType: child.Attr("superType"),
		}
		for _, prop := range child.Children {
			if !prop.Is("property") {
				continue
			}
			p := Property{
				Name:      prop.Attr("name"),
				Type:      prop.Attr("type"),
				MinOccurs: intAttr(prop, "minOccurs", 0),
				MaxOccurs: intAttr(prop, "maxOccurs", 1),
				Reference: boolAttr(prop, "reference"),
			}
			if p.Name == "" {
				continue
			}
			p.Default, p.HasDefault = prop.LookupAttr("default")
			def.Properties = append(def.Properties, p)
		}
		defs[name] = def
		if def.SuperType != "" {
			parents[name] = def.SuperType
		}
	}
	return defs, parents, nil
}

// chain collects the supertype chain from typeName to the root, subclass
// first. The visited set bounds the walk so a cyclic chain yields a partial
// chain instead of looping.
func chain(defs Map, typeName string) []*Definition {
	var out []*Definition
	visited := make(map[string]bool)
	for name := typeName; name != ""; {
		if visited[name] {
			break
		}
		visited[name] = true
		def, ok := defs[name]
		if !ok {
			break
		}
		out = append(out, def)
		name = def.SuperType
	}
	return out
}

// InheritedProperties accumulates the properties of typeName and its
// supertype chain, base class first.
func InheritedProperties(defs Map, typeName string) []Property {
	types := chain(defs, typeName)
	var out []Property
	for i := len(types) - 1; i >= 0; i-- {
		out = append(out, types[i].Properties...)
	}
	return out
}

// InheritsFrom reports whether typeName has ancestor somewhere in its
// supertype chain. A cyclic chain that never reaches ancestor returns false.
func InheritsFrom(parents ParentMap, typeName, ancestor string) bool {
	visited := make(map[string]bool)
	for name := parents[typeName]; name != ""; name = parents[name] {
		if visited[name] {
			return false
		}
		visited[name] = true
		if strings.EqualFold(name, ancestor) {
			return true
		}
	}
	return false
}

// DefaultValues collects the explicit defaults of typeName and its supertype
// chain, converted per the declared property type. Properties without an
// explicit default are absent from the result.
func DefaultValues(defs Map, typeName string) map[string]any {
	out := make(map[string]any)
	for _, p := range InheritedProperties(defs, typeName) {
		if !p.HasDefault {
			continue
		}
		out[p.Name] = typedValue(p.Type, p.Default)
	}
	return out
}

func typedValue(kind, raw string) any {
	switch strings.ToLower(kind) {
	case "int", "integer":
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
		return 0
	case "float", "double":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		return 0.0
	case "bool", "boolean":
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
		return false
	default:
		return raw
	}
}

func intAttr(e *uixml.Element, name string, fallback int) int {
	raw, ok := e.LookupAttr(name)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}

func boolAttr(e *uixml.Element, name string) bool {
	raw, ok := e.LookupAttr(name)
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return v
}
