// Package node holds the arena-allocated element model shared by the parser,
// resolver, and serializer.
//
// Elements live in an Arena and refer to each other by index, children as
// index lists and the parent as an optional index, so cross-document cloning
// never aliases live references.
package node

import "strings"

// ID identifies an element within its arena.
type ID int32

// None marks an absent element reference.
const None ID = -1

// Kind is the element type discriminator.
type Kind uint8

const (
	// KindGeneric covers tags outside the known visual vocabulary.
	KindGeneric Kind = iota
	// KindWindow is the root window element.
	KindWindow
	// KindButton is a push button.
	KindButton
	// KindGauge is a fillable gauge bar.
	KindGauge
	// KindEditBox is a text input field.
	KindEditBox
	// KindSlider is a value slider.
	KindSlider
	// KindGrid is a cell grid.
	KindGrid
	// KindComboBox is a drop-down choice list.
	KindComboBox
	// KindStatic is a static text label.
	KindStatic
	// KindPicture is an image panel.
	KindPicture
	// KindListBox is a scrolling list.
	KindListBox
	// KindCheckBox is a toggle box.
	KindCheckBox
)

var kindTags = map[Kind]string{
	KindGeneric:  "control",
	KindWindow:   "window",
	KindButton:   "button",
	KindGauge:    "gauge",
	KindEditBox:  "editbox",
	KindSlider:   "slider",
	KindGrid:     "grid",
	KindComboBox: "combobox",
	KindStatic:   "static",
	KindPicture:  "picture",
	KindListBox:  "listbox",
	KindCheckBox: "checkbox",
}

var tagKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTags))
	for k, tag := range kindTags {
		m[tag] = k
	}
	return m
}()

// KindForTag maps a dialect tag name to its kind; ok is false for tags
// outside the visual vocabulary.
func KindForTag(tag string) (Kind, bool) {
	k, ok := tagKinds[strings.ToLower(tag)]
	return k, ok
}

// Tag returns the dialect tag name for the kind.
func (k Kind) Tag() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "control"
}

// Color is an RGBA color override.
type Color struct {
	R, G, B, A uint8
}

// Anchors holds the four independent anchor booleans.
type Anchors struct {
	Top, Left, Bottom, Right bool
}

// DefaultAnchors returns the dialect's implicit anchoring: top and left
// anchored, bottom and right free.
func DefaultAnchors() Anchors {
	return Anchors{Top: true, Left: true}
}

// Offsets holds the per-side anchor offsets.
type Offsets struct {
	Top, Left, Bottom, Right int
}

// Flags is the named boolean style-flag set. Every flag defaults to false.
type Flags struct {
	Transparent bool
	Border      bool
	TitleBar    bool
	CloseBox    bool
	MinimizeBox bool
	TileBox     bool
	Sizable     bool
	EscapeClose bool
	VScroll     bool
	HScroll     bool
}

// Element is one parsed UI component instance. Tag keeps the source tag
// name so elements outside the known vocabulary round-trip unchanged; when
// empty, the kind's canonical tag is used.
type Element struct {
	Kind     Kind
	Tag      string
	ScreenID string
	Item     string

	X, Y          int
	Width, Height int

	Anchors Anchors
	Offsets Offsets

	Text     string
	Font     int
	Color    Color
	HasColor bool
	Tooltip  string

	Flags  Flags
	Extras Extras

	Children []ID
	Parent   ID
	Source   string
}

// Arena owns a set of elements addressed by ID.
type Arena struct {
	nodes []Element
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates an element of the given kind and returns its id.
func (a *Arena) New(kind Kind) ID {
	id := ID(len(a.nodes))
	a.nodes = append(a.nodes, Element{
		Kind:    kind,
		Anchors: DefaultAnchors(),
		Parent:  None,
	})
	return id
}

// Get returns the element for id; nil when id is out of range.
func (a *Arena) Get(id ID) *Element {
	if a == nil || id < 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return &a.nodes[id]
}

// Len returns the number of allocated elements.
func (a *Arena) Len() int {
	if a == nil {
		return 0
	}
	return len(a.nodes)
}

// CloneFrom deep-copies the subtree rooted at srcID in src into the arena,
// assigning fresh ids throughout. The clone's parent is set to parent; the
// caller is responsible for appending the returned id to the parent's child
// list. Cloned subtrees share no state with the source.
func (a *Arena) CloneFrom(src *Arena, srcID, parent ID) ID {
	srcElem := src.Get(srcID)
	if srcElem == nil {
		return None
	}

	id := a.New(srcElem.Kind)
	elem := a.Get(id)
	children := srcElem.Children

	*elem = *srcElem
	elem.Parent = parent
	elem.Children = nil
	elem.Extras = cloneExtras(srcElem.Extras)

	for _, childID := range children {
		cloned := a.CloneFrom(src, childID, id)
		if cloned == None {
			continue
		}
		// Get again: New may have grown the backing slice.
		a.Get(id).Children = append(a.Get(id).Children, cloned)
	}
	return id
}

// Walk visits id and its subtree depth-first.
func (a *Arena) Walk(id ID, fn func(ID, *Element)) {
	elem := a.Get(id)
	if elem == nil {
		return
	}
	fn(id, elem)
	for _, child := range elem.Children {
		a.Walk(child, fn)
	}
}
