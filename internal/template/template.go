// Package template holds the reusable visual resource definitions declared
// at a document's top level, keyed by their document-local "item" name.
package template

// TextureInfo names a texture file and the source rectangle within it.
type TextureInfo struct {
	Item   string
	File   string
	X, Y   int
	Width  int
	Height int
}

// Frame is one drawable region of a texture.
type Frame struct {
	Item    string
	Texture string
	X, Y    int
	Width   int
	Height  int
}

// Animation is an ordered frame sequence with a per-frame delay.
type Animation struct {
	Item   string
	Frames []string
	Delay  int
}

// FrameTemplate is a 9-slice frame: four corners, four edges, and a center.
type FrameTemplate struct {
	Item        string
	TopLeft     string
	Top         string
	TopRight    string
	Left        string
	Center      string
	Right       string
	BottomLeft  string
	Bottom      string
	BottomRight string
}

// ButtonTemplate names the frame drawn for each button state.
type ButtonTemplate struct {
	Item     string
	Normal   string
	Hover    string
	Pressed  string
	Disabled string
}

// GaugeTemplate names the background and fill frames of a gauge.
type GaugeTemplate struct {
	Item       string
	Background string
	Fill       string
}

// WindowTemplate names the chrome resources of a window.
type WindowTemplate struct {
	Item     string
	Frame    string
	TitleBar string
	CloseBox string
}

// Library indexes template records by item name, one map per record kind.
type Library struct {
	Textures       map[string]*TextureInfo
	Frames         map[string]*Frame
	Animations     map[string]*Animation
	FrameTemplates map[string]*FrameTemplate
	Buttons        map[string]*ButtonTemplate
	Gauges         map[string]*GaugeTemplate
	Windows        map[string]*WindowTemplate
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		Textures:       make(map[string]*TextureInfo),
		Frames:         make(map[string]*Frame),
		Animations:     make(map[string]*Animation),
		FrameTemplates: make(map[string]*FrameTemplate),
		Buttons:        make(map[string]*ButtonTemplate),
		Gauges:         make(map[string]*GaugeTemplate),
		Windows:        make(map[string]*WindowTemplate),
	}
}

// Merge copies every record of other into the library. On an item-name
// collision the record from other wins, so merging documents in load order
// gives last-loaded-wins semantics.
func (l *Library) Merge(other *Library) {
	if other == nil {
		return
	}
	for name, t := range other.Textures {
		l.Textures[name] = t
	}
	for name, f := range other.Frames {
		l.Frames[name] = f
	}
	for name, a := range other.Animations {
		l.Animations[name] = a
	}
	for name, ft := range other.FrameTemplates {
		l.FrameTemplates[name] = ft
	}
	for name, b := range other.Buttons {
		l.Buttons[name] = b
	}
	for name, g := range other.Gauges {
		l.Gauges[name] = g
	}
	for name, w := range other.Windows {
		l.Windows[name] = w
	}
}

// Len returns the total number of records across all kinds.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Textures) + len(l.Frames) + len(l.Animations) +
		len(l.FrameTemplates) + len(l.Buttons) + len(l.Gauges) + len(l.Windows)
}
