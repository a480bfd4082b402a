package node

// Extras is the kind-specific attribute payload of an element. Each element
// kind with extra attributes has its own variant, so dispatch sites can
// switch exhaustively instead of probing a dynamic property bag.
type Extras interface {
	extrasVariant()
}

// WindowExtras carries the window-level draw-template reference.
type WindowExtras struct {
	Template string
}

// GaugeExtras carries gauge fill state and draw template.
type GaugeExtras struct {
	Fill        float64
	Orientation Orientation
	Template    string
}

// ButtonExtras carries the per-state texture set and draw template.
type ButtonExtras struct {
	Normal   string
	Hover    string
	Pressed  string
	Disabled string
	Template string
}

// EditBoxExtras carries input limits.
type EditBoxExtras struct {
	Limit    int
	Password bool
}

// SliderExtras carries the value range.
type SliderExtras struct {
	Min, Max, Step int
}

// GridExtras carries grid and cell dimensions.
type GridExtras struct {
	Rows, Cols            int
	CellWidth, CellHeight int
}

// ComboBoxExtras carries the ordered choice list.
type ComboBoxExtras struct {
	Choices []string
}

func (*WindowExtras) extrasVariant()   {}
func (*GaugeExtras) extrasVariant()    {}
func (*ButtonExtras) extrasVariant()   {}
func (*EditBoxExtras) extrasVariant()  {}
func (*SliderExtras) extrasVariant()   {}
func (*GridExtras) extrasVariant()     {}
func (*ComboBoxExtras) extrasVariant() {}

// Orientation selects the gauge fill direction.
type Orientation uint8

const (
	// Horizontal fills left to right.
	Horizontal Orientation = iota
	// Vertical fills bottom to top.
	Vertical
)

// String returns the dialect spelling of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// OrientationFor parses the dialect spelling; anything but "vertical" is
// horizontal, matching the dialect's tolerance.
func OrientationFor(s string) Orientation {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

func cloneExtras(e Extras) Extras {
	switch v := e.(type) {
	case nil:
		return nil
	case *WindowExtras:
		c := *v
		return &c
	case *GaugeExtras:
		c := *v
		return &c
	case *ButtonExtras:
		c := *v
		return &c
	case *EditBoxExtras:
		c := *v
		return &c
	case *SliderExtras:
		c := *v
		return &c
	case *GridExtras:
		c := *v
		return &c
	case *ComboBoxExtras:
		c := *v
		c.Choices = append([]string(nil), v.Choices...)
		return &c
	default:
		return nil
	}
}
