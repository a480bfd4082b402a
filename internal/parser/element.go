package parser

import (
	"strconv"
	"strings"

	"github.com/jacoelho/uidef/internal/node"
	"github.com/jacoelho/uidef/internal/uixml"
)

// parseElement reads one visual element and its subtree into the document
// arena. Missing or unparsable fields fall back to their defaults.
func (d *Document) parseElement(e *uixml.Element, parent node.ID) node.ID {
	kind, ok := node.KindForTag(e.Name)
	if !ok {
		if e.Is(tagWindow) {
			kind = node.KindWindow
		} else {
			kind = node.KindGeneric
		}
	}

	id := d.Arena.New(kind)
	elem := d.Arena.Get(id)
	elem.Parent = parent
	elem.Tag = strings.ToLower(e.Name)
	elem.Source = d.Filename
	elem.ScreenID = e.ChildText(tagID)
	elem.Item = strings.TrimSpace(e.Attr("item"))

	if loc := e.Child("location"); loc != nil {
		elem.X = intAttr(loc, "x", 0)
		elem.Y = intAttr(loc, "y", 0)
	}
	if size := e.Child("size"); size != nil {
		elem.Width = intAttr(size, "width", 0)
		elem.Height = intAttr(size, "height", 0)
	}
	if anchors := e.Child("anchors"); anchors != nil {
		elem.Anchors.Top = boolAttr(anchors, "top", true)
		elem.Anchors.Left = boolAttr(anchors, "left", true)
		elem.Anchors.Bottom = boolAttr(anchors, "bottom", false)
		elem.Anchors.Right = boolAttr(anchors, "right", false)
	}
	if offsets := e.Child("offsets"); offsets != nil {
		elem.Offsets.Top = intAttr(offsets, "top", 0)
		elem.Offsets.Left = intAttr(offsets, "left", 0)
		elem.Offsets.Bottom = intAttr(offsets, "bottom", 0)
		elem.Offsets.Right = intAttr(offsets, "right", 0)
	}
	if color := e.Child("color"); color != nil {
		elem.HasColor = true
		elem.Color = node.Color{
			R: byteAttr(color, "r"),
			G: byteAttr(color, "g"),
			B: byteAttr(color, "b"),
			A: byteAttr(color, "a"),
		}
	}
	elem.Font = fontIndex(e.ChildText("font"))
	elem.Text = e.ChildText("text")
	elem.Tooltip = e.ChildText("tooltip")
	parseFlags(e, &elem.Flags)
	elem.Extras = parseExtras(e, kind)

	for _, child := range e.Children {
		switch {
		case child.Is(tagPiece):
			if name := child.TrimmedText(); name != "" {
				d.Pending[id] = append(d.Pending[id], name)
			}
		case nonPieceTags[strings.ToLower(child.Name)]:
			// Property sub-structure, handled above.
		default:
			childID := d.parseElement(child, id)
			if childID != node.None {
				// Re-fetch: recursion may have grown the arena.
				d.Arena.Get(id).Children = append(d.Arena.Get(id).Children, childID)
			}
		}
	}

	if item := d.Arena.Get(id).Item; item != "" {
		d.Items[item] = id
	}
	return id
}

// parseFlags reads the style-flag leaves. An empty leaf means true; an
// unparsable value falls back to false.
func parseFlags(e *uixml.Element, flags *node.Flags) {
	flags.Transparent = flagLeaf(e, "transparent")
	flags.Border = flagLeaf(e, "border")
	flags.TitleBar = flagLeaf(e, "titlebar")
	flags.CloseBox = flagLeaf(e, "closebox")
	flags.MinimizeBox = flagLeaf(e, "minimizebox")
	flags.TileBox = flagLeaf(e, "tilebox")
	flags.Sizable = flagLeaf(e, "sizable")
	flags.EscapeClose = flagLeaf(e, "escapeclose")
	flags.VScroll = flagLeaf(e, "vscroll")
	flags.HScroll = flagLeaf(e, "hscroll")
}

func flagLeaf(e *uixml.Element, name string) bool {
	leaf := e.Child(name)
	if leaf == nil {
		return false
	}
	text := leaf.TrimmedText()
	if text == "" {
		return true
	}
	v, err := strconv.ParseBool(strings.ToLower(text))
	if err != nil {
		return false
	}
	return v
}

// parseExtras fills the kind-specific attribute payload via tag dispatch.
// Kinds without extra attributes get none.
func parseExtras(e *uixml.Element, kind node.Kind) node.Extras {
	switch kind {
	case node.KindWindow:
		return &node.WindowExtras{
			Template: e.ChildText("windowtemplate"),
		}
	case node.KindGauge:
		return &node.GaugeExtras{
			Fill:        floatChild(e, "fill"),
			Orientation: node.OrientationFor(e.ChildText("orientation")),
			Template:    e.ChildText("gaugetemplate"),
		}
	case node.KindButton:
		return &node.ButtonExtras{
			Normal:   e.ChildText("normal"),
			Hover:    e.ChildText("hover"),
			Pressed:  e.ChildText("pressed"),
			Disabled: e.ChildText("disabled"),
			Template: e.ChildText("buttontemplate"),
		}
	case node.KindEditBox:
		return &node.EditBoxExtras{
			Limit:    intChild(e, "limit"),
			Password: flagLeaf(e, "password"),
		}
	case node.KindSlider:
		return &node.SliderExtras{
			Min:  intChild(e, "min"),
			Max:  intChild(e, "max"),
			Step: intChild(e, "step"),
		}
	case node.KindGrid:
		return &node.GridExtras{
			Rows:       intChild(e, "rows"),
			Cols:       intChild(e, "cols"),
			CellWidth:  intChild(e, "cellwidth"),
			CellHeight: intChild(e, "cellheight"),
		}
	case node.KindComboBox:
		extras := &node.ComboBoxExtras{}
		for _, child := range e.Children {
			if child.Is("choice") {
				extras.Choices = append(extras.Choices, child.TrimmedText())
			}
		}
		return extras
	default:
		return nil
	}
}

func fontIndex(text string) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 0 || v > 6 {
		return 0
	}
	return v
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

func boolAttr(e *uixml.Element, name string, fallback bool) bool {
	raw, ok := e.LookupAttr(name)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return fallback
	}
	return v
}

func byteAttr(e *uixml.Element, name string) uint8 {
	v := intAttr(e, name, 0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func intChild(e *uixml.Element, name string) int {
	v, err := strconv.Atoi(e.ChildText(name))
	if err != nil {
		return 0
	}
	return v
}

func floatChild(e *uixml.Element, name string) float64 {
	v, err := strconv.ParseFloat(e.ChildText(name), 64)
	if err != nil {
		return 0
	}
	return v
}
