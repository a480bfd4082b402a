package writer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jacoelho/uidef/internal/parser"
)

// writeTemplates emits the document's template records, grouped by kind and
// sorted by item name. The source declaration order is not semantic, so the
// sort keeps output deterministic.
func writeTemplates(b *strings.Builder, doc *parser.Document, indent string) {
	lib := doc.Templates
	if lib == nil || lib.Len() == 0 {
		return
	}

	for _, name := range slices.Sorted(maps.Keys(lib.Textures)) {
		t := lib.Textures[name]
		fmt.Fprintf(b, "%s<textureinfo item=\"%s\" file=\"%s\"", indent, escape(t.Item), escape(t.File))
		writeRect(b, t.X, t.Y, t.Width, t.Height)
		b.WriteString("/>\n")
	}
	for _, name := range slices.Sorted(maps.Keys(lib.Frames)) {
		f := lib.Frames[name]
		fmt.Fprintf(b, "%s<frame item=\"%s\" texture=\"%s\"", indent, escape(f.Item), escape(f.Texture))
		writeRect(b, f.X, f.Y, f.Width, f.Height)
		b.WriteString("/>\n")
	}
	for _, name := range slices.Sorted(maps.Keys(lib.Animations)) {
		a := lib.Animations[name]
		fmt.Fprintf(b, "%s<animation item=\"%s\"", indent, escape(a.Item))
		if a.Delay != 0 {
			fmt.Fprintf(b, " delay=\"%d\"", a.Delay)
		}
		b.WriteString(">\n")
		for _, frame := range a.Frames {
			writeLeaf(b, indent+indentStep, "frame", frame)
		}
		fmt.Fprintf(b, "%s</animation>\n", indent)
	}
	for _, name := range slices.Sorted(maps.Keys(lib.FrameTemplates)) {
		ft := lib.FrameTemplates[name]
		fmt.Fprintf(b, "%s<frametemplate item=\"%s\">\n", indent, escape(ft.Item))
		inner := indent + indentStep
		writeLeafNonEmpty(b, inner, "topleft", ft.TopLeft)
		writeLeafNonEmpty(b, inner, "top", ft.Top)
		writeLeafNonEmpty(b, inner, "topright", ft.TopRight)
		writeLeafNonEmpty(b, inner, "left", ft.Left)
		writeLeafNonEmpty(b, inner, "center", ft.Center)
		writeLeafNonEmpty(b, inner, "right", ft.Right)
		writeLeafNonEmpty(b, inner, "bottomleft", ft.BottomLeft)
		writeLeafNonEmpty(b, inner, "bottom", ft.Bottom)
		writeLeafNonEmpty(b, inner, "bottomright", ft.BottomRight)
		fmt.Fprintf(b, "%s</frametemplate>\n", indent)
	}
	for _, name := range slices.Sorted(maps.Keys(lib.Buttons)) {
		bt := lib.Buttons[name]
		fmt.Fprintf(b, "%s<buttontemplate item=\"%s\">\n", indent, escape(bt.Item))
		inner := indent + indentStep
		writeLeafNonEmpty(b, inner, "normal", bt.Normal)
		writeLeafNonEmpty(b, inner, "hover", bt.Hover)
		writeLeafNonEmpty(b, inner, "pressed", bt.Pressed)
		writeLeafNonEmpty(b, inner, "disabled", bt.Disabled)
		fmt.Fprintf(b, "%s</buttontemplate>\n", indent)
	}
	for _, name := range slices.Sorted(maps.Keys(lib.Gauges)) {
		gt := lib.Gauges[name]
		fmt.Fprintf(b, "%s<gaugetemplate item=\"%s\">\n", indent, escape(gt.Item))
		inner := indent + indentStep
		writeLeafNonEmpty(b, inner, "background", gt.Background)
		writeLeafNonEmpty(b, inner, "fill", gt.Fill)
		fmt.Fprintf(b, "%s</gaugetemplate>\n", indent)
	}
	for _, name := range slices.Sorted(maps.Keys(lib.Windows)) {
		wt := lib.Windows[name]
		fmt.Fprintf(b, "%s<windowtemplate item=\"%s\">\n", indent, escape(wt.Item))
		inner := indent + indentStep
		writeLeafNonEmpty(b, inner, "frame", wt.Frame)
		writeLeafNonEmpty(b, inner, "titlebar", wt.TitleBar)
		writeLeafNonEmpty(b, inner, "closebox", wt.CloseBox)
		fmt.Fprintf(b, "%s</windowtemplate>\n", indent)
	}
}

func writeRect(b *strings.Builder, x, y, width, height int) {
	if x != 0 {
		fmt.Fprintf(b, " x=\"%d\"", x)
	}
	if y != 0 {
		fmt.Fprintf(b, " y=\"%d\"", y)
	}
	if width != 0 {
		fmt.Fprintf(b, " width=\"%d\"", width)
	}
	if height != 0 {
		fmt.Fprintf(b, " height=\"%d\"", height)
	}
}
