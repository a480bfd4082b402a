// Package writer serializes a parsed document back to the dialect.
//
// The round trip is semantic, not byte-exact: whitespace, comments, and
// attribute order of the original are not reproduced, but reparsing the
// output yields identical semantics. Every property is written only when it
// differs from its documented default, and properties are emitted in a
// fixed order so output is deterministic and diffable.
package writer

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/jacoelho/uidef/internal/node"
	"github.com/jacoelho/uidef/internal/parser"
)

const indentStep = "  "

// Serialize renders the document as dialect text.
func Serialize(doc *parser.Document) string {
	var b strings.Builder
	b.WriteString("<interface>\n")

	if doc.IsManifest() {
		b.WriteString(indentStep + "<loadlist>\n")
		for _, include := range doc.Includes {
			fmt.Fprintf(&b, "%s<include>%s</include>\n", indentStep+indentStep, escape(include))
		}
		b.WriteString(indentStep + "</loadlist>\n")
		b.WriteString("</interface>\n")
		return b.String()
	}

	writeTemplates(&b, doc, indentStep)
	for _, root := range doc.Roots {
		writeElement(&b, doc, root, indentStep)
	}

	b.WriteString("</interface>\n")
	return b.String()
}

// writeElement emits one element and its subtree. Emission order is fixed:
// identity, geometry, anchoring, offsets, appearance, style flags, template
// refs and extras, piece references, children.
func writeElement(b *strings.Builder, doc *parser.Document, id node.ID, indent string) {
	elem := doc.Arena.Get(id)
	if elem == nil {
		return
	}
	inner := indent + indentStep

	tag := elem.Tag
	if tag == "" {
		tag = elem.Kind.Tag()
	}
	b.WriteString(indent + "<" + tag)
	if elem.Item != "" {
		fmt.Fprintf(b, " item=\"%s\"", escape(elem.Item))
	}
	b.WriteString(">\n")

	if elem.ScreenID != "" {
		writeLeaf(b, inner, "id", elem.ScreenID)
	}
	if elem.X != 0 || elem.Y != 0 {
		fmt.Fprintf(b, "%s<location x=\"%d\" y=\"%d\"/>\n", inner, elem.X, elem.Y)
	}
	if elem.Width != 0 || elem.Height != 0 {
		fmt.Fprintf(b, "%s<size width=\"%d\" height=\"%d\"/>\n", inner, elem.Width, elem.Height)
	}
	writeAnchors(b, inner, elem.Anchors)
	writeOffsets(b, inner, elem.Offsets)
	if elem.Text != "" {
		writeLeaf(b, inner, "text", elem.Text)
	}
	if elem.Font != 0 {
		fmt.Fprintf(b, "%s<font>%d</font>\n", inner, elem.Font)
	}
	if elem.HasColor {
		fmt.Fprintf(b, "%s<color r=\"%d\" g=\"%d\" b=\"%d\" a=\"%d\"/>\n",
			inner, elem.Color.R, elem.Color.G, elem.Color.B, elem.Color.A)
	}
	if elem.Tooltip != "" {
		writeLeaf(b, inner, "tooltip", elem.Tooltip)
	}
	writeFlags(b, inner, elem.Flags)
	writeExtras(b, inner, elem.Extras)

	for _, name := range doc.Pending[id] {
		writeLeaf(b, inner, "piece", name)
	}
	for _, child := range elem.Children {
		writeElement(b, doc, child, inner)
	}

	b.WriteString(indent + "</" + tag + ">\n")
}

// writeAnchors emits only the booleans diverging from the implicit
// top/left-true, bottom/right-false convention.
func writeAnchors(b *strings.Builder, indent string, a node.Anchors) {
	def := node.DefaultAnchors()
	if a == def {
		return
	}
	b.WriteString(indent + "<anchors")
	if a.Top != def.Top {
		fmt.Fprintf(b, " top=\"%t\"", a.Top)
	}
	if a.Left != def.Left {
		fmt.Fprintf(b, " left=\"%t\"", a.Left)
	}
	if a.Bottom != def.Bottom {
		fmt.Fprintf(b, " bottom=\"%t\"", a.Bottom)
	}
	if a.Right != def.Right {
		fmt.Fprintf(b, " right=\"%t\"", a.Right)
	}
	b.WriteString("/>\n")
}

func writeOffsets(b *strings.Builder, indent string, o node.Offsets) {
	if o == (node.Offsets{}) {
		return
	}
	b.WriteString(indent + "<offsets")
	if o.Top != 0 {
		fmt.Fprintf(b, " top=\"%d\"", o.Top)
	}
	if o.Left != 0 {
		fmt.Fprintf(b, " left=\"%d\"", o.Left)
	}
	if o.Bottom != 0 {
		fmt.Fprintf(b, " bottom=\"%d\"", o.Bottom)
	}
	if o.Right != 0 {
		fmt.Fprintf(b, " right=\"%d\"", o.Right)
	}
	b.WriteString("/>\n")
}

// writeFlags emits one self-closing leaf per flag that is true.
func writeFlags(b *strings.Builder, indent string, f node.Flags) {
	flags := []struct {
		name string
		on   bool
	}{
		{"transparent", f.Transparent},
		{"border", f.Border},
		{"titlebar", f.TitleBar},
		{"closebox", f.CloseBox},
		{"minimizebox", f.MinimizeBox},
		{"tilebox", f.TileBox},
		{"sizable", f.Sizable},
		{"escapeclose", f.EscapeClose},
		{"vscroll", f.VScroll},
		{"hscroll", f.HScroll},
	}
	for _, flag := range flags {
		if flag.on {
			b.WriteString(indent + "<" + flag.name + "/>\n")
		}
	}
}

func writeExtras(b *strings.Builder, indent string, extras node.Extras) {
	switch v := extras.(type) {
	case nil:
	case *node.WindowExtras:
		if v.Template != "" {
			writeLeaf(b, indent, "windowtemplate", v.Template)
		}
	case *node.GaugeExtras:
		if v.Fill != 0 {
			fmt.Fprintf(b, "%s<fill>%g</fill>\n", indent, v.Fill)
		}
		if v.Orientation != node.Horizontal {
			writeLeaf(b, indent, "orientation", v.Orientation.String())
		}
		if v.Template != "" {
			writeLeaf(b, indent, "gaugetemplate", v.Template)
		}
	case *node.ButtonExtras:
		writeLeafNonEmpty(b, indent, "normal", v.Normal)
		writeLeafNonEmpty(b, indent, "hover", v.Hover)
		writeLeafNonEmpty(b, indent, "pressed", v.Pressed)
		writeLeafNonEmpty(b, indent, "disabled", v.Disabled)
		writeLeafNonEmpty(b, indent, "buttontemplate", v.Template)
	case *node.EditBoxExtras:
		if v.Limit != 0 {
			fmt.Fprintf(b, "%s<limit>%d</limit>\n", indent, v.Limit)
		}
		if v.Password {
			b.WriteString(indent + "<password/>\n")
		}
	case *node.SliderExtras:
		writeIntNonZero(b, indent, "min", v.Min)
		writeIntNonZero(b, indent, "max", v.Max)
		writeIntNonZero(b, indent, "step", v.Step)
	case *node.GridExtras:
		writeIntNonZero(b, indent, "rows", v.Rows)
		writeIntNonZero(b, indent, "cols", v.Cols)
		writeIntNonZero(b, indent, "cellwidth", v.CellWidth)
		writeIntNonZero(b, indent, "cellheight", v.CellHeight)
	case *node.ComboBoxExtras:
		for _, choice := range v.Choices {
			writeLeaf(b, indent, "choice", choice)
		}
	}
}

func writeLeaf(b *strings.Builder, indent, name, text string) {
	fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, name, escape(text), name)
}

func writeLeafNonEmpty(b *strings.Builder, indent, name, text string) {
	if text != "" {
		writeLeaf(b, indent, name, text)
	}
}

func writeIntNonZero(b *strings.Builder, indent, name string, v int) {
	if v != 0 {
		fmt.Fprintf(b, "%s<%s>%d</%s>\n", indent, name, v, name)
	}
}

func escape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
