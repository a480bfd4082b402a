package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/uidef/internal/node"
	"github.com/jacoelho/uidef/internal/parser"
)

const fullDoc = `<interface>
	<textureinfo item="Skin" file="skin.tga" width="256" height="256"/>
	<frame item="Frame1" texture="Skin" x="4" y="4" width="32" height="32"/>
	<window item="MainWindow">
		<id>Main</id>
		<location x="10" y="20"/>
		<size width="300" height="200"/>
		<anchors top="false" right="true"/>
		<offsets left="5" bottom="-3"/>
		<color r="255" g="128" b="0" a="200"/>
		<font>2</font>
		<text>Hello &amp; welcome</text>
		<tooltip>MainTip</tooltip>
		<titlebar/>
		<sizable/>
		<windowtemplate>Chrome</windowtemplate>
		<piece>Frame1</piece>
		<button>
			<id>OK</id>
			<normal>btn_ok</normal>
			<pressed>btn_ok_p</pressed>
		</button>
		<gauge>
			<id>HP</id>
			<fill>0.75</fill>
			<orientation>vertical</orientation>
		</gauge>
		<editbox>
			<id>Name</id>
			<limit>16</limit>
			<password/>
		</editbox>
		<slider>
			<id>Vol</id>
			<min>1</min>
			<max>10</max>
			<step>2</step>
		</slider>
		<grid>
			<id>Bag</id>
			<rows>4</rows>
			<cols>5</cols>
			<cellwidth>32</cellwidth>
			<cellheight>32</cellheight>
		</grid>
		<combobox>
			<id>Mode</id>
			<choice>easy</choice>
			<choice>hard</choice>
		</combobox>
		<minimap>
			<id>Map</id>
		</minimap>
	</window>
</interface>`

// Serialize-then-reparse preserves every semantic property of the tree.
func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	original := parser.Parse(fullDoc, "ui.xml")
	require.Empty(original.Errors)

	reparsed := parser.Parse(Serialize(original), "ui.xml")
	require.Empty(reparsed.Errors)

	require.Len(reparsed.Roots, len(original.Roots))
	for i := range original.Roots {
		requireEqualSubtree(require, original, original.Roots[i], reparsed, reparsed.Roots[i])
	}

	require.Equal(original.Templates.Textures["Skin"], reparsed.Templates.Textures["Skin"])
	require.Equal(original.Templates.Frames["Frame1"], reparsed.Templates.Frames["Frame1"])
	require.Equal(original.Pending[original.Roots[0]], reparsed.Pending[reparsed.Roots[0]])
}

func requireEqualSubtree(require *require.Assertions, a *parser.Document, aID node.ID, b *parser.Document, bID node.ID) {
	left := a.Arena.Get(aID)
	right := b.Arena.Get(bID)

	require.Equal(left.Kind, right.Kind)
	require.Equal(left.Tag, right.Tag)
	require.Equal(left.ScreenID, right.ScreenID)
	require.Equal(left.Item, right.Item)
	require.Equal(left.X, right.X)
	require.Equal(left.Y, right.Y)
	require.Equal(left.Width, right.Width)
	require.Equal(left.Height, right.Height)
	require.Equal(left.Anchors, right.Anchors)
	require.Equal(left.Offsets, right.Offsets)
	require.Equal(left.Text, right.Text)
	require.Equal(left.Font, right.Font)
	require.Equal(left.HasColor, right.HasColor)
	require.Equal(left.Color, right.Color)
	require.Equal(left.Tooltip, right.Tooltip)
	require.Equal(left.Flags, right.Flags)
	require.Equal(left.Extras, right.Extras)

	require.Len(right.Children, len(left.Children))
	for i := range left.Children {
		requireEqualSubtree(require, a, left.Children[i], b, right.Children[i])
	}
}

// A freshly created node with untouched defaults emits no geometry, anchor,
// or style tags.
func TestDefaultSuppression(t *testing.T) {
	require := require.New(t)

	doc := parser.Parse(`<interface><window><id>Main</id></window></interface>`, "ui.xml")
	out := Serialize(doc)

	require.Contains(out, "<id>Main</id>")
	require.NotContains(out, "<location")
	require.NotContains(out, "<size")
	require.NotContains(out, "<anchors")
	require.NotContains(out, "<offsets")
	require.NotContains(out, "<color")
	require.NotContains(out, "<font")
	require.NotContains(out, "<transparent")
	require.NotContains(out, "<titlebar")
	require.NotContains(out, "<windowtemplate")
}

func TestSerialize_Deterministic(t *testing.T) {
	require := require.New(t)

	doc := parser.Parse(fullDoc, "ui.xml")
	first := Serialize(doc)
	for i := 0; i < 5; i++ {
		require.Equal(first, Serialize(doc))
	}
}

func TestSerialize_Manifest(t *testing.T) {
	require := require.New(t)

	doc := parser.Parse(`<interface><loadlist>
		<include>a.xml</include>
		<include>b.xml</include>
	</loadlist></interface>`, "root.xml")

	out := Serialize(doc)
	reparsed := parser.Parse(out, "root.xml")
	require.True(reparsed.IsManifest())
	require.Equal([]string{"a.xml", "b.xml"}, reparsed.Includes)

	require.Less(strings.Index(out, "a.xml"), strings.Index(out, "b.xml"))
}

func TestSerialize_AnchorsOnlyWhenDiverging(t *testing.T) {
	require := require.New(t)

	doc := parser.Parse(`<interface><window>
		<id>Main</id>
		<anchors bottom="true"/>
	</window></interface>`, "ui.xml")

	out := Serialize(doc)
	require.Contains(out, `<anchors bottom="true"/>`)
	require.NotContains(out, `top=`)
	require.NotContains(out, `left=`)
	require.NotContains(out, `right=`)
}
