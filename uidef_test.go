package uidef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSerializeRoundTrip(t *testing.T) {
	require := require.New(t)

	doc := ParseDocument(`<interface>
		<window item="Main">
			<id>MainWindow</id>
			<size width="320" height="240"/>
			<titlebar/>
			<button><id>OK</id><text>OK</text></button>
		</window>
	</interface>`, "ui.xml")
	require.Empty(doc.Errors)

	reparsed := ParseDocument(Serialize(doc), "ui.xml")
	require.Empty(reparsed.Errors)
	require.Len(reparsed.Roots, 1)

	window := reparsed.Arena.Get(reparsed.Roots[0])
	require.Equal("MainWindow", window.ScreenID)
	require.Equal(320, window.Width)
	require.True(window.Flags.TitleBar)
	require.Len(window.Children, 1)
	require.Equal("OK", reparsed.Arena.Get(window.Children[0]).Text)
}

func TestResolveReferences(t *testing.T) {
	require := require.New(t)

	defs := ParseDocument(`<interface>
		<static item="Frame1"><id>S</id></static>
	</interface>`, "a.xml")
	uses := ParseDocument(`<interface>
		<window><id>X</id><piece>Frame1</piece></window>
	</interface>`, "b.xml")

	warnings := ResolveReferences([]*Document{defs, uses})
	require.Empty(warnings)
	require.Len(uses.Arena.Get(uses.Roots[0]).Children, 1)
}

func TestParseSchema(t *testing.T) {
	require := require.New(t)

	schema, err := ParseSchema(`<schema>
		<ElementType name="control">
			<property name="text" type="string" default=""/>
			<property name="font" type="int" default="0"/>
		</ElementType>
		<ElementType name="button" superType="control">
			<property name="normal" type="string" reference="true"/>
		</ElementType>
	</schema>`)
	require.NoError(err)

	def, ok := schema.Definition("button")
	require.True(ok)
	require.Equal("control", def.SuperType)

	props := schema.InheritedProperties("button")
	require.Equal("text", props[0].Name)
	require.Equal("normal", props[len(props)-1].Name)

	require.True(schema.InheritsFrom("button", "control"))
	require.False(schema.InheritsFrom("control", "button"))

	values := schema.DefaultValues("button")
	require.Equal("", values["text"])
	require.Equal(0, values["font"])
}

func TestParseSchema_Malformed(t *testing.T) {
	_, err := ParseSchema("<schema")
	require.Error(t, err)
}

func TestDecodeTexture(t *testing.T) {
	require := require.New(t)

	data := make([]byte, 18)
	data[2] = 2
	data[12] = 1 // width 1, little endian
	data[14] = 1 // height 1
	data[16] = 24
	data[17] = 0x20
	data = append(data, 1, 2, 3)

	img, err := DecodeTexture(data, "skin.tga")
	require.NoError(err)
	require.Equal([]byte{3, 2, 1, 255}, img.Pix)

	_, err = DecodeTexture(nil, "skin.xyz")
	require.Error(err)
}
