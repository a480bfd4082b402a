package uixml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	require := require.New(t)

	root, err := ParseString(`<root>
		<child attr="value">text content</child>
		<child2>more</child2>
	</root>`)
	require.NoError(err)
	require.Equal("root", root.Name)
	require.Len(root.Children, 2)

	child := root.Children[0]
	require.Equal("child", child.Name)
	require.Equal("value", child.Attr("attr"))
	require.Equal("text content", child.TrimmedText())
	require.Equal(root, child.Parent())
	require.Nil(root.Parent())
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "unclosed", text: "<root><child>"},
		{name: "empty", text: ""},
		{name: "trailing element", text: "<root/><extra/>"},
		{name: "mismatched", text: "<root></other>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.text)
			require.Error(t, err)
		})
	}
}

func TestLookupsIgnoreCase(t *testing.T) {
	require := require.New(t)

	root, err := ParseString(`<Root Attr="v"><Child>x</Child></Root>`)
	require.NoError(err)

	require.True(root.Is("root"))
	require.Equal("v", root.Attr("attr"))
	require.NotNil(root.Child("child"))
	require.Equal("x", root.ChildText("CHILD"))
}

func TestAbsentLookups(t *testing.T) {
	require := require.New(t)

	root, err := ParseString(`<root/>`)
	require.NoError(err)

	require.Nil(root.Child("missing"))
	require.Empty(root.ChildText("missing"))
	_, ok := root.LookupAttr("missing")
	require.False(ok)

	var nilElem *Element
	require.False(nilElem.Is("x"))
	require.Empty(nilElem.TrimmedText())
}

func TestParse_IgnoresNamespaceDeclarations(t *testing.T) {
	require := require.New(t)

	root, err := ParseString(`<root xmlns="urn:x" a="1"/>`)
	require.NoError(err)
	require.Len(root.Attrs, 1)
	require.Equal("a", root.Attrs[0].Name)
}
