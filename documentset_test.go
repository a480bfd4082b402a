package uidef

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"root.xml": &fstest.MapFile{Data: []byte(`<interface><loadlist>
			<include>shared.xml</include>
			<include>login.xml</include>
		</loadlist></interface>`)},
		"shared.xml": &fstest.MapFile{Data: []byte(`<interface>
			<textureinfo item="Skin" file="skin.tga" width="256" height="256"/>
			<static item="Frame1"><id>S</id><text>shared</text></static>
		</interface>`)},
		"login.xml": &fstest.MapFile{Data: []byte(`<interface>
			<window><id>Login</id><piece>Frame1</piece><piece>Missing</piece></window>
		</interface>`)},
	}
}

func TestDocumentSet_AddFSResolve(t *testing.T) {
	require := require.New(t)

	set := NewDocumentSet()
	require.NoError(set.AddFS(testFS(), "root.xml", "shared.xml", "login.xml"))

	docs := set.Documents()
	require.Len(docs, 3)
	require.Equal("root.xml", docs[0].Filename)
	require.True(docs[0].IsManifest())
	require.Equal([]string{"shared.xml", "login.xml"}, set.Includes())

	warnings := set.Resolve()
	require.Len(warnings, 1)
	require.Equal("Missing", warnings[0].Item)

	login := docs[2]
	window := login.Arena.Get(login.Roots[0])
	require.Len(window.Children, 1)
	require.Equal("shared", login.Arena.Get(window.Children[0]).Text)

	lib := set.TemplateLibrary()
	require.NotNil(lib)
	require.Equal("skin.tga", lib.Textures["Skin"].File)
}

func TestDocumentSet_ResolveIsIdempotent(t *testing.T) {
	require := require.New(t)

	set := NewDocumentSet()
	require.NoError(set.AddFS(testFS(), "shared.xml", "login.xml"))

	first := set.Resolve()
	second := set.Resolve()
	require.Equal(first, second)

	login := set.Documents()[1]
	window := login.Arena.Get(login.Roots[0])
	require.Len(window.Children, 1)
}

func TestDocumentSet_AddFSReadError(t *testing.T) {
	set := NewDocumentSet()
	require.Error(t, set.AddFS(testFS(), "absent.xml"))
}

func TestDocumentSet_MalformedDocumentFailsAlone(t *testing.T) {
	require := require.New(t)

	set := NewDocumentSet()
	bad := set.Add("bad.xml", "<interface><window>")
	good := set.Add("good.xml", "<interface><window><id>OK</id></window></interface>")

	require.Len(bad.Errors, 1)
	require.Empty(good.Errors)
	require.Len(good.Roots, 1)

	require.Empty(set.Resolve())
}

func TestDocumentSet_TemplateLibraryNilBeforeResolve(t *testing.T) {
	set := NewDocumentSet()
	require.Nil(t, set.TemplateLibrary())
}
