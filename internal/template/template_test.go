package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge_LastLoadedWins(t *testing.T) {
	require := require.New(t)

	first := NewLibrary()
	first.Frames["Frame1"] = &Frame{Item: "Frame1", Texture: "first"}
	first.Textures["Skin"] = &TextureInfo{Item: "Skin", File: "skin.tga"}

	second := NewLibrary()
	second.Frames["Frame1"] = &Frame{Item: "Frame1", Texture: "second"}
	second.Windows["Chrome"] = &WindowTemplate{Item: "Chrome"}

	merged := NewLibrary()
	merged.Merge(first)
	merged.Merge(second)

	require.Equal(3, merged.Len())
	require.Equal("second", merged.Frames["Frame1"].Texture)
	require.Equal("skin.tga", merged.Textures["Skin"].File)
	require.NotNil(merged.Windows["Chrome"])
}

func TestMerge_Nil(t *testing.T) {
	lib := NewLibrary()
	lib.Merge(nil)
	require.Zero(t, lib.Len())

	var nilLib *Library
	require.Zero(t, nilLib.Len())
}
