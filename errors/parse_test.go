package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Error(t *testing.T) {
	require := require.New(t)

	withFile := NewParse(ErrDocumentMalformed, "root does not parse", "ui.xml")
	require.Equal("[document-malformed] root does not parse in ui.xml", withFile.Error())

	withoutFile := NewParsef(ErrImageDecode, "", "unsupported image type %d", 7)
	require.Equal("[image-decode] unsupported image type 7", withoutFile.Error())

	var nilParse *Parse
	require.Equal("parse <nil>", nilParse.Error())
}

func TestParseList_Error(t *testing.T) {
	require := require.New(t)

	require.Equal("no parse errors", ParseList{}.Error())

	one := ParseList{NewParse(ErrDocumentMalformed, "bad", "a.xml")}
	require.Equal("[document-malformed] bad in a.xml", one.Error())

	two := append(one, NewParse(ErrDocumentMalformed, "worse", "b.xml"))
	require.Equal("[document-malformed] bad in a.xml (and 1 more)", two.Error())
}

func TestAsParses(t *testing.T) {
	require := require.New(t)

	list := ParseList{NewParse(ErrImageDecode, "bad", "")}

	got, ok := AsParses(list)
	require.True(ok)
	require.Len(got, 1)

	got, ok = AsParses(fmt.Errorf("wrapped: %w", list))
	require.True(ok)
	require.Len(got, 1)

	_, ok = AsParses(fmt.Errorf("plain"))
	require.False(ok)

	_, ok = AsParses(nil)
	require.False(ok)
}
