package texture

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func tgaBytes() []byte {
	data := make([]byte, 18)
	data[2] = 2 // uncompressed true color
	binary.LittleEndian.PutUint16(data[12:14], 1)
	binary.LittleEndian.PutUint16(data[14:16], 1)
	data[16] = 24
	data[17] = 0x20
	return append(data, 1, 2, 3)
}

func TestDecode_TGA(t *testing.T) {
	require := require.New(t)

	img, err := Decode(tgaBytes(), "skin.tga")
	require.NoError(err)
	require.Equal(1, img.Width)
	require.Equal(1, img.Height)
	require.Equal([]byte{3, 2, 1, 255}, img.Pix)
	require.Equal(Surface(0), img.Surface)
}

func TestDecode_PNGDelegate(t *testing.T) {
	require := require.New(t)

	img, err := Decode(pngBytes(t), "icon.png")
	require.NoError(err)
	require.Equal(2, img.Width)
	require.Equal(1, img.Height)
	require.Equal([]byte{255, 0, 0, 255, 0, 255, 0, 255}, img.Pix)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, "cursor.gif")
	require.Error(t, err)
}

func TestDecode_CorruptDelegateInput(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, "icon.png")
	require.Error(t, err)
}

func TestCache_LoadHitsReturnSameImage(t *testing.T) {
	require := require.New(t)

	cache, err := NewCache(4)
	require.NoError(err)

	first, err := cache.Load("skin.tga", tgaBytes())
	require.NoError(err)
	require.Equal(Surface(1), first.Surface)

	// Hit: same instance, no fresh surface.
	second, err := cache.Load("skin.tga", tgaBytes())
	require.NoError(err)
	require.Same(first, second)
	require.Equal(1, cache.Len())

	got, ok := cache.Get("skin.tga")
	require.True(ok)
	require.Same(first, got)
}

func TestCache_DecodeFailureIsNotCached(t *testing.T) {
	require := require.New(t)

	cache, err := NewCache(4)
	require.NoError(err)

	_, err = cache.Load("bad.tga", []byte{1, 2})
	require.Error(err)
	require.Zero(cache.Len())
}

func TestCache_Evicts(t *testing.T) {
	require := require.New(t)

	cache, err := NewCache(1)
	require.NoError(err)

	_, err = cache.Load("a.tga", tgaBytes())
	require.NoError(err)
	_, err = cache.Load("b.tga", tgaBytes())
	require.NoError(err)

	require.Equal(1, cache.Len())
	_, ok := cache.Get("a.tga")
	require.False(ok)
}
