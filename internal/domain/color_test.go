package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(128), rgb.G)
	assert.Equal(t, uint8(64), rgb.B)
}

func TestRGBEquals(t *testing.T) {
	rgb1 := NewRGB(100, 150, 200)
	rgb2 := NewRGB(100, 150, 200)
	rgb3 := NewRGB(100, 150, 201)

	assert.True(t, rgb1.Equals(rgb2))
	assert.False(t, rgb1.Equals(rgb3))
}

func TestRGBString(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, "RGB(255, 128, 64)", rgb.String())
}

func TestParseHex(t *testing.T) {
	rgb, err := ParseHex("#d30000")
	require.NoError(t, err)
	assert.Equal(t, NewRGB(0xd3, 0, 0), rgb)

	rgb, err = ParseHex("3BB143")
	require.NoError(t, err)
	assert.Equal(t, NewRGB(0x3b, 0xb1, 0x43), rgb)
}

func TestParseHexInvalid(t *testing.T) {
	_, err := ParseHex("#fff")
	assert.Error(t, err)

	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)

	_, err = ParseHex("fb-aqua")
	assert.Error(t, err)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#000000", NewRGB(0, 0, 0).Hex())
	assert.Equal(t, "#3bb143", NewRGB(0x3b, 0xb1, 0x43).Hex())
	assert.Equal(t, "#0a0b0c", NewRGB(10, 11, 12).Hex())
}

func TestUint32(t *testing.T) {
	assert.Equal(t, uint32(0xd30000), NewRGB(0xd3, 0, 0).Uint32())
	assert.Equal(t, NewRGB(0x12, 0x34, 0x56), FromUint32(0x123456))
}
