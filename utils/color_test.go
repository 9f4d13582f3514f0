package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_HexToNRGBA(t *testing.T) {
	testCases := map[string]color.NRGBA{
		"#3399E6":   {R: 0x33, G: 0x99, B: 0xe6, A: 0xff},
		"66ccff":    {R: 0x66, G: 0xcc, B: 0xff, A: 0xff},
		"#fff":      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		"#FFFFFF80": {R: 0xff, G: 0xff, B: 0xff, A: 0x80},
		" #000 ":    {A: 0xff},
	}
	for hex, expected := range testCases {
		c, err := HexToNRGBA(hex)
		assert.NoError(t, err, hex)
		assert.Equal(t, expected, c, hex)
	}
}

func TestColor_HexToNRGBAInvalid(t *testing.T) {
	for _, hex := range []string{"", "#", "#12", "#12345", "#GGGGGG", "#1234567890"} {
		_, err := HexToNRGBA(hex)
		assert.Error(t, err, hex)
	}
}

func TestColor_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"png", "jpg"}, "jpg"))
	assert.False(t, Contains([]string{"png", "jpg"}, "bmp"))
	assert.False(t, Contains([]int{}, 0))
}
