package colormath

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB(t *testing.T) {
	c, err := NewRGB(255, 165, 0)
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 165}, c)

	for _, in := range [][3]int{{-1, 0, 0}, {0, 256, 0}, {0, 0, 1000}} {
		_, err := NewRGB(in[0], in[1], in[2])
		assert.ErrorIs(t, err, ErrInvalidChannel, "input %v", in)
	}
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("100, 150,200")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 100, G: 150, B: 200}, c)

	for _, in := range []string{"", "1,2", "1,2,3,4", "a,b,c", "0,0,256"} {
		_, err := ParseRGB(in)
		assert.ErrorIs(t, err, ErrInvalidChannel, "input %q", in)
	}
}

func TestRGB_ColorModel(t *testing.T) {
	got := color.NRGBAModel.Convert(RGB{R: 75, G: 0, B: 130}).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 75, G: 0, B: 130, A: 255}, got)
	assert.Equal(t, "(75, 0, 130)", RGB{R: 75, B: 130}.String())
}
