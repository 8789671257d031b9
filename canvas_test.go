package rt

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvas_Black(t *testing.T) {
	c := NewCanvas[float64](20, 10)
	require.Equal(t, 20, c.Width())
	require.Equal(t, 10, c.Height())
	require.Len(t, c.Pixels(), 200)

	for _, px := range c.Pixels() {
		assert.Equal(t, Color[float64]{}, px, "fresh canvas must be black")
	}
}

func TestNewCanvas_WithFill(t *testing.T) {
	bg := RGB(0.25, 0.5, 0.75)
	c := NewCanvas(4, 3, WithFill(bg))
	for _, px := range c.Pixels() {
		assert.Equal(t, bg, px)
	}
}

func TestCanvas_WriteAndReadPixel(t *testing.T) {
	c := NewCanvas[float64](10, 20)
	red := RGB(1.0, 0.0, 0.0)

	require.NoError(t, c.WritePixel(2, 3, red))

	got, err := c.PixelAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, red, got)

	// Row-major placement: (2,3) is slot 3*10+2.
	assert.Equal(t, red, c.Pixels()[3*10+2])
}

func TestCanvas_WritePixel_OutOfRange(t *testing.T) {
	c := NewCanvas[float64](10, 20)
	red := RGB(1.0, 0.0, 0.0)

	tests := []struct{ x, y int }{
		{10, 5}, {-1, 5}, {5, 20}, {5, -1}, {100, 100},
	}
	for _, tt := range tests {
		err := c.WritePixel(tt.x, tt.y, red)
		require.Error(t, err, "WritePixel(%d, %d)", tt.x, tt.y)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var idxErr *IndexError
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, tt.x, idxErr.X)
		assert.Equal(t, tt.y, idxErr.Y)
		assert.Equal(t, 10, idxErr.Width)
		assert.Equal(t, 20, idxErr.Height)
	}

	// The canvas is untouched after failed writes.
	for _, px := range c.Pixels() {
		assert.Equal(t, Color[float64]{}, px)
	}
}

func TestCanvas_IndexErrorMessage(t *testing.T) {
	c := NewCanvas[float64](10, 20)
	err := c.WritePixel(10, 5, RGB(1.0, 0, 0))
	require.Error(t, err)
	assert.EqualError(t, err, "rt: pixel (10, 5) out of range for 10x20 canvas")
}

func TestCanvas_PixelAt_OutOfRange(t *testing.T) {
	c := NewCanvas[float64](10, 20)

	_, err := c.PixelAt(10, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, &IndexError{X: 10, Y: 5, Width: 10, Height: 20}, idxErr)
}

func TestCanvas_InBounds(t *testing.T) {
	c := NewCanvas[float64](3, 2)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, c.InBounds(xy[0], xy[1]), "InBounds(%d, %d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, c.InBounds(xy[0], xy[1]), "InBounds(%d, %d)", xy[0], xy[1])
	}
}

func TestCanvas_Fill(t *testing.T) {
	c := NewCanvas[float64](5, 5)
	green := RGB(0.0, 1.0, 0.0)
	c.Fill(green)
	for _, px := range c.Pixels() {
		assert.Equal(t, green, px)
	}
}

func TestCanvas_RGB8Pixels(t *testing.T) {
	c := NewCanvas[float64](10, 2)
	for x := 0; x < 10; x++ {
		for y := 0; y < 2; y++ {
			require.NoError(t, c.WritePixel(x, y, RGB(1.0, 0.8, 0.6)))
		}
	}
	px := c.RGB8Pixels()
	require.Len(t, px, 20)
	for _, p := range px {
		assert.Equal(t, RGB8{R: 255, G: 204, B: 153}, p)
	}
}

func TestCanvas_ImageInterface(t *testing.T) {
	c := NewCanvas[float64](10, 20)
	require.NoError(t, c.WritePixel(2, 3, RGB(1.0, 0.0, 0.0)))

	var img image.Image = c
	assert.Equal(t, image.Rect(0, 0, 10, 20), img.Bounds())
	assert.Equal(t, color.NRGBAModel, img.ColorModel())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.At(2, 3))
	assert.Equal(t, color.NRGBA{A: 255}, img.At(0, 0))
	assert.Equal(t, color.NRGBA{}, img.At(-1, 0))
}

func TestCanvas_SavePPM(t *testing.T) {
	dir := t.TempDir()
	c := NewCanvas[float64](2, 2)
	require.NoError(t, c.WritePixel(0, 0, RGB(1.0, 1.0, 1.0)))

	path := dir + "/out.ppm"
	require.NoError(t, c.SavePPM(path))

	assert.FileExists(t, path)
}
