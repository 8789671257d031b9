package rt

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// Canvas is a rectangular pixel buffer of linear colors, stored in
// row-major order. The zero color is black, so a fresh canvas is black.
//
// The canvas owns its buffer exclusively; all mutation goes through
// WritePixel (or Fill), and reads go through PixelAt or Pixels.
type Canvas[T Float] struct {
	width  int
	height int
	pixels []Color[T]
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas[T Float](width, height int, opts ...CanvasOption[T]) *Canvas[T] {
	var options canvasOptions[T]
	for _, opt := range opts {
		opt(&options)
	}
	c := &Canvas[T]{
		width:  width,
		height: height,
		pixels: make([]Color[T], width*height),
	}
	if options.hasFill {
		c.Fill(options.fill)
	}
	return c
}

// Width returns the width of the canvas.
func (c *Canvas[T]) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas[T]) Height() int {
	return c.height
}

// InBounds reports whether (x, y) lies within the canvas.
func (c *Canvas[T]) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the color of the pixel at (x, y). It returns an
// *IndexError carrying the coordinates and canvas dimensions when
// (x, y) is out of range, and the canvas is left unchanged.
func (c *Canvas[T]) WritePixel(x, y int, col Color[T]) error {
	if !c.InBounds(x, y) {
		return &IndexError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	c.pixels[y*c.width+x] = col
	return nil
}

// PixelAt returns the color of the pixel at (x, y), or an *IndexError
// when (x, y) is out of range.
func (c *Canvas[T]) PixelAt(x, y int) (Color[T], error) {
	if !c.InBounds(x, y) {
		return Color[T]{}, &IndexError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	return c.pixels[y*c.width+x], nil
}

// Pixels returns the full buffer in row-major order. The slice aliases
// the canvas storage; treat it as read-only.
func (c *Canvas[T]) Pixels() []Color[T] {
	return c.pixels
}

// Fill sets every pixel to col.
func (c *Canvas[T]) Fill(col Color[T]) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// RGB8Pixels quantizes the whole buffer to 8-bit colors in row-major
// order. This is the form the PPM encoder consumes.
func (c *Canvas[T]) RGB8Pixels() []RGB8 {
	out := make([]RGB8, len(c.pixels))
	for i, px := range c.pixels {
		out[i] = px.RGB8()
	}
	return out
}

// At implements the image.Image interface. Pixels are quantized the
// same way as for PPM output and reported fully opaque.
func (c *Canvas[T]) At(x, y int) color.Color {
	if !c.InBounds(x, y) {
		return color.NRGBA{}
	}
	px := c.pixels[y*c.width+x].RGB8()
	return color.NRGBA{R: px.R, G: px.G, B: px.B, A: 255}
}

// Bounds implements the image.Image interface.
func (c *Canvas[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas[T]) ColorModel() color.Model {
	return color.NRGBAModel
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas[T]) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, c); err != nil {
		return err
	}
	Logger().Debug("saved png", "path", path, "width", c.width, "height", c.height)
	return nil
}

// SaveBMP saves the canvas to a BMP file.
func (c *Canvas[T]) SaveBMP(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := bmp.Encode(f, c); err != nil {
		return err
	}
	Logger().Debug("saved bmp", "path", path, "width", c.width, "height", c.height)
	return nil
}
