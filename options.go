package rt

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default black canvas
//	c := rt.NewCanvas[float64](900, 550)
//
//	// Pre-filled background
//	c := rt.NewCanvas(900, 550, rt.WithFill(rt.RGB(1.0, 1.0, 1.0)))
type CanvasOption[T Float] func(*canvasOptions[T])

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions[T Float] struct {
	fill    Color[T]
	hasFill bool
}

// WithFill sets the initial color of every pixel. Without it the canvas
// starts black.
func WithFill[T Float](c Color[T]) CanvasOption[T] {
	return func(o *canvasOptions[T]) {
		o.fill = c
		o.hasFill = true
	}
}
