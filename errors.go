package rt

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches any pixel access outside a canvas. Use
// errors.Is(err, ErrOutOfRange) when the offending coordinates do not
// matter; use errors.As with *IndexError when they do.
var ErrOutOfRange = errors.New("rt: pixel coordinates out of range")

// IndexError reports a pixel access outside the canvas. It carries the
// attempted coordinates and the canvas dimensions for diagnostics.
type IndexError struct {
	X, Y          int
	Width, Height int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("rt: pixel (%d, %d) out of range for %dx%d canvas",
		e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfRange, so sentinel matching
// works through errors.Is.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}
