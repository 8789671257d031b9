// Package rt provides the numeric foundation for a software ray tracer.
//
// # Overview
//
// rt implements the small algebra a renderer is built on: fixed-width
// tuples with named component access, homogeneous points and vectors,
// linear RGB colors, and a Canvas pixel buffer that serializes to the
// plain-text PPM (P3) image format.
//
// # Quick Start
//
//	import "github.com/gogpu/rt"
//
//	// Build a canvas and plot a pixel
//	c := rt.NewCanvas[float64](900, 550)
//	red := rt.RGB(1.0, 0.0, 0.0)
//	if err := c.WritePixel(2, 3, red); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Save as a PPM text image
//	if err := c.SavePPM("output.ppm"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Points and Vectors
//
// Points are positions, vectors are displacements. Both are stored as
// 4-slot homogeneous tuples: a point carries 1 in the trailing slot, a
// vector carries 0. The canonical constructors and every arithmetic
// operation preserve those tags, so Point-Point yields a Vector and
// Point+Vector yields a Point without any special casing.
//
// # Coordinate System
//
// The canvas uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Scope
//
// rt stops at the pixel buffer and its textual encoding. Matrices,
// transformations, intersections, and shading belong to higher layers.
package rt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
