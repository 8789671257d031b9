package rt

// Point is a position in 3D space, stored as a homogeneous 4-slot tuple
// whose trailing slot is 1. The canonical constructors (Pt, Origin) and
// all point/vector arithmetic keep the trailing slot at 1: adding or
// subtracting a Vector (trailing slot 0) nets to 1, and subtracting two
// Points cancels it to 0, yielding a Vector.
type Point[T Scalar] Tuple4[T]

// Pt creates a Point from three spatial components. The homogeneous
// slot is set to 1.
func Pt[T Scalar](x, y, z T) Point[T] {
	return Point[T]{x, y, z, 1}
}

// Origin returns the point with all spatial components 0.
func Origin[T Scalar]() Point[T] {
	return Point[T]{0, 0, 0, 1}
}

// Tuple returns the underlying 4-slot tuple.
func (p Point[T]) Tuple() Tuple4[T] { return Tuple4[T](p) }

// X returns the x component.
func (p Point[T]) X() T { return p[0] }

// Y returns the y component.
func (p Point[T]) Y() T { return p[1] }

// Z returns the z component.
func (p Point[T]) Z() T { return p[2] }

// W returns the homogeneous component, 1 for any well-formed point.
func (p Point[T]) W() T { return p[3] }

// SetX writes the x component.
func (p *Point[T]) SetX(x T) { p[0] = x }

// SetY writes the y component.
func (p *Point[T]) SetY(y T) { p[1] = y }

// SetZ writes the z component.
func (p *Point[T]) SetZ(z T) { p[2] = z }

// AddVec returns the point translated by v.
func (p Point[T]) AddVec(v Vector[T]) Point[T] {
	return Point[T](Tuple4[T](p).Add(Tuple4[T](v)))
}

// SubVec returns the point translated by the negation of v.
func (p Point[T]) SubVec(v Vector[T]) Point[T] {
	return Point[T](Tuple4[T](p).Sub(Tuple4[T](v)))
}

// Sub returns the displacement from q to p, so that q.AddVec(p.Sub(q))
// equals p.
func (p Point[T]) Sub(q Point[T]) Vector[T] {
	return Vector[T](Tuple4[T](p).Sub(Tuple4[T](q)))
}

// ToVec returns the displacement from the origin to p.
func (p Point[T]) ToVec() Vector[T] {
	return p.Sub(Origin[T]())
}

// Centroid returns the average position of points, computed as the mean
// of origin-relative displacements. The second return value is false
// when points is empty: an empty set has no centroid.
func Centroid[T Scalar](points []Point[T]) (Point[T], bool) {
	if len(points) == 0 {
		return Point[T]{}, false
	}
	var total Vector[T]
	for _, p := range points {
		total = total.Add(p.ToVec())
	}
	return total.Div(T(len(points))).ToPoint(), true
}
