package rt

import "math"

// Vector is a displacement in 3D space, stored as a homogeneous 4-slot
// tuple whose trailing slot is 0. Unlike Point which represents a
// position, Vector represents a direction and magnitude; the zero
// trailing slot is what makes Point+Vector land back on a point.
//
// The canonical constructors (Vec, UnitX, UnitY, UnitZ) and all vector
// arithmetic keep the trailing slot at 0.
type Vector[T Scalar] Tuple4[T]

// Vec creates a Vector from three spatial components. The homogeneous
// slot is set to 0.
func Vec[T Scalar](x, y, z T) Vector[T] {
	return Vector[T]{x, y, z, 0}
}

// UnitX returns the unit vector along the x axis.
func UnitX[T Scalar]() Vector[T] { return Vector[T]{1, 0, 0, 0} }

// UnitY returns the unit vector along the y axis.
func UnitY[T Scalar]() Vector[T] { return Vector[T]{0, 1, 0, 0} }

// UnitZ returns the unit vector along the z axis.
func UnitZ[T Scalar]() Vector[T] { return Vector[T]{0, 0, 1, 0} }

// Tuple returns the underlying 4-slot tuple.
func (v Vector[T]) Tuple() Tuple4[T] { return Tuple4[T](v) }

// X returns the x component.
func (v Vector[T]) X() T { return v[0] }

// Y returns the y component.
func (v Vector[T]) Y() T { return v[1] }

// Z returns the z component.
func (v Vector[T]) Z() T { return v[2] }

// W returns the homogeneous component, 0 for any well-formed vector.
func (v Vector[T]) W() T { return v[3] }

// SetX writes the x component.
func (v *Vector[T]) SetX(x T) { v[0] = x }

// SetY writes the y component.
func (v *Vector[T]) SetY(y T) { v[1] = y }

// SetZ writes the z component.
func (v *Vector[T]) SetZ(z T) { v[2] = z }

// Add returns the sum of two vectors.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T](Tuple4[T](v).Add(Tuple4[T](w)))
}

// Sub returns the difference of two vectors.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T](Tuple4[T](v).Sub(Tuple4[T](w)))
}

// Neg returns the negation of the vector.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T](Tuple4[T](v).Neg())
}

// Mul returns the vector scaled by a scalar.
func (v Vector[T]) Mul(s T) Vector[T] {
	return Vector[T](Tuple4[T](v).Scale(s))
}

// Div returns the vector divided by a scalar.
func (v Vector[T]) Div(s T) Vector[T] {
	return Vector[T](Tuple4[T](v).Div(s))
}

// Dot returns the dot product of two vectors, summed over all four
// slots. For well-formed vectors the homogeneous slots are 0, so this
// equals the 3D dot product.
func (v Vector[T]) Dot(w Vector[T]) T {
	return Tuple4[T](v).Dot(Tuple4[T](w))
}

// Cross returns the 3D cross product. The homogeneous slot of the
// result is 0. Cross is anticommutative: v.Cross(w) == w.Cross(v).Neg().
func (v Vector[T]) Cross(w Vector[T]) Vector[T] {
	return Vector[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
		0,
	}
}

// LengthSq returns the squared length of the vector. This is faster
// than Length when only comparing magnitudes, and it is defined for
// integer component types as well.
func (v Vector[T]) LengthSq() T {
	return v.Dot(v)
}

// ToPoint reinterprets the vector as a position by forcing the
// homogeneous slot to 1.
func (v Vector[T]) ToPoint() Point[T] {
	return Point[T]{v[0], v[1], v[2], 1}
}

// Length returns the magnitude of the vector.
func Length[T Float](v Vector[T]) T {
	return T(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns a unit vector in the same direction as v.
//
// Normalizing a zero vector divides by zero and yields NaN components;
// callers must not pass one. This is a precondition, not a checked
// error.
func Normalize[T Float](v Vector[T]) Vector[T] {
	return v.Div(Length(v))
}
