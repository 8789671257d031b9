package rt

import "golang.org/x/exp/constraints"

// Scalar is any numeric component type usable in tuples, points, and
// vectors.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is a floating-point component type. Operations that divide by
// arbitrary magnitudes (normalization, color math) require it.
type Float interface {
	constraints.Float
}

// Tuple4 is an ordered aggregate of four scalars, the common storage
// for points and vectors in homogeneous coordinates. Indexing with t[i]
// reads or writes a slot directly; the X/Y/Z/W accessors address the
// same array, so the two access styles can never diverge. An index
// outside [0,4) panics, as with any Go array.
type Tuple4[T Scalar] [4]T

// Tuple3 is an ordered aggregate of three scalars, the storage for
// colors. The R/G/B accessors alias slots 0..2.
type Tuple3[T Scalar] [3]T

// X returns slot 0.
func (t Tuple4[T]) X() T { return t[0] }

// Y returns slot 1.
func (t Tuple4[T]) Y() T { return t[1] }

// Z returns slot 2.
func (t Tuple4[T]) Z() T { return t[2] }

// W returns slot 3, the homogeneous coordinate.
func (t Tuple4[T]) W() T { return t[3] }

// SetX writes slot 0.
func (t *Tuple4[T]) SetX(v T) { t[0] = v }

// SetY writes slot 1.
func (t *Tuple4[T]) SetY(v T) { t[1] = v }

// SetZ writes slot 2.
func (t *Tuple4[T]) SetZ(v T) { t[2] = v }

// SetW writes slot 3.
func (t *Tuple4[T]) SetW(v T) { t[3] = v }

// Add returns the component-wise sum of two tuples.
func (t Tuple4[T]) Add(o Tuple4[T]) Tuple4[T] {
	return Tuple4[T]{t[0] + o[0], t[1] + o[1], t[2] + o[2], t[3] + o[3]}
}

// Sub returns the component-wise difference of two tuples.
func (t Tuple4[T]) Sub(o Tuple4[T]) Tuple4[T] {
	return Tuple4[T]{t[0] - o[0], t[1] - o[1], t[2] - o[2], t[3] - o[3]}
}

// Neg returns the component-wise negation.
func (t Tuple4[T]) Neg() Tuple4[T] {
	return Tuple4[T]{-t[0], -t[1], -t[2], -t[3]}
}

// Scale returns the tuple with every slot multiplied by s.
func (t Tuple4[T]) Scale(s T) Tuple4[T] {
	return Tuple4[T]{t[0] * s, t[1] * s, t[2] * s, t[3] * s}
}

// Div returns the tuple with every slot divided by s. Division by zero
// follows the component type's semantics: it panics for integers and
// produces Inf or NaN for floats.
func (t Tuple4[T]) Div(s T) Tuple4[T] {
	return Tuple4[T]{t[0] / s, t[1] / s, t[2] / s, t[3] / s}
}

// Dot returns the sum of pairwise products over all four slots.
func (t Tuple4[T]) Dot(o Tuple4[T]) T {
	return t[0]*o[0] + t[1]*o[1] + t[2]*o[2] + t[3]*o[3]
}

// R returns slot 0.
func (t Tuple3[T]) R() T { return t[0] }

// G returns slot 1.
func (t Tuple3[T]) G() T { return t[1] }

// B returns slot 2.
func (t Tuple3[T]) B() T { return t[2] }

// SetR writes slot 0.
func (t *Tuple3[T]) SetR(v T) { t[0] = v }

// SetG writes slot 1.
func (t *Tuple3[T]) SetG(v T) { t[1] = v }

// SetB writes slot 2.
func (t *Tuple3[T]) SetB(v T) { t[2] = v }

// Add returns the component-wise sum of two tuples.
func (t Tuple3[T]) Add(o Tuple3[T]) Tuple3[T] {
	return Tuple3[T]{t[0] + o[0], t[1] + o[1], t[2] + o[2]}
}

// Sub returns the component-wise difference of two tuples.
func (t Tuple3[T]) Sub(o Tuple3[T]) Tuple3[T] {
	return Tuple3[T]{t[0] - o[0], t[1] - o[1], t[2] - o[2]}
}

// Neg returns the component-wise negation.
func (t Tuple3[T]) Neg() Tuple3[T] {
	return Tuple3[T]{-t[0], -t[1], -t[2]}
}

// Scale returns the tuple with every slot multiplied by s.
func (t Tuple3[T]) Scale(s T) Tuple3[T] {
	return Tuple3[T]{t[0] * s, t[1] * s, t[2] * s}
}

// Div returns the tuple with every slot divided by s. Division by zero
// follows the component type's semantics.
func (t Tuple3[T]) Div(s T) Tuple3[T] {
	return Tuple3[T]{t[0] / s, t[1] / s, t[2] / s}
}
