package math

import (
	m "math"

	"github.com/spaghettifunk/prisma/engine/core"
)

/**
 * @brief Creates and returns a new homogeneous 2D vector with w set to 1.
 */
func NewVec2(x, y float64) Vector {
	return Vector{Dim: Dim2, X: x, Y: y, W: 1}
}

/**
 * @brief Creates and returns a new homogeneous 3D vector with w set to 1.
 */
func NewVec3(x, y, z float64) Vector {
	return Vector{Dim: Dim3, X: x, Y: y, Z: z, W: 1}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func NewVec3Zero() Vector {
	return Vector{Dim: Dim3, W: 1}
}

/**
 * @brief Creates and returns a 3-component vector with all spatial components set to 1.
 */
func NewVec3One() Vector {
	return Vector{Dim: Dim3, X: 1, Y: 1, Z: 1, W: 1}
}

func (v Vector) assertSame(op string, other Vector) {
	if v.Dim != other.Dim {
		panic(&core.DimensionError{Op: op, Want: int(v.Dim), Got: int(other.Dim)})
	}
}

func (v Vector) assertDim(op string, want Dimension) {
	if v.Dim != want {
		panic(&core.DimensionError{Op: op, Want: int(want), Got: int(v.Dim)})
	}
}

/**
 * Adds other to v and returns a copy of the result.
 */
func (v Vector) Add(other Vector) Vector {
	v.assertSame("vector add", other)
	out := v
	out.X += other.X
	out.Y += other.Y
	out.Z += other.Z
	return out
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vector) Sub(other Vector) Vector {
	v.assertSame("vector sub", other)
	out := v
	out.X -= other.X
	out.Y -= other.Y
	out.Z -= other.Z
	return out
}

/**
 * Multiplies v by other component-wise (Hadamard product, not a true vector
 * product) and returns a copy of the result.
 */
func (v Vector) Mul(other Vector) Vector {
	v.assertSame("vector mul", other)
	out := v
	out.X *= other.X
	out.Y *= other.Y
	out.Z *= other.Z
	return out
}

/**
 * Multiplies every spatial component of v by the scalar s and returns a copy
 * of the result.
 */
func (v Vector) MulScalar(s float64) Vector {
	out := v
	out.X *= s
	out.Y *= s
	out.Z *= s
	return out
}

/**
 * Returns the dot product of the spatial components of v and other.
 */
func (v Vector) Dot(other Vector) float64 {
	v.assertSame("vector dot", other)
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other, following
 * the right-hand rule. 3D vectors only.
 */
func (v Vector) Cross(other Vector) Vector {
	v.assertDim("vector cross", Dim3)
	other.assertDim("vector cross", Dim3)
	return Vector{
		Dim: Dim3,
		X:   v.Y*other.Z - v.Z*other.Y,
		Y:   v.Z*other.X - v.X*other.Z,
		Z:   v.X*other.Y - v.Y*other.X,
		W:   1,
	}
}

/**
 * Returns the squared Euclidean length of the spatial components.
 */
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the Euclidean length of the spatial components.
 */
func (v Vector) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * Normalizes the vector in place to unit length. A zero-length vector is left
 * unchanged; that is the one defined no-op, not an error.
 */
func (v *Vector) Normalize() {
	length := v.Length()
	if length == 0 {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vector) Normalized() Vector {
	out := v
	out.Normalize()
	return out
}

/**
 * @brief Returns the perpendicular (-y, x) of a 2D vector.
 */
func (v Vector) Normal() Vector {
	v.assertDim("vector normal", Dim2)
	return Vector{Dim: Dim2, X: -v.Y, Y: v.X, W: v.W}
}

/**
 * @brief Returns the angle of a 2D vector in radians, measured with atan2.
 */
func (v Vector) Angle() float64 {
	v.assertDim("vector angle", Dim2)
	return m.Atan2(v.Y, v.X)
}

/**
 * Returns the spatial components followed by w, in declared component order.
 */
func (v Vector) ToArray() []float64 {
	if v.Dim == Dim2 {
		return []float64{v.X, v.Y, v.W}
	}
	return []float64{v.X, v.Y, v.Z, v.W}
}

/**
 * @brief Compares all components of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vector) Compare(other Vector, tolerance float64) bool {
	if v.Dim != other.Dim {
		return false
	}
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}
	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if m.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}
