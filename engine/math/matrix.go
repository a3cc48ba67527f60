package math

import (
	m "math"

	"github.com/spaghettifunk/prisma/engine/core"
)

func assertSide(op string, side int) {
	if side != 3 && side != 4 {
		panic(&core.DimensionError{Op: op, Want: 4, Got: side})
	}
}

func (a Matrix) assertSame(op string, b Matrix) {
	if a.Side != b.Side {
		panic(&core.DimensionError{Op: op, Want: a.Side, Got: b.Side})
	}
}

/**
 * @brief Creates a side*side matrix. The buffer starts zero-filled and any
 * supplied values overwrite elements left to right in row-major order.
 */
func NewMatrix(side int, values ...float64) Matrix {
	assertSide("matrix create", side)
	out := Matrix{Side: side, Data: make([]float64, side*side)}
	copy(out.Data, values)
	return out
}

/**
 * @brief Creates a zero matrix with values[i] placed at cell (i, i).
 */
func NewDiagonal(side int, values ...float64) Matrix {
	out := NewMatrix(side)
	for i, val := range values {
		if i >= side {
			break
		}
		out.Data[i*side+i] = val
	}
	return out
}

/**
 * @brief Creates and returns an identity matrix.
 */
func NewIdentity(side int) Matrix {
	out := NewMatrix(side)
	for i := 0; i < side; i++ {
		out.Data[i*side+i] = 1
	}
	return out
}

/**
 * @brief Creates an identity matrix whose last column, excluding the final
 * diagonal cell, is overwritten by the supplied translation components.
 */
func NewTranslation(side int, values ...float64) Matrix {
	out := NewIdentity(side)
	for i, val := range values {
		if i >= side-1 {
			break
		}
		out.Data[i*side+side-1] = val
	}
	return out
}

/**
 * Adds other to a element-wise and returns a copy of the result.
 */
func (a Matrix) Add(other Matrix) Matrix {
	a.assertSame("matrix add", other)
	out := NewMatrix(a.Side)
	for i := range a.Data {
		out.Data[i] = a.Data[i] + other.Data[i]
	}
	return out
}

/**
 * Subtracts other from a element-wise and returns a copy of the result.
 */
func (a Matrix) Sub(other Matrix) Matrix {
	a.assertSame("matrix sub", other)
	out := NewMatrix(a.Side)
	for i := range a.Data {
		out.Data[i] = a.Data[i] - other.Data[i]
	}
	return out
}

/**
 * Multiplies every element of a by the scalar s and returns a copy of the result.
 */
func (a Matrix) MulScalar(s float64) Matrix {
	out := NewMatrix(a.Side)
	for i := range a.Data {
		out.Data[i] = a.Data[i] * s
	}
	return out
}

/**
 * Transposes the matrix in place and returns it. The returned matrix is the
 * only defined output; callers must not rely on aliases of the argument.
 */
func (a *Matrix) Transpose() *Matrix {
	n := a.Side
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a.Data[i*n+j], a.Data[j*n+i] = a.Data[j*n+i], a.Data[i*n+j]
		}
	}
	return a
}

/**
 * @brief Rotates the matrix cells by 90 degrees in place and returns it.
 * This is a block rotation of the cell grid, not a geometric rotation
 * transform; see NewPitchRotation and friends for those. Clockwise maps
 * (i, j) from (n-1-j, i); counter-clockwise maps (i, j) from (j, n-1-i).
 */
func (a *Matrix) Rotate(clockwise bool) *Matrix {
	n := a.Side
	src := make([]float64, len(a.Data))
	copy(src, a.Data)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if clockwise {
				a.Data[i*n+j] = src[(n-1-j)*n+i]
			} else {
				a.Data[i*n+j] = src[j*n+(n-1-i)]
			}
		}
	}
	return a
}

/**
 * @brief Multiplies the matrix by a homogeneous vector. The vector's
 * component count including w must equal the matrix column count. A 4-element
 * result is returned as a 3D vector carrying w; a 3-element result as a 2D
 * vector carrying w.
 */
func (a Matrix) MulVec(v Vector) Vector {
	comps := v.ToArray()
	if len(comps) != a.Side {
		panic(&core.DimensionError{Op: "matrix-vector mul", Want: a.Side, Got: len(comps)})
	}
	out := make([]float64, a.Side)
	for i := 0; i < a.Side; i++ {
		sum := 0.0
		for j := 0; j < a.Side; j++ {
			sum += a.Data[i*a.Side+j] * comps[j]
		}
		out[i] = sum
	}
	if a.Side == 4 {
		return Vector{Dim: Dim3, X: out[0], Y: out[1], Z: out[2], W: out[3]}
	}
	return Vector{Dim: Dim2, X: out[0], Y: out[1], W: out[2]}
}

/**
 * @brief Returns the matrix product a*other. Both operands must share the
 * same side length. Not commutative.
 */
func (a Matrix) Mul(other Matrix) Matrix {
	a.assertSame("matrix mul", other)
	n := a.Side
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a.Data[i*n+k] * other.Data[k*n+j]
			}
			out.Data[i*n+j] = sum
		}
	}
	return out
}

/**
 * @brief Creates a 4x4 rotation matrix about the x axis (pitch). The angle
 * is in radians.
 */
func NewPitchRotation(angle float64) Matrix {
	c, s := m.Cos(angle), m.Sin(angle)
	return NewMatrix(4,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a 4x4 rotation matrix about the y axis (yaw). The angle
 * is in radians.
 */
func NewYawRotation(angle float64) Matrix {
	c, s := m.Cos(angle), m.Sin(angle)
	return NewMatrix(4,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a 4x4 rotation matrix about the z axis (roll). The angle
 * is in radians.
 */
func NewRollRotation(angle float64) Matrix {
	c, s := m.Cos(angle), m.Sin(angle)
	return NewMatrix(4,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a 3x3 rotation matrix about the z axis. The angle is in
 * radians.
 */
func NewRotation(angle float64) Matrix {
	c, s := m.Cos(angle), m.Sin(angle)
	return NewMatrix(3,
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

/**
 * @brief Compares all elements of a and other and ensures the difference is
 * less than tolerance.
 */
func (a Matrix) Compare(other Matrix, tolerance float64) bool {
	if a.Side != other.Side {
		return false
	}
	for i := range a.Data {
		if m.Abs(a.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
