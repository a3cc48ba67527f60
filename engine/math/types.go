package math

// Dimension tags a vector as 2D or 3D. The tag is fixed at construction;
// operations between vectors of different dimensionalities are invalid.
type Dimension int

const (
	Dim2 Dimension = 2
	Dim3 Dimension = 3
)

/**
 * @brief A homogeneous vector. Carries two or three spatial components,
 * selected by Dim, plus the homogeneous scalar W (1 for points). Z is unused
 * when Dim is Dim2.
 */
type Vector struct {
	Dim        Dimension
	X, Y, Z, W float64
}

/**
 * @brief A square matrix of side 3 or 4, backed by a flat row-major buffer
 * of Side*Side elements. Element (i, j) lives at Data[i*Side+j].
 */
type Matrix struct {
	Side int
	Data []float64
}

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief Comparison tolerance for double precision components. */
	K_FLOAT_EPSILON float64 = 1e-9
)
