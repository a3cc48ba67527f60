package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAMesh is returned when a scene is asked to adopt something that
	// is not a usable mesh.
	ErrNotAMesh = errors.New("object is not a mesh")
	ErrUnknown  = errors.New("unknown")
)

// DimensionError reports an operation between algebraic values of
// incompatible shape: vector ops across dimensionalities, matrix ops across
// side lengths, or a matrix-vector product whose column count does not match
// the vector's homogeneous component count. The math package panics with a
// *DimensionError since these are programmer errors, not runtime conditions.
type DimensionError struct {
	Op   string
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch, want %d, got %d", e.Op, e.Want, e.Got)
}

// DataError reports malformed mesh source data, such as a non-numeric field
// or a face index referencing a vertex that does not exist. Line is 1-based
// and 0 when the error is not tied to a source line.
type DataError struct {
	Line int
	Msg  string
}

func (e *DataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("mesh data error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("mesh data error: %s", e.Msg)
}
