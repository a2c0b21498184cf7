// Package tensor provides the sample vector and batch containers consumed by the activation core.
package tensor

import "unsafe"

// Float is a constraint for the scalar types an activation can be evaluated in.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for a scalar type.
type DataType int

// Supported scalar types.
const (
	Float32 DataType = iota
	Float64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType converts a name produced by DataType.String back to a DataType.
func ParseDataType(name string) (DataType, bool) {
	switch name {
	case "float32", "f32":
		return Float32, true
	case "float64", "f64":
		return Float64, true
	default:
		return 0, false
	}
}

// DataTypeOf returns the DataType for T, including named types built on float32/float64.
func DataTypeOf[T Float]() DataType {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return Float32
	}
	return Float64
}
