// Package hwy provides portable fixed-width vector primitives with runtime
// CPU detection.
//
// A Vec holds NumLanes elements by value, so vectors live on the stack and
// the operations in this package never allocate. The lane-wise loops are
// written so the compiler can keep them in registers; the reduction
// algorithms in hwy/contrib build on top of them.
//
// Basic usage:
//
//	import "github.com/ajroetker/simdslice/hwy"
//
//	// Load data into vectors
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//
//	// Lane-wise operations
//	sum := hwy.Add(a, b)
//
//	// Horizontal combine
//	total := hwy.ReduceSum(sum)
package hwy

import "golang.org/x/exp/constraints"

// NumLanes is the number of lanes in every Vec. It must be a power of two.
const NumLanes = 4

// Floats is a constraint for floating-point types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer types, including int.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types, including uint
// and uintptr.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector of NumLanes elements.
//
// Vec is a plain value: copying it copies the lanes. Create instances with
// Load, LoadAt, Set or Zero.
type Vec[T Lanes] struct {
	data [NumLanes]T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return NumLanes
}

// Get returns lane i. It panics if i is out of range.
func (v Vec[T]) Get(i int) T {
	return v.data[i]
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
