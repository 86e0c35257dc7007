package reduce

import "github.com/ajroetker/simdslice/hwy"

// Slice is a read-only view of a numeric slice with reduction methods.
//
// It holds only the slice header; the caller keeps ownership of the data
// and must not modify it while a method is running.
type Slice[T hwy.Lanes] struct {
	v []T
}

// Of wraps v in a Slice.
func Of[T hwy.Lanes](v []T) Slice[T] {
	return Slice[T]{v: v}
}

// Len returns the number of elements in the view.
func (s Slice[T]) Len() int { return len(s.v) }

// Sum returns the sum of the viewed elements.
func (s Slice[T]) Sum() T { return Sum(s.v) }

// Min returns the smallest viewed element; ok is false for an empty view.
func (s Slice[T]) Min() (T, bool) { return Min(s.v) }

// Max returns the largest viewed element; ok is false for an empty view.
func (s Slice[T]) Max() (T, bool) { return Max(s.v) }

// MinMax returns Min and Max in a single pass.
func (s Slice[T]) MinMax() (T, T, bool) { return MinMax(s.v) }
