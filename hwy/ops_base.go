// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "unsafe"

// This file provides the portable implementations of the vector operations.
// Every operation works on Vec values of NumLanes lanes and never allocates.
// The lane loops have constant trip counts so the compiler fully unrolls them.

// Load creates a vector from the first NumLanes elements of src.
// It panics if len(src) < NumLanes.
func Load[T Lanes](src []T) Vec[T] {
	return Vec[T]{data: [NumLanes]T(src[:NumLanes])}
}

// LoadAt creates a vector from src[i : i+NumLanes] without bounds checks.
//
// The caller must guarantee 0 <= i && i+NumLanes <= len(src). Reduction loops
// establish this once through their loop bound (i < PrefixLen(len(src)) with
// i a multiple of NumLanes) instead of checking on every step.
func LoadAt[T Lanes](src []T, i int) Vec[T] {
	var zero T
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(src)), uintptr(i)*unsafe.Sizeof(zero))
	return Vec[T]{data: *(*[NumLanes]T)(p)}
}

// Store writes a vector's lanes to dst. Only min(len(dst), NumLanes) lanes
// are written.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range NumLanes {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero, the additive identity.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range NumLanes {
		a.data[i] += b.data[i]
	}
	return a
}

// Min returns the element-wise minimum. A lane of b replaces the lane of a
// only if it compares strictly less.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range NumLanes {
		if b.data[i] < a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// Max returns the element-wise maximum. A lane of b replaces the lane of a
// only if it compares strictly greater.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range NumLanes {
		if b.data[i] > a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// ReduceSum sums all lanes in lane order: ((l0 + l1) + l2) + l3.
//
// The order is fixed because float results depend on it.
func ReduceSum[T Lanes](v Vec[T]) T {
	sum := v.data[0]
	for i := 1; i < NumLanes; i++ {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
// Ties keep the lower lane.
func ReduceMin[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < NumLanes; i++ {
		if v.data[i] < m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
// Ties keep the lower lane.
func ReduceMax[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < NumLanes; i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}
