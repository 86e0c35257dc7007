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

package reduce

import "github.com/ajroetker/simdslice/hwy"

// BaseSum computes the sum of all elements in a slice using hwy primitives.
//
// Returns 0 if the slice is empty. Integer sums wrap on overflow.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := BaseSum(data)  // 1 + 2 + 3 + 4 = 10
func BaseSum[T hwy.Lanes](v []T) T {
	n := hwy.PrefixLen(len(v))

	sum := hwy.Zero[T]()

	// Process full vectors.
	// i is a multiple of NumLanes and i < n <= len(v), so v[i:i+NumLanes] is in range.
	for i := 0; i < n; i += hwy.NumLanes {
		sum = hwy.Add(sum, hwy.LoadAt(v, i))
	}

	// Reduce vector sum to scalar
	result := hwy.ReduceSum(sum)

	// Handle tail elements with scalar code
	for i := n; i < len(v); i++ {
		result += v[i]
	}

	return result
}

// BaseMin returns the minimum value in a slice using hwy primitives.
//
// Returns ok == false if the slice is empty.
//
// Note: For slices containing NaN values, behavior follows standard Go
// comparison semantics where NaN comparisons return false.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	result, ok := BaseMin(data)  // 1, true
func BaseMin[T hwy.Lanes](v []T) (result T, ok bool) {
	if len(v) == 0 {
		return result, false
	}

	n := hwy.PrefixLen(len(v))

	// If slice is shorter than one vector, use scalar code
	if n == 0 {
		result = v[0]
		for i := 1; i < len(v); i++ {
			if v[i] < result {
				result = v[i]
			}
		}
		return result, true
	}

	// Seed from the first block; there is no neutral value to pad with.
	minVec := hwy.Load(v)

	// Process full vectors.
	// i is a multiple of NumLanes and i < n <= len(v), so v[i:i+NumLanes] is in range.
	for i := hwy.NumLanes; i < n; i += hwy.NumLanes {
		minVec = hwy.Min(minVec, hwy.LoadAt(v, i))
	}

	// Reduce vector min to scalar
	result = hwy.ReduceMin(minVec)

	// Handle tail elements with scalar code
	for i := n; i < len(v); i++ {
		if v[i] < result {
			result = v[i]
		}
	}

	return result, true
}

// BaseMax returns the maximum value in a slice using hwy primitives.
//
// Returns ok == false if the slice is empty.
//
// Works with all numeric types: float32, float64, int8, int16, int32, int64,
// int, uint8, uint16, uint32, uint64, uint, uintptr.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	result, ok := BaseMax(data)  // 5, true
func BaseMax[T hwy.Lanes](v []T) (result T, ok bool) {
	if len(v) == 0 {
		return result, false
	}

	n := hwy.PrefixLen(len(v))

	// If slice is shorter than one vector, use scalar code
	if n == 0 {
		result = v[0]
		for i := 1; i < len(v); i++ {
			if v[i] > result {
				result = v[i]
			}
		}
		return result, true
	}

	maxVec := hwy.Load(v)

	// Process full vectors.
	// i is a multiple of NumLanes and i < n <= len(v), so v[i:i+NumLanes] is in range.
	for i := hwy.NumLanes; i < n; i += hwy.NumLanes {
		maxVec = hwy.Max(maxVec, hwy.LoadAt(v, i))
	}

	// Reduce vector max to scalar
	result = hwy.ReduceMax(maxVec)

	// Handle tail elements with scalar code
	for i := n; i < len(v); i++ {
		if v[i] > result {
			result = v[i]
		}
	}

	return result, true
}

// BaseMinMax returns both the minimum and maximum values in a slice using hwy primitives.
//
// This is more efficient than calling Min and Max separately as it only
// makes a single pass through the data.
//
// Returns ok == false if the slice is empty.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	min, max, ok := BaseMinMax(data)  // min=1, max=5, ok=true
func BaseMinMax[T hwy.Lanes](v []T) (min, max T, ok bool) {
	if len(v) == 0 {
		return min, max, false
	}

	n := hwy.PrefixLen(len(v))

	// If slice is shorter than one vector, handle with scalar code
	if n == 0 {
		min = v[0]
		max = v[0]
		for i := 1; i < len(v); i++ {
			if v[i] < min {
				min = v[i]
			}
			if v[i] > max {
				max = v[i]
			}
		}
		return min, max, true
	}

	minVec := hwy.Load(v)
	maxVec := minVec

	// i is a multiple of NumLanes and i < n <= len(v), so v[i:i+NumLanes] is in range.
	for i := hwy.NumLanes; i < n; i += hwy.NumLanes {
		va := hwy.LoadAt(v, i)
		minVec = hwy.Min(minVec, va)
		maxVec = hwy.Max(maxVec, va)
	}

	min = hwy.ReduceMin(minVec)
	max = hwy.ReduceMax(maxVec)

	for i := n; i < len(v); i++ {
		if v[i] < min {
			min = v[i]
		}
		if v[i] > max {
			max = v[i]
		}
	}

	return min, max, true
}
