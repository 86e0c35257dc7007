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

// Package reduce provides vectorized sum, minimum and maximum over numeric
// slices.
//
// Every reduction follows the same three steps: the prefix whose length is a
// multiple of hwy.NumLanes is accumulated lane-wise in a hwy.Vec, the lanes
// are combined horizontally into one scalar, and the remaining 0 to
// hwy.NumLanes-1 trailing elements are folded in index order.
//
// # Functions
//
//   - Sum: sum of all elements, 0 for an empty slice
//   - Min, Max: smallest/largest element, ok == false for an empty slice
//   - MinMax: both in a single pass
//
// Each function has a Base variant (always vectorized) and a Fallback variant
// (plain left-to-right loop). The unprefixed functions pick one of them: the
// vector path unless HWY_NO_SIMD was set at startup or SetFallback(true) was
// called.
//
// # Numeric semantics
//
// Integer sums wrap on overflow exactly like a scalar loop. Float sums are
// reassociated: lane j accumulates elements j, j+4, j+8, ... of the prefix,
// lanes are added in order 0..3, then the tail is added. Min and Max match a
// scalar scan exactly; comparisons are strict, so ties keep the earlier
// value, and NaN follows Go's comparison operators without special cases.
//
// No function allocates or retains the input slice.
//
// # Example Usage
//
//	data := []int32{10, 20, 3, 4, 5, 6, 7}
//	total := reduce.Sum(data)         // 55
//	lo, ok := reduce.Min(data[1:5])   // 3, true
//	hi, _ := reduce.Of(data[1:5]).Max() // 20
package reduce
