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

// PrefixLen rounds size down to a multiple of NumLanes.
//
// The result is the length of the vectorizable prefix of a slice of the given
// size; the remaining size-PrefixLen(size) elements (0 to NumLanes-1 of them)
// form the tail. Every offset i < PrefixLen(size) that is a multiple of
// NumLanes satisfies i+NumLanes <= size.
func PrefixLen(size int) int {
	return size &^ (NumLanes - 1)
}

// ProcessWithTail is a helper for processing arrays with vectors that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of NumLanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data),
//	    func(offset int) {
//	        v := hwy.LoadAt(data, offset)
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}
	n := PrefixLen(size)
	for offset := 0; offset < n; offset += NumLanes {
		fullFn(offset)
	}
	if n < size {
		tailFn(n, size-n)
	}
}

// AlignedSize rounds up size to the next multiple of NumLanes.
// This is useful for allocating buffers that will be processed with vectors.
func AlignedSize(size int) int {
	return PrefixLen(size + NumLanes - 1)
}

// IsAligned returns true if size is a multiple of NumLanes.
func IsAligned(size int) bool {
	return size&(NumLanes-1) == 0
}
