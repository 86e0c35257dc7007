package reduce

import "github.com/ajroetker/simdslice/hwy"

// FallbackSum adds the elements of v from left to right.
func FallbackSum[T hwy.Lanes](v []T) T {
	var sum T
	for _, x := range v {
		sum += x
	}
	return sum
}

// FallbackMin scans v from left to right, keeping the first of equal minima.
func FallbackMin[T hwy.Lanes](v []T) (result T, ok bool) {
	if len(v) == 0 {
		return result, false
	}
	result = v[0]
	for _, x := range v[1:] {
		if x < result {
			result = x
		}
	}
	return result, true
}

// FallbackMax scans v from left to right, keeping the first of equal maxima.
func FallbackMax[T hwy.Lanes](v []T) (result T, ok bool) {
	if len(v) == 0 {
		return result, false
	}
	result = v[0]
	for _, x := range v[1:] {
		if x > result {
			result = x
		}
	}
	return result, true
}

// FallbackMinMax is the single-pass scalar form of FallbackMin and FallbackMax.
func FallbackMinMax[T hwy.Lanes](v []T) (min, max T, ok bool) {
	if len(v) == 0 {
		return min, max, false
	}
	min, max = v[0], v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max, true
}
