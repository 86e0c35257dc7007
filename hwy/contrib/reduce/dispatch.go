package reduce

import (
	"sync/atomic"

	"github.com/ajroetker/simdslice/hwy"
)

// useFallback selects the scalar implementations. It is read on every call,
// so it is atomic to let SetFallback race with running reductions.
var useFallback atomic.Bool

func init() {
	useFallback.Store(hwy.NoSimdEnv())
}

// SetFallback forces the scalar implementations on (true) or restores the
// vector implementations (false). It overrides HWY_NO_SIMD.
func SetFallback(on bool) {
	useFallback.Store(on)
}

// UsingFallback reports whether Sum, Min, Max and MinMax currently run the
// scalar implementations.
func UsingFallback() bool {
	return useFallback.Load()
}

// Sum returns the sum of all elements of v, or 0 if v is empty.
func Sum[T hwy.Lanes](v []T) T {
	if useFallback.Load() {
		return FallbackSum(v)
	}
	return BaseSum(v)
}

// Min returns the smallest element of v. ok is false iff v is empty.
func Min[T hwy.Lanes](v []T) (T, bool) {
	if useFallback.Load() {
		return FallbackMin(v)
	}
	return BaseMin(v)
}

// Max returns the largest element of v. ok is false iff v is empty.
func Max[T hwy.Lanes](v []T) (T, bool) {
	if useFallback.Load() {
		return FallbackMax(v)
	}
	return BaseMax(v)
}

// MinMax returns the smallest and largest elements of v in one pass.
// ok is false iff v is empty.
func MinMax[T hwy.Lanes](v []T) (T, T, bool) {
	if useFallback.Load() {
		return FallbackMinMax(v)
	}
	return BaseMinMax(v)
}
