//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures report scalar; the portable Vec code still runs
	// and relies on the compiler for any auto-vectorization.
	setScalarMode()
}
