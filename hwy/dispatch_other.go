//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures report scalar mode.
	// Future implementations could add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support with Zvfh
	detect(func() {})
}
