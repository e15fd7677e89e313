//go:build !amd64 && !arm64 && !arm

package hwy

func init() {
	// Other architectures fall back to scalar mode for now.
	// Future implementations may add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	setLevel(DispatchScalar)
}

// CPUFeatures returns the vector features the probe looked at, keyed by name.
func CPUFeatures() map[string]bool {
	return map[string]bool{}
}
