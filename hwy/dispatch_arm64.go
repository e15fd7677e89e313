//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setLevel(DispatchScalar)
	}
}

// CPUFeatures returns the vector features the probe looked at, keyed by name.
func CPUFeatures() map[string]bool {
	return map[string]bool{
		"asimd": cpu.ARM64.HasASIMD,
		"sve":   cpu.ARM64.HasSVE,
	}
}
