//go:build arm

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARMv7 NEON works on 64-bit D registers; the byte kernels use 8 lanes.
	if cpu.ARM.HasNEON {
		setLevel(DispatchNEON64)
	} else {
		setLevel(DispatchScalar)
	}
}

// CPUFeatures returns the vector features the probe looked at, keyed by name.
func CPUFeatures() map[string]bool {
	return map[string]bool{
		"neon":  cpu.ARM.HasNEON,
		"vfpv4": cpu.ARM.HasVFPv4,
	}
}
