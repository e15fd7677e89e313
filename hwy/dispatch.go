package hwy

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents the vector instruction set the byte kernels are
// tuned for on this machine.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, plain byte-at-a-time Go loops.
	DispatchScalar DispatchLevel = iota

	// DispatchNEON64 indicates 64-bit ARMv7 NEON (D registers, 8 byte lanes).
	DispatchNEON64

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 16 byte lanes).
	DispatchSSE2

	// DispatchNEON indicates 128-bit ARMv8 Advanced SIMD (Q registers, 16 byte lanes).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchNEON64:
		return "neon64"
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level, or 0 for scalar.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchNEON64:
		return 8
	case DispatchSSE2, DispatchNEON:
		return 16
	default:
		return 0
	}
}

// ParseDispatchLevel parses the names produced by DispatchLevel.String.
func ParseDispatchLevel(s string) (DispatchLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return DispatchScalar, true
	case "neon64":
		return DispatchNEON64, true
	case "sse2":
		return DispatchSSE2, true
	case "neon":
		return DispatchNEON, true
	default:
		return DispatchScalar, false
	}
}

// detectedLevel is what the CPU probe found, before any override.
// Set by init() in dispatch_*.go files.
var detectedLevel DispatchLevel

// currentLevel is the level kernels dispatch on.
var currentLevel DispatchLevel

// overridden is true when BYTESFUNC_SIMD selected currentLevel.
var overridden bool

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// DetectedLevel returns the level found by the CPU probe, ignoring
// BYTESFUNC_SIMD and BYTESFUNC_NO_SIMD.
func DetectedLevel() DispatchLevel {
	return detectedLevel
}

// CurrentWidth returns the SIMD register width in bytes, 0 in scalar mode.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "sse2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// IsOverridden reports whether BYTESFUNC_SIMD chose the current level.
func IsOverridden() bool {
	return overridden
}

// NoSimdEnv checks if the BYTESFUNC_NO_SIMD environment variable is set.
// When set, every kernel uses the scalar fallback regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("BYTESFUNC_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// AvailableLevels returns every level usable on a machine probed as the
// given level, narrowest first.
func AvailableLevels(probed DispatchLevel) []DispatchLevel {
	switch probed {
	case DispatchNEON64:
		return []DispatchLevel{DispatchScalar, DispatchNEON64}
	case DispatchSSE2:
		return []DispatchLevel{DispatchScalar, DispatchSSE2}
	case DispatchNEON:
		// AArch64 keeps the 64-bit D register forms.
		return []DispatchLevel{DispatchScalar, DispatchNEON64, DispatchNEON}
	default:
		return []DispatchLevel{DispatchScalar}
	}
}

// resolveLevel applies the environment to a probed level. A requested level
// is honored only when the probed hardware offers it.
func resolveLevel(probed DispatchLevel, noSimd bool, requested string) (level DispatchLevel, override bool) {
	if noSimd {
		return DispatchScalar, false
	}
	if requested == "" {
		return probed, false
	}
	req, ok := ParseDispatchLevel(requested)
	if !ok {
		return probed, false
	}
	for _, l := range AvailableLevels(probed) {
		if l == req {
			return req, true
		}
	}
	return probed, false
}

// setLevel is called from the per-arch init() once the probe has run.
func setLevel(probed DispatchLevel) {
	detectedLevel = probed
	currentLevel, overridden = resolveLevel(probed, NoSimdEnv(), os.Getenv("BYTESFUNC_SIMD"))
}
