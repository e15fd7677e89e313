// Package hwy provides portable byte-lane vector primitives with runtime CPU
// dispatch for element-wise kernels over flat byte buffers.
//
// It follows the Highway C++ library's design philosophy: write a kernel
// body once against a small lane algebra, then instantiate it for each
// vector width the hardware offers. Two vector types are provided:
//
//   - Uint8x8: 8 byte lanes, the width of an ARMv7 NEON D register.
//   - Uint8x16: 16 byte lanes, the width of an SSE2 XMM or NEON Q register.
//
// Both are implemented as word-parallel Go (SWAR over uint64), so every
// kernel instantiation runs, and can be tested, on any machine. The runtime
// probe only decides which width is preferred.
//
// Basic usage:
//
//	import "github.com/go-bytesfunc/bytesfunc/hwy"
//
//	var d hwy.FixedTag128
//	a := d.Load(data1)
//	b := d.Load(data2)
//	a.And(b).Store(output)
//
// Kernel packages under hwy/contrib select the variant to run with
// SelectTarget.
package hwy

// Vec is the lane algebra every byte vector type implements. Mask results
// (Eq, GreaterEqual) use the same type with lanes of 0x00 or 0xFF.
type Vec[V any] interface {
	// And, Or, Xor and AndNot are lane-wise bitwise operations.
	// AndNot computes v &^ o.
	And(o V) V
	Or(o V) V
	Xor(o V) V
	AndNot(o V) V

	// Not is the bitwise complement.
	Not() V

	// Min and Max are lane-wise unsigned minimum and maximum.
	Min(o V) V
	Max(o V) V

	// Eq returns 0xFF in lanes where v == o.
	Eq(o V) V

	// GreaterEqual returns 0xFF in lanes where v >= o (unsigned).
	GreaterEqual(o V) V

	// ShiftLeft and ShiftRight shift every byte lane by n bits.
	// Bits never cross lanes; n >= 8 clears every lane.
	ShiftLeft(n uint8) V
	ShiftRight(n uint8) V

	// AllTrue, AnyTrue and FirstTrue inspect a mask.
	// FirstTrue returns -1 when no lane is set.
	AllTrue() bool
	AnyTrue() bool
	FirstTrue() int

	// ReduceMin and ReduceMax fold all lanes into one byte.
	ReduceMin() uint8
	ReduceMax() uint8

	// AddPairwiseWiden treats acc as 16-bit lanes and adds each pair of
	// adjacent bytes of v into the matching 16-bit lane.
	AddPairwiseWiden(acc V) V

	// ReduceSum16 sums the 16-bit lanes of an AddPairwiseWiden accumulator.
	ReduceSum16() uint64

	// Store writes the lanes to dst[:Width].
	Store(dst []byte)
}
