package distribution

import (
	"math"

	"github.com/Karivelia/rand/source"
)

// The three interval variants share one construction: IEEE-754 floats in
// [1,2) have a fixed exponent and a constant spacing of 2^-mantissaBits, so
// a uniformly spaced float is obtained by fixing the sign/exponent bits to
// the pattern of 1.0, filling the mantissa with random bits, reinterpreting
// the pattern as a float and subtracting 1.0. Masking bits directly into the
// mantissa avoids any multiply or rounding step, and the subtraction is
// exact because both operands share the same exponent range.
//
// The constants below are that derivation for both precisions and must stay
// consistent with each other:
//
//	fixed pattern = Float{32,64}bits(1.0)
//	mantissa mask = 2^mantissaBits - 1
//	scale         = 2^mantissaBits
//	ulp           = 1 / scale
//
// Technique described by Saito and Matsumoto at MCQMC'08, see
// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/ARTICLES/dSFMT.pdf .
const (
	fixed32 uint32 = 0x3F800000
	mask32  uint32 = 0x7FFFFF

	fixed64 uint64 = 0x3FF0000000000000
	mask64  uint64 = 0xFFFFFFFFFFFFF

	scale32 = float32(1 << 23)
	scale64 = float64(1 << 52)
)

// uniform32 maps one raw word to a float32 in [0, 1). The mapping is total:
// for every possible mantissa value the fixed exponent yields a finite,
// non-NaN float in [1, 2).
func uniform32(r uint32) float32 {
	return math.Float32frombits(fixed32|(r&mask32)) - 1.0
}

// uniform64 maps one raw word to a float64 in [0, 1). See uniform32 for the
// derivation; the two instantiations differ only in their constants.
func uniform64(r uint64) float64 {
	return math.Float64frombits(fixed64|(r&mask64)) - 1.0
}

// SampleUniform32 returns a float32 uniformly distributed in the half-open
// interval [0, 1), consuming exactly one NextU32 call on src. The result
// ranges over the 2^23 uniformly spaced values 0, ulp, ..., 1-ulp.
func SampleUniform32(src source.Source) float32 {
	return uniform32(src.NextU32())
}

// SampleUniform64 returns a float64 uniformly distributed in the half-open
// interval [0, 1), consuming exactly one NextU64 call on src.
func SampleUniform64(src source.Source) float64 {
	return uniform64(src.NextU64())
}

// SampleOpen32 returns a float32 uniformly distributed in the open interval
// (0, 1), consuming exactly one NextU32 call on src. Adding half a ulp moves
// the smallest value to ulp/2 and the largest to 1-ulp/2; both shifts are
// exact.
func SampleOpen32(src source.Source) float32 {
	return uniform32(src.NextU32()) + 0.5/scale32
}

// SampleOpen64 returns a float64 uniformly distributed in the open interval
// (0, 1), consuming exactly one NextU64 call on src.
func SampleOpen64(src source.Source) float64 {
	return uniform64(src.NextU64()) + 0.5/scale64
}

// SampleClosed32 returns a float32 uniformly distributed in the closed
// interval [0, 1], consuming exactly one NextU32 call on src. Rescaling by
// scale/(scale-1) maps the maximum value 1-ulp exactly onto 1.0 and leaves
// 0.0 fixed.
func SampleClosed32(src source.Source) float32 {
	return uniform32(src.NextU32()) * scale32 / (scale32 - 1.0)
}

// SampleClosed64 returns a float64 uniformly distributed in the closed
// interval [0, 1], consuming exactly one NextU64 call on src.
func SampleClosed64(src source.Source) float64 {
	return uniform64(src.NextU64()) * scale64 / (scale64 - 1.0)
}
