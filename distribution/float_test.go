package distribution

import (
	"math"
	"math/big"
	"testing"

	"github.com/ALTree/bigfloat"
	"github.com/stretchr/testify/require"
)

const (
	epsilon32 = float32(1.0) / (1 << 23)
	epsilon64 = float64(1.0) / (1 << 52)
)

// TestConstantsDerivation cross-checks the per-precision constants against
// their shared derivation, computed with 200 bits of precision.
func TestConstantsDerivation(t *testing.T) {

	prec := uint(200)
	two := new(big.Float).SetPrec(prec).SetUint64(2)
	one := new(big.Float).SetPrec(prec).SetUint64(1)

	t.Run("Float32", func(t *testing.T) {

		require.Equal(t, math.Float32bits(1.0), fixed32)

		scale := bigfloat.Pow(two, new(big.Float).SetPrec(prec).SetUint64(23))

		f, acc := scale.Float32()
		require.Equal(t, big.Exact, acc)
		require.Equal(t, scale32, f)

		require.Equal(t, uint64(mask32)+1, uint64(scale32))

		ulp, acc := new(big.Float).SetPrec(prec).Quo(one, scale).Float32()
		require.Equal(t, big.Exact, acc)
		require.Equal(t, epsilon32, ulp)
	})

	t.Run("Float64", func(t *testing.T) {

		require.Equal(t, math.Float64bits(1.0), fixed64)

		scale := bigfloat.Pow(two, new(big.Float).SetPrec(prec).SetUint64(52))

		f, acc := scale.Float64()
		require.Equal(t, big.Exact, acc)
		require.Equal(t, scale64, f)

		require.Equal(t, mask64+1, uint64(scale64))

		ulp, acc := new(big.Float).SetPrec(prec).Quo(one, scale).Float64()
		require.Equal(t, big.Exact, acc)
		require.Equal(t, epsilon64, ulp)
	})
}

// TestReinterpretationTotality verifies that fixing the sign/exponent bits
// yields a finite, non-NaN float in [1, 2) for every possible mantissa value
// (exhaustively for float32, on a strided sweep plus boundaries for float64).
func TestReinterpretationTotality(t *testing.T) {

	t.Run("Float32", func(t *testing.T) {
		for m := uint32(0); m <= mask32; m++ {
			y := math.Float32frombits(fixed32 | m)
			if !(y >= 1.0 && y < 2.0) {
				t.Fatalf("mantissa %#x: got %v, want a value in [1, 2)", m, y)
			}
		}
	})

	t.Run("Float64", func(t *testing.T) {
		check := func(m uint64) {
			y := math.Float64frombits(fixed64 | m)
			if math.IsNaN(y) || math.IsInf(y, 0) || !(y >= 1.0 && y < 2.0) {
				t.Fatalf("mantissa %#x: got %v, want a value in [1, 2)", m, y)
			}
		}
		check(0)
		check(1)
		check(mask64)
		check(mask64 - 1)
		for m := uint64(0); m <= mask64; m += 0x4003FFF12B {
			check(m)
		}
	})
}

func TestUniformMapping(t *testing.T) {

	t.Run("Float32", func(t *testing.T) {
		require.Equal(t, float32(0), uniform32(0))
		require.Equal(t, epsilon32, uniform32(1))
		require.Equal(t, 1-epsilon32, uniform32(mask32))
		// bits above the mantissa must be ignored
		require.Equal(t, uniform32(42), uniform32(42|^mask32))
	})

	t.Run("Float64", func(t *testing.T) {
		require.Equal(t, float64(0), uniform64(0))
		require.Equal(t, epsilon64, uniform64(1))
		require.Equal(t, 1-epsilon64, uniform64(mask64))
		require.Equal(t, uniform64(42), uniform64(42|^mask64))
	})
}

// TestClosedRescaleAsymmetry pins the asymmetry between the two boundary
// adjustments: Open01 shifts every sample by exactly ulp/2, while Closed01's
// multiplicative rescale leaves 0.0 fixed, strictly increases every other
// sample, and compresses the spacing near 1.0 so that the top two samples
// land on 1-ulp and exactly 1.0.
func TestClosedRescaleAsymmetry(t *testing.T) {

	t.Run("Float32", func(t *testing.T) {
		for _, r := range []uint32{0, 1, 2, 0x1234, mask32 / 2, mask32 - 1, mask32} {
			u := uniform32(r)
			o := u + 0.5/scale32
			require.Equal(t, epsilon32/2, o-u) // the half-ulp shift is exact

			c := u * scale32 / (scale32 - 1.0)
			if r == 0 {
				require.Equal(t, float32(0), c)
			} else {
				require.Greater(t, c, u)
			}
		}
		require.Equal(t, 1-epsilon32, uniform32(mask32-1)*scale32/(scale32-1.0))
		require.Equal(t, float32(1), uniform32(mask32)*scale32/(scale32-1.0))
	})

	t.Run("Float64", func(t *testing.T) {
		for _, r := range []uint64{0, 1, 2, 0x1234, mask64 / 2, mask64 - 1, mask64} {
			u := uniform64(r)
			o := u + 0.5/scale64
			require.Equal(t, epsilon64/2, o-u) // the half-ulp shift is exact

			c := u * scale64 / (scale64 - 1.0)
			if r == 0 {
				require.Equal(t, float64(0), c)
			} else {
				require.Greater(t, c, u)
			}
		}
		require.Equal(t, 1-epsilon64, uniform64(mask64-1)*scale64/(scale64-1.0))
		require.Equal(t, float64(1), uniform64(mask64)*scale64/(scale64-1.0))
	})
}
