/*
Package rand provides uniform floating-point sampling primitives over
pluggable bit sources. It converts streams of uniformly distributed unsigned
integers into IEEE-754 float32 and float64 values in the half-open [0,1),
open (0,1) and closed [0,1] unit intervals, with full mantissa-bit entropy
and exact boundary semantics.
*/
package rand
