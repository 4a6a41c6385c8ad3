// Package source implements bit sources: generators of uniformly
// distributed fixed-width unsigned integers, consumed one word per sample
// request by the distribution package.
package source

// Source is an interface for generators of uniform random machine words.
// Implementations must return values uniformly distributed over the full
// range of the return type and must advance their internal state on every
// call, so successive words are produced in the exact order the underlying
// bits were consumed.
//
// Unless documented otherwise, a Source is NOT safe for concurrent use:
// concurrent unsynchronized calls interleave state advancement and the
// resulting sequence is undefined. Independent Source instances may be
// sampled fully in parallel.
type Source interface {
	// NextU32 returns a uniformly distributed uint32.
	NextU32() uint32

	// NextU64 returns a uniformly distributed uint64.
	NextU64() uint64
}
