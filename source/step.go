package source

// StepSource is a deterministic Source for tests: it yields v, v+inc,
// v+2*inc, ... with wrapping arithmetic. NextU32 truncates the current value
// to its low 32 bits. A zero increment produces a constant stream, which is
// how the deterministic edge cases of the samplers are exercised.
type StepSource struct {
	v, inc uint64
}

// NewStepSource creates a new StepSource starting at v and advancing by inc
// on every call.
func NewStepSource(v, inc uint64) *StepSource {
	return &StepSource{v: v, inc: inc}
}

// NextU32 returns the low 32 bits of the current value and advances.
func (s *StepSource) NextU32() uint32 {
	x := s.v
	s.v += s.inc
	return uint32(x)
}

// NextU64 returns the current value and advances.
func (s *StepSource) NextU64() uint64 {
	x := s.v
	s.v += s.inc
	return x
}
