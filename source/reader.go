package source

import (
	"encoding/binary"
	"io"
)

const readerBufferSize = 1024

// ReaderSource adapts an io.Reader producing uniformly random bytes (an OS
// entropy reader, an XOF, a capture file) into a Source. Bytes are read in
// blocks of 1024 and served as big-endian words; a partial word left at the
// end of a block is discarded on refill.
//
// ReaderSource is not safe for concurrent use.
type ReaderSource struct {
	r   io.Reader
	buf []byte
	ptr int
}

// NewReaderSource creates a new ReaderSource reading from r. The reader must
// keep producing bytes for as long as the source is sampled.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		r:   r,
		buf: make([]byte, readerBufferSize),
		ptr: readerBufferSize,
	}
}

func (s *ReaderSource) refill() {
	if _, err := io.ReadFull(s.r, s.buf); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	s.ptr = 0
}

// discard drops any buffered bytes so that the next word is read from the
// underlying reader.
func (s *ReaderSource) discard() {
	s.ptr = len(s.buf)
}

// NextU32 returns the next 4 buffered bytes as a big-endian uint32.
func (s *ReaderSource) NextU32() uint32 {
	if s.ptr+4 > len(s.buf) {
		s.refill()
	}
	v := binary.BigEndian.Uint32(s.buf[s.ptr : s.ptr+4])
	s.ptr += 4
	return v
}

// NextU64 returns the next 8 buffered bytes as a big-endian uint64.
func (s *ReaderSource) NextU64() uint64 {
	if s.ptr+8 > len(s.buf) {
		s.refill()
	}
	v := binary.BigEndian.Uint64(s.buf[s.ptr : s.ptr+8])
	s.ptr += 8
	return v
}
