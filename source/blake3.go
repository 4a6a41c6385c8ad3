package source

import (
	"io"

	"github.com/zeebo/blake3"
)

// KeySize is the key length, in bytes, expected by NewBlake3Source and
// produced by DeriveKey.
const KeySize = 32

// Blake3Source is a deterministic Source backed by the blake3 XOF. It has
// the same replay contract as [KeyedSource] but requires a key of exactly
// KeySize bytes; use [DeriveKey] to obtain one from arbitrary seed material.
//
// Blake3Source is not safe for concurrent use.
type Blake3Source struct {
	key    []byte
	digest *blake3.Digest
	*ReaderSource
}

// NewBlake3Source creates a new instance of Blake3Source from a KeySize-byte
// key.
func NewBlake3Source(key []byte) (*Blake3Source, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	s := &Blake3Source{
		key:    append([]byte(nil), key...),
		digest: h.Digest(),
	}
	s.ReaderSource = NewReaderSource(s.digest)
	return s, nil
}

// Key returns a copy of the key used to seed the source.
func (s *Blake3Source) Key() (key []byte) {
	key = make([]byte, len(s.key))
	copy(key, s.key)
	return
}

// Reset resets the source to its initial state.
func (s *Blake3Source) Reset() {
	if _, err := s.digest.Seek(0, io.SeekStart); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	s.discard()
}

// DeriveKey hashes arbitrary seed material down to a KeySize-byte key
// suitable for NewBlake3Source.
func DeriveKey(seed []byte) []byte {
	hasher := blake3.New()
	hasher.Write(seed)
	sum := hasher.Sum(nil)
	return sum[:KeySize]
}
