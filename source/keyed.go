package source

import (
	"golang.org/x/crypto/blake2b"
)

// KeyedSource is a Source whose word stream is derived *deterministically*
// from a caller-supplied key using the blake2b XOF, allowing different
// parties to reproduce the same sequence of words from a shared key.
//
// WARNING: KeyedSource should NOT be called by multiple threads. It does not
// make sense to do so as the resulting sequence will not be deterministic
// for a given key. For a source securely seeded from the operating system,
// use [CryptoSource].
type KeyedSource struct {
	key []byte
	xof blake2b.XOF
	*ReaderSource
}

// NewKeyedSource creates a new instance of KeyedSource.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
// WARNING: A source initialised with key=nil produces a fixed, public
// sequence.
func NewKeyedSource(key []byte) (*KeyedSource, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	s := &KeyedSource{
		key: append([]byte(nil), key...),
		xof: xof,
	}
	s.ReaderSource = NewReaderSource(xof)
	return s, nil
}

// Key returns a copy of the key used to seed the source. This value can be
// used with NewKeyedSource to instantiate a new source that will produce the
// same stream of words.
func (s *KeyedSource) Key() (key []byte) {
	key = make([]byte, len(s.key))
	copy(key, s.key)
	return
}

// Reset resets the source to its initial state: the next word is the first
// word of the stream for the key.
func (s *KeyedSource) Reset() {
	s.xof.Reset()
	s.discard()
}
