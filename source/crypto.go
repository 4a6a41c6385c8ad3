package source

import (
	"crypto/rand"
	"encoding/binary"
)

// CryptoSource is a Source drawing words from the operating system entropy
// pool via crypto/rand. It is safe for concurrent use.
type CryptoSource struct {
}

// NewCryptoSource returns a new CryptoSource that is thread-safe.
func NewCryptoSource() (*CryptoSource, error) {
	return &CryptoSource{}, nil
}

// NextU32 returns a uniformly distributed uint32 read from the OS entropy
// pool.
func (s *CryptoSource) NextU32() uint32 {
	b := []byte{0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(b)
}

// NextU64 returns a uniformly distributed uint64 read from the OS entropy
// pool.
func (s *CryptoSource) NextU64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}
