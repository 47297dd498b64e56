// Content digest for MIF/MID streams.
//
// Every LineFile keeps a running 64-bit digest of the text it has moved:
// the bytes written in write mode, or the raw lines (terminators included)
// consumed from the source in read mode. Writing a file and reading it back
// to the end therefore yields the same Sum, which makes conversions easy to
// verify. Three algorithms are supported, selectable via Config.HashAlgorithm.
package mitab

import (
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Digest algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// newHash returns a fresh digest for alg.
func newHash(alg int) (hash.Hash, error) {
	switch alg {
	case AlgXXHash3:
		return xxh3.New(), nil
	case AlgFNV1a:
		return fnv.New64a(), nil
	case AlgBlake2b:
		return blake2b.New(8, nil) // 8 bytes = 64 bits
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, alg)
	}
}

// digest formats a hash state as 16 hex characters.
func digest(h hash.Hash) string {
	return fmt.Sprintf("%016x", h.Sum(nil))
}

// Sum returns the digest of the text moved since Open (or since the last
// Rewind) as 16 hex characters. It returns "" when the file is closed.
func (f *LineFile) Sum() string {
	if f.hasher == nil {
		return ""
	}
	return digest(f.hasher)
}

// SumString digests s in one shot with the given algorithm.
func SumString(s string, alg int) (string, error) {
	h, err := newHash(alg)
	if err != nil {
		return "", err
	}
	h.Write([]byte(s))
	return digest(h), nil
}
