package hashfunc

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - An alternative key digest algorithm implemented using xxhash.Sum64. It gives
// better distribution over long keys than the internal djb2 variant at a slightly higher cost for
// very short keys. A hash map created with this algorithm must keep using it for its entire life.
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// Sum - Given key it generates an unsigned 64 bit digest over the raw key bytes
func (X *XXHashAlgorithm) Sum(key []byte) uint64 {
	return xxhash.Sum64(key)
}
