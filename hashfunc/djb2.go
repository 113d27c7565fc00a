package hashfunc

// DJB2Algorithm - The internally used key digest algorithm, a djb2 variant. It starts with the
// accumulator 5381 and folds in one key byte at a time using hash = (hash*33 + hash) ^ byte, with
// natural uint64 wraparound. Key bytes are unsigned by construction in Go, so high byte values
// (128-255) never sign extend into the digest.
type DJB2Algorithm struct{}

// NewDJB2Algorithm - Returns a pointer to a new DJB2Algorithm instance
func NewDJB2Algorithm() *DJB2Algorithm {
	return &DJB2Algorithm{}
}

// Sum - Given key it generates an unsigned 64 bit digest over the raw key bytes
func (D *DJB2Algorithm) Sum(key []byte) uint64 {
	hash := uint64(5381)
	for _, b := range key {
		hash = (hash*33 + hash) ^ uint64(b)
	}
	return hash
}
