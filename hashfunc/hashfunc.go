package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom key digest
// algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// Sum - Given key it generates an unsigned 64 bit digest over the raw key bytes.
	// The function must be pure and deterministic, the same key always results in the same digest.
	// Digests are cached per stored entry, hence an instance must never change behaviour once it has
	// been handed over to a hash map.
	Sum(key []byte) uint64
}
