package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/chain"
)

// Iterator - Is used to iterate over the entries of a HashMap one by one, in bucket index order
// and within a bucket in chain order (most recently inserted first). That order is an
// implementation artifact and not a contract.
//
// An Iterator borrows its HashMap for its entire use, the map must not be mutated (Set of a new
// key, Remove, Pop, Free) while an iterator derived from it is still in use.
type Iterator struct {
	inner *chain.Iterator
	key   string
	value []byte
	valid bool
}

// Iterate - Returns a pointer to a new Iterator over the hash map's live entries
func (M *HashMap) Iterate() *Iterator {
	iter := &Iterator{inner: M.table.NewIterator()}
	iter.key, iter.value, iter.valid = iter.inner.Next()

	return iter
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *Iterator) HasNext() bool {
	return I.valid
}

// Next - Returns the next entry's key and value.
// The value slice is the entry's own buffer, valid until the entry is removed or the map freed.
// Once the iterator is exhausted every further call keeps returning an empty key and a nil value,
// a fresh Iterator must be constructed to re-scan.
func (I *Iterator) Next() (key string, value []byte) {
	if !I.valid {
		return
	}

	key = I.key
	value = I.value
	I.key, I.value, I.valid = I.inner.Next()

	return
}
