package memhashmap

import (
	"fmt"
)

// Get - Gets the value that is stored under the given key.
// The returned slice is the entry's own buffer, it remains valid and observes in place overwrites
// until the entry is removed or the hash map freed. An absent key is a normal empty result, not
// an error.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - ok is false if no entry was found under the key
func (M *HashMap) Get(key string) (value []byte, ok bool) {
	return M.table.Get(key)
}

// Set - Updates an existing entry with new data in place, or adds it if no existing is found with
// the same key.
//   - key is the identifier of an entry
//   - value is the bytes to store under the key, length must be the ValueLength given when creating the hash map
//
// It returns:
//   - err is of type allocator.OutOfMemory if memory for the entry or a required bucket array growth was denied, in which case the hash map is left unchanged. A wrong value length gives a standard error.
func (M *HashMap) Set(key string, value []byte) (err error) {
	// Check validity of the value
	if int64(len(value)) != M.valueLength {
		err = fmt.Errorf("wrong length of value, should be %d", M.valueLength)
		return
	}

	return M.table.Set(key, value)
}

// Has - Returns true if an entry is stored under the given key
func (M *HashMap) Has(key string) bool {
	_, ok := M.table.Get(key)
	return ok
}

// Remove - Removes the entry stored under the given key. An absent key is a silent no-op.
//   - key is the identifier of an entry
func (M *HashMap) Remove(key string) {
	_, _ = M.table.Remove(key)
}

// Pop - Returns the value stored under the given key and removes the entry from the hash map.
// The returned buffer is exclusively owned by the caller.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - ok is false if no entry was found under the key
func (M *HashMap) Pop(key string) (value []byte, ok bool) {
	return M.table.Remove(key)
}

// Len - Returns the number of entries currently stored
func (M *HashMap) Len() int64 {
	return M.table.Len()
}

// BucketCount - Returns the current length of the bucket array, which is 0 for an empty never
// written map and otherwise always a power of two. It never shrinks on removals.
func (M *HashMap) BucketCount() int64 {
	return M.table.Buckets()
}
