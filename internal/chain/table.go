package chain

import (
	"github.com/gostonefire/memhashmap/allocator"
	"github.com/gostonefire/memhashmap/hashfunc"
)

// Conf - Is a struct to be passed in the call to NewTable and contains configuration that affects
// table processing. All fields are assumed to be validated by the caller.
//   - ValueLength is the fixed length of values to store
//   - InitialBuckets is the length of the bucket array to preallocate, 0 or a power of two
//   - HashAlgorithm is the key digest algorithm to use
//   - Allocator is the memory accounting strategy to charge entries and bucket arrays to
type Conf struct {
	ValueLength    int64
	InitialBuckets int64
	HashAlgorithm  hashfunc.HashAlgorithm
	Allocator      allocator.Allocator
}

// Table - A separate chaining hash table over string keys and fixed size byte values.
// The bucket array length is always 0 or a power of two, which permits reducing a digest to a
// bucket index with a mask instead of a modulo. Should the implementation ever be changed to
// allow a non power of two bucket count, bucketIdx below must be changed to use modulo instead.
type Table struct {
	buckets       []*node
	nNodes        int64
	valueLength   int64
	hashAlgorithm hashfunc.HashAlgorithm
	alloc         allocator.Allocator
}

// NewTable - Returns a pointer to a new Table instance, with the bucket array preallocated if
// Conf.InitialBuckets is higher than zero.
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type allocator.OutOfMemory if a preallocated bucket array was denied
func NewTable(conf Conf) (table *Table, err error) {
	table = &Table{
		valueLength:   conf.ValueLength,
		hashAlgorithm: conf.HashAlgorithm,
		alloc:         conf.Allocator,
	}

	if conf.InitialBuckets > 0 {
		err = table.alloc.Alloc(conf.InitialBuckets * nodePtrBytes)
		if err != nil {
			table = nil
			return
		}
		table.buckets = make([]*node, conf.InitialBuckets)
	}

	return
}

// Len - Returns the number of live entries
func (T *Table) Len() int64 {
	return T.nNodes
}

// Buckets - Returns the current length of the bucket array
func (T *Table) Buckets() int64 {
	return int64(len(T.buckets))
}

// Get - Returns the value stored under key.
// The returned slice is the entry's own buffer, hence it remains valid and observes in place
// overwrites until the entry is removed or the table freed.
func (T *Table) Get(key string) (value []byte, ok bool) {
	ref := T.findRef(T.hashAlgorithm.Sum([]byte(key)), key)
	if ref == nil {
		return
	}

	value = (*ref).value
	ok = true

	return
}

// Set - Overwrites the value of an existing entry in place, or creates and links a new entry.
// A new entry is charged to the allocator before linking, and the bucket array is grown when the
// number of entries would otherwise exceed the number of buckets. Growth allocates the new array
// before any chain is touched, hence a denied growth leaves every entry exactly where it was.
//
// It returns:
//   - err which is of type allocator.OutOfMemory if the entry or a required growth was denied, in which case the table is unchanged
func (T *Table) Set(key string, value []byte) (err error) {
	digest := T.hashAlgorithm.Sum([]byte(key))

	// Find & replace existing entry
	ref := T.findRef(digest, key)
	if ref != nil {
		copy((*ref).value, value)
		return
	}

	// Add new entry
	n, err := T.newNode(digest, key, value)
	if err != nil {
		return
	}
	if T.nNodes >= int64(len(T.buckets)) {
		err = T.grow()
		if err != nil {
			T.alloc.Free(nodeCost(key, T.valueLength))
			return
		}
	}
	T.addNode(n)
	T.nNodes++

	return
}

// Remove - Unlinks and destroys the entry stored under key, a no-op if the key is absent.
//
// It returns:
//   - value which is the removed entry's buffer, now exclusively owned by the caller
//   - ok which is false if the key was absent
func (T *Table) Remove(key string) (value []byte, ok bool) {
	ref := T.findRef(T.hashAlgorithm.Sum([]byte(key)), key)
	if ref == nil {
		return
	}

	n := *ref
	*ref = n.next
	n.next = nil
	T.nNodes--
	T.alloc.Free(nodeCost(n.key, T.valueLength))

	value = n.value
	ok = true

	return
}

// Distribution - Returns the number of entries per bucket
func (T *Table) Distribution() (distribution []int64) {
	distribution = make([]int64, len(T.buckets))
	for i, n := range T.buckets {
		for ; n != nil; n = n.next {
			distribution[i]++
		}
	}

	return
}

// Free - Destroys every entry and then the bucket array, returning all reserved bytes to the
// allocator. The table must not be used after a call to Free.
func (T *Table) Free() {
	for i := range T.buckets {
		n := T.buckets[i]
		for n != nil {
			next := n.next
			n.next = nil
			T.alloc.Free(nodeCost(n.key, T.valueLength))
			n = next
		}
		T.buckets[i] = nil
	}
	if T.buckets != nil {
		T.alloc.Free(int64(len(T.buckets)) * nodePtrBytes)
		T.buckets = nil
	}
	T.nNodes = 0
}

// newNode - Creates a node owning a private copy of the value, charged to the allocator.
// No partial node is observable on failure.
func (T *Table) newNode(digest uint64, key string, value []byte) (n *node, err error) {
	err = T.alloc.Alloc(nodeCost(key, T.valueLength))
	if err != nil {
		return
	}

	n = &node{digest: digest, key: key, value: make([]byte, T.valueLength)}
	copy(n.value, value)

	return
}

// bucketIdx - Reduces a digest to an index in [0, len(buckets)), relying on the bucket count
// being a power of two
func (T *Table) bucketIdx(digest uint64) uint64 {
	return digest & uint64(len(T.buckets)-1)
}

// addNode - Links a node as the new head of its bucket's chain
func (T *Table) addNode(n *node) {
	idx := T.bucketIdx(n.digest)
	n.next = T.buckets[idx]
	T.buckets[idx] = n
}

// findRef - Walks the chain the key's digest selects and returns the link (bucket head or a
// predecessor's next) holding the matching node, or nil if the key is absent. Digest equality
// alone is not sufficient, collisions are resolved by exact key comparison.
func (T *Table) findRef(digest uint64, key string) **node {
	if len(T.buckets) == 0 {
		return nil
	}

	next := &T.buckets[T.bucketIdx(digest)]
	for *next != nil {
		if (*next).digest == digest && (*next).key == key {
			return next
		}
		next = &(*next).next
	}

	return nil
}

// grow - Reallocates the bucket array to double its length (or 1 from the empty state) and
// redistributes every entry using its cached digest. The new array is obtained before any
// existing chain is touched, hence a denied allocation cancels the growth cleanly with every
// entry still reachable in its original bucket and chain position.
func (T *Table) grow() (err error) {
	oldCount := int64(len(T.buckets))
	newCount := int64(1)
	if oldCount > 0 {
		newCount = oldCount * 2
	}

	err = T.alloc.Alloc(newCount * nodePtrBytes)
	if err != nil {
		return
	}

	newBuckets := make([]*node, newCount)
	mask := uint64(newCount - 1)
	for i := range T.buckets {
		n := T.buckets[i]
		for n != nil {
			next := n.next
			idx := n.digest & mask
			n.next = newBuckets[idx]
			newBuckets[idx] = n
			n = next
		}
		T.buckets[i] = nil
	}

	T.buckets = newBuckets
	T.alloc.Free(oldCount * nodePtrBytes)

	return
}
