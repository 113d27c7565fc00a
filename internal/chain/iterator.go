package chain

// Iterator - A cursor over a Table's live entries. It scans the bucket array in increasing index
// order and walks each chain from its head, hence entries within one bucket come most recently
// inserted first. That order is an artifact of head insertion and not a contract.
//
// The iterator borrows the table for its entire use, mutating the table (Set of a new key, Remove,
// Free) while an iterator derived from it is still in use gives undefined results.
type Iterator struct {
	table     *Table
	bucketIdx int64
	current   *node
}

// NewIterator - Returns a pointer to a new Iterator instance, positioned before the first bucket
func (T *Table) NewIterator() *Iterator {
	return &Iterator{table: T, bucketIdx: -1}
}

// Next - Advances the cursor and returns the entry it lands on.
// Once every bucket index has been tried the iterator is exhausted and every further call keeps
// returning ok set to false.
//
// It returns:
//   - key of the entry the cursor advanced to
//   - value which is the entry's own buffer, valid until the entry is removed or the table freed
//   - ok which is false when there are no more entries
func (I *Iterator) Next() (key string, value []byte, ok bool) {
	if I.current != nil {
		I.current = I.current.next
	}
	for I.current == nil {
		I.bucketIdx++
		if I.bucketIdx >= int64(len(I.table.buckets)) {
			I.bucketIdx = int64(len(I.table.buckets)) - 1
			return
		}
		I.current = I.table.buckets[I.bucketIdx]
	}

	key = I.current.key
	value = I.current.value
	ok = true

	return
}
