package memhashmap

import (
	"fmt"

	"github.com/gostonefire/memhashmap/allocator"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/chain"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// HashMap - The main implementation struct, an in-memory string keyed hash map over fixed size
// byte values using separate chaining and a power of two bucket array that doubles whenever the
// number of entries would exceed the number of buckets.
//
// A HashMap has no internal locking, an implementation needing concurrent access must serialize
// all calls externally. An Iterator borrows its HashMap for its entire use, mutating the map while
// an iterator derived from it is still in use gives undefined results.
type HashMap struct {
	table             *chain.Table
	valueLength       int64
	internalAlgorithm bool
}

// HashMapConf - Is a struct used in the call to NewHashMapWithConf holding configuration for the new hash map.
//   - ValueLength is the fixed length of the value part in an entry, every value set must be exactly this long
//   - InitialUniqueKeys is the number of unique keys to preallocate buckets for, it is rounded up to the nearest exponent of 2. Zero leaves the map with an empty bucket array that grows on first insert.
//   - HashAlgorithm is an optional entry to provide a custom key digest algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal djb2 variant
//   - Allocator is an optional entry to provide a custom memory accounting strategy following the allocator.Allocator interface, nil selects the unbounded default
type HashMapConf struct {
	ValueLength       int64
	InitialUniqueKeys int64
	HashAlgorithm     hashfunc.HashAlgorithm
	Allocator         allocator.Allocator
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - ValueLength is the fixed length of values in the map
//   - NumberOfBuckets is the current length of the bucket array
//   - InternalAlgorithm is true if the map uses the internal djb2 key digest algorithm
type HashMapInfo struct {
	ValueLength       int64
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - BucketDistribution is the number of entries stored in each available bucket
type HashMapStat struct {
	Records            int64
	BucketDistribution []int64
}

// NewHashMap - Returns a new hash map with an empty bucket array, prepared to store values of the
// given fixed length.
//   - valueLength is the fixed length of the value part in an entry
//   - hashAlgorithm is an optional entry to provide a custom key digest algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal djb2 variant
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal Go Error which should be nil if everything went ok
func NewHashMap(valueLength int64, hashAlgorithm hashfunc.HashAlgorithm) (hashMap *HashMap, err error) {
	return NewHashMapWithConf(HashMapConf{ValueLength: valueLength, HashAlgorithm: hashAlgorithm})
}

// NewHashMapWithConf - Returns a new hash map given a HashMapConf, which above what NewHashMap
// offers permits preallocating the bucket array and supplying a custom allocator.
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is either of type allocator.OutOfMemory if a preallocated bucket array was denied, or a standard error on invalid configuration
func NewHashMapWithConf(conf HashMapConf) (hashMap *HashMap, err error) {
	// Check if the valueLength is valid
	if conf.ValueLength <= 0 {
		err = fmt.Errorf("value length must be a positive value higher than 0 (zero)")
		return
	}

	// Check if initialUniqueKeys is valid
	if conf.InitialUniqueKeys < 0 {
		err = fmt.Errorf("initial unique keys must not be negative")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if conf.HashAlgorithm == nil {
		conf.HashAlgorithm = hashfunc.NewDJB2Algorithm()
		internalAlg = true
	}

	// If no Allocator was given then use the unbounded default
	if conf.Allocator == nil {
		conf.Allocator = allocator.NewUnboundedAllocator()
	}

	var initialBuckets int64
	if conf.InitialUniqueKeys > 0 {
		initialBuckets = utils.RoundUp2(conf.InitialUniqueKeys)
	}

	table, err := chain.NewTable(chain.Conf{
		ValueLength:    conf.ValueLength,
		InitialBuckets: initialBuckets,
		HashAlgorithm:  conf.HashAlgorithm,
		Allocator:      conf.Allocator,
	})
	if err != nil {
		return
	}

	hashMap = &HashMap{
		table:             table,
		valueLength:       conf.ValueLength,
		internalAlgorithm: internalAlg,
	}

	return
}

// Info - Returns a HashMapInfo struct containing some data regarding the hash map
func (M *HashMap) Info() (hashMapInfo HashMapInfo) {
	hashMapInfo = HashMapInfo{
		ValueLength:       M.valueLength,
		NumberOfBuckets:   M.table.Buckets(),
		InternalAlgorithm: M.internalAlgorithm,
	}

	return
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
// If the hash map is very big the HashMapStat.BucketDistribution slice can be memory heavy (there
// will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (M *HashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	hms := HashMapStat{Records: M.table.Len()}

	if includeDistribution {
		hms.BucketDistribution = M.table.Distribution()
	}

	hashMapStat = &hms
	return
}

// Free - Releases all entries and the bucket array, returning every reserved byte to the
// allocator. The hash map must not be used after a call to Free.
func (M *HashMap) Free() {
	M.table.Free()
}
