//go:build integration

package memhashmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/allocator"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewHashMap(t *testing.T) {
	t.Run("creates hash map", func(t *testing.T) {
		// Execute
		hm, err := NewHashMap(10, nil)

		// Check
		assert.NoError(t, err, "creates hash map")
		assert.Equal(t, int64(0), hm.Len(), "no entries")
		assert.Equal(t, int64(0), hm.BucketCount(), "no buckets")

		info := hm.Info()
		assert.Equal(t, int64(10), info.ValueLength, "correct value length")
		assert.Equal(t, int64(0), info.NumberOfBuckets, "correct number of buckets")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
	})

	t.Run("creates hash map with custom hash algorithm", func(t *testing.T) {
		// Execute
		hm, err := NewHashMap(10, hashfunc.NewXXHashAlgorithm())

		// Check
		assert.NoError(t, err, "creates hash map")
		assert.False(t, hm.Info().InternalAlgorithm, "has external hash algorithm")
	})

	t.Run("error when supplying an invalid value length", func(t *testing.T) {
		// Execute
		_, err := NewHashMap(0, nil)

		// Check
		assert.Error(t, err)
	})
}

func TestNewHashMapWithConf(t *testing.T) {
	t.Run("preallocates buckets rounded up to power of two", func(t *testing.T) {
		// Execute
		hm, err := NewHashMapWithConf(HashMapConf{ValueLength: 10, InitialUniqueKeys: 1000})

		// Check
		assert.NoError(t, err, "creates hash map")
		assert.Equal(t, int64(1024), hm.BucketCount(), "correct number of buckets")
	})

	t.Run("error when supplying negative initial unique keys", func(t *testing.T) {
		// Execute
		_, err := NewHashMapWithConf(HashMapConf{ValueLength: 10, InitialUniqueKeys: -1})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when preallocation exceeds the allocator quota", func(t *testing.T) {
		// Prepare
		alloc, err := allocator.NewQuotaAllocator(16)
		assert.NoError(t, err, "creates quota allocator")

		// Execute
		_, err = NewHashMapWithConf(HashMapConf{ValueLength: 10, InitialUniqueKeys: 1000, Allocator: alloc})

		// Check
		assert.ErrorIs(t, err, OutOfMemory{}, "denied with out of memory")
	})

	t.Run("quota allocator bounds the number of entries", func(t *testing.T) {
		// Prepare
		alloc, err := allocator.NewQuotaAllocator(2048)
		assert.NoError(t, err, "creates quota allocator")

		hm, err := NewHashMapWithConf(HashMapConf{ValueLength: 8, Allocator: alloc})
		assert.NoError(t, err, "creates hash map")

		// Execute
		var oomAt int
		for i := 1; i <= 1000; i++ {
			err = hm.Set(fmt.Sprintf("key-%d", i), []byte{1, 2, 3, 4, 5, 6, 7, 8})
			if err != nil {
				oomAt = i
				break
			}
		}

		// Check
		assert.ErrorIs(t, err, OutOfMemory{}, "eventually denied with out of memory")
		assert.True(t, errors.Is(err, allocator.OutOfMemory{}), "alias matches allocator error")
		assert.Equal(t, int64(oomAt-1), hm.Len(), "all granted entries live")

		// Every granted entry is still reachable after the denied set
		for i := 1; i < oomAt; i++ {
			assert.True(t, hm.Has(fmt.Sprintf("key-%d", i)), "granted entry reachable")
		}
	})
}

func TestHashMap_Scenario(t *testing.T) {
	t.Run("grows 0-1-2-4 and keeps members through removals and iteration", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap(1, nil)
		assert.NoError(t, err, "creates hash map")

		// Execute
		err = hm.Set("a", []byte{1})
		assert.NoError(t, err, "sets a")
		assert.Equal(t, int64(1), hm.BucketCount(), "one bucket after first insert")

		err = hm.Set("b", []byte{2})
		assert.NoError(t, err, "sets b")
		assert.Equal(t, int64(2), hm.BucketCount(), "two buckets after second insert")

		err = hm.Set("c", []byte{3})
		assert.NoError(t, err, "sets c")
		assert.Equal(t, int64(4), hm.BucketCount(), "four buckets after third insert")

		// Check
		value, ok := hm.Get("b")
		assert.True(t, ok, "finds b")
		assert.Equal(t, []byte{2}, value, "correct value for b")

		hm.Remove("a")
		_, ok = hm.Get("a")
		assert.False(t, ok, "a removed")

		yielded := make(map[string]byte)
		for iter := hm.Iterate(); iter.HasNext(); {
			key, val := iter.Next()
			yielded[key] = val[0]
		}
		assert.Equal(t, map[string]byte{"b": 2, "c": 3}, yielded, "iteration yields exactly the live entries")
		assert.Equal(t, int64(4), hm.BucketCount(), "bucket count kept after removal")
	})
}

func TestHashMap_Stat(t *testing.T) {
	t.Run("reports records and distribution", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap(1, nil)
		assert.NoError(t, err, "creates hash map")
		for i := 0; i < 20; i++ {
			err = hm.Set(fmt.Sprintf("key-%d", i), []byte{byte(i)})
			assert.NoError(t, err, "sets value")
		}

		// Execute
		stat := hm.Stat(true)

		// Check
		assert.Equal(t, int64(20), stat.Records, "correct number of records")
		assert.Equal(t, hm.BucketCount(), int64(len(stat.BucketDistribution)), "one slot per bucket")

		var total int64
		for _, n := range stat.BucketDistribution {
			total += n
		}
		assert.Equal(t, int64(20), total, "distribution sums to number of records")
	})

	t.Run("excludes distribution on request", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap(1, nil)
		assert.NoError(t, err, "creates hash map")
		err = hm.Set("key", []byte{1})
		assert.NoError(t, err, "sets value")

		// Execute
		stat := hm.Stat(false)

		// Check
		assert.Equal(t, int64(1), stat.Records, "correct number of records")
		assert.Nil(t, stat.BucketDistribution, "no distribution included")
	})
}

func TestHashMap_Free(t *testing.T) {
	t.Run("returns the full quota", func(t *testing.T) {
		// Prepare
		alloc, err := allocator.NewQuotaAllocator(1 << 20)
		assert.NoError(t, err, "creates quota allocator")

		hm, err := NewHashMapWithConf(HashMapConf{ValueLength: 16, Allocator: alloc})
		assert.NoError(t, err, "creates hash map")
		for i := 0; i < 100; i++ {
			err = hm.Set(fmt.Sprintf("key-%d", i), make([]byte, 16))
			assert.NoError(t, err, "sets value")
		}
		assert.Greater(t, alloc.Used(), int64(0), "bytes reserved while in use")

		// Execute
		hm.Free()

		// Check
		assert.Equal(t, int64(0), alloc.Used(), "all bytes returned")
	})
}
