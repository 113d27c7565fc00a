package allocator

import "fmt"

// Allocator - Interface that permits an implementation using the HashMap to supply a custom memory
// accounting strategy. The hash map charges every entry and every bucket array it creates to the
// allocator before the backing memory is made, and returns the same number of bytes when an entry is
// removed or the map is freed. An implementation that can not grant a reservation must return an
// error of type OutOfMemory, which surfaces unchanged to the caller of Set.
//
// Implementations are not required to be safe for concurrent use, the hash map itself is not.
type Allocator interface {
	// Alloc - Reserves size bytes.
	// It returns an error of type OutOfMemory if the reservation can not be granted, in which case
	// no bytes are to be considered reserved.
	Alloc(size int64) error

	// Free - Returns size bytes previously reserved through Alloc
	Free(size int64)
}

// UnboundedAllocator - The default allocator, it grants every reservation and keeps no accounting.
// With this allocator the hash map is limited by process memory only.
type UnboundedAllocator struct{}

// NewUnboundedAllocator - Returns a pointer to a new UnboundedAllocator instance
func NewUnboundedAllocator() *UnboundedAllocator {
	return &UnboundedAllocator{}
}

// Alloc - Grants the reservation unconditionally
func (U *UnboundedAllocator) Alloc(_ int64) error {
	return nil
}

// Free - Does nothing, the UnboundedAllocator keeps no accounting
func (U *UnboundedAllocator) Free(_ int64) {}

// QuotaAllocator - An allocator enforcing a fixed byte budget. Once the budget is reached further
// reservations fail with OutOfMemory until enough bytes have been returned through Free.
type QuotaAllocator struct {
	quota int64
	used  int64
}

// NewQuotaAllocator - Returns a pointer to a new QuotaAllocator instance
//   - quota is the total number of bytes the allocator may grant at any one time, it must be a positive value higher than 0 (zero)
func NewQuotaAllocator(quota int64) (allocator *QuotaAllocator, err error) {
	if quota <= 0 {
		err = fmt.Errorf("quota must be a positive value higher than 0 (zero)")
		return
	}

	allocator = &QuotaAllocator{quota: quota}
	return
}

// Alloc - Reserves size bytes from the budget, or returns an error of type OutOfMemory if the
// budget would be exceeded
func (Q *QuotaAllocator) Alloc(size int64) error {
	if Q.used+size > Q.quota {
		return OutOfMemory{}
	}
	Q.used += size

	return nil
}

// Free - Returns size bytes to the budget
func (Q *QuotaAllocator) Free(size int64) {
	Q.used -= size
	if Q.used < 0 {
		Q.used = 0
	}
}

// Used - Returns the number of bytes currently reserved
func (Q *QuotaAllocator) Used() int64 {
	return Q.used
}

// Quota - Returns the total budget in bytes
func (Q *QuotaAllocator) Quota() int64 {
	return Q.quota
}
