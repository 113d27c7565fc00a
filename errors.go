package memhashmap

import "github.com/gostonefire/memhashmap/allocator"

// OutOfMemory - The one recoverable error kind of the hash map, returned by Set when memory for a
// new entry or a grown bucket array could not be obtained. Aliased here so implementations using
// the map need not import the allocator package just to match it with errors.Is.
type OutOfMemory = allocator.OutOfMemory
