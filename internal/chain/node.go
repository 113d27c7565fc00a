package chain

import "unsafe"

// nodeBaseBytes - Bookkeeping cost of one node, excluding key and value bytes
var nodeBaseBytes = int64(unsafe.Sizeof(node{}))

// nodePtrBytes - Cost of one bucket slot in the bucket array
var nodePtrBytes = int64(unsafe.Sizeof((*node)(nil)))

// node - Owns one key/value pair in a collision chain.
//   - digest is the cached output of the hash algorithm over the key, it is computed once at creation and never recomputed
//   - key is immutable once the node has been created
//   - value is a private fixed size buffer, overwritten in place when the key is set again
//   - next links to the next node in the same collision chain, or nil
type node struct {
	digest uint64
	key    string
	value  []byte
	next   *node
}

// nodeCost - Returns the number of bytes a node for the given key is charged to the allocator
func nodeCost(key string, valueLength int64) int64 {
	return nodeBaseBytes + int64(len(key)) + valueLength
}
