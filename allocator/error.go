package allocator

// OutOfMemory - Custom error to inform that memory for a new entry or a bucket array could not be obtained
type OutOfMemory struct {
	msg string
}

// Error - Used to notify that the allocator could not obtain memory
func (E OutOfMemory) Error() string {
	if E.msg == "" {
		return "out of memory"
	}
	return E.msg
}
