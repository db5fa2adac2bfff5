package tree

import "strconv"

// DefaultClientPrefix is used by NewIDAllocator when no prefix is given.
const DefaultClientPrefix = "ts"

// IDAllocator hands out client ids (ts1, ts2, ...) used as root prefixes.
// Callers own the allocator; there is no process-wide counter.
type IDAllocator struct {
	prefix string
	next   int
}

// NewIDAllocator creates an allocator producing prefix1, prefix2, ...
func NewIDAllocator(prefix string) *IDAllocator {
	if prefix == "" {
		prefix = DefaultClientPrefix
	}
	return &IDAllocator{prefix: prefix}
}

// Next returns the next unused id.
func (a *IDAllocator) Next() string {
	a.next++
	return a.prefix + strconv.Itoa(a.next)
}

func childID(parentID string, index int) string {
	return parentID + "-" + strconv.Itoa(index)
}

func rootID(prefix string, index int) string {
	if prefix == "" {
		return strconv.Itoa(index)
	}
	return childID(prefix, index)
}
