package hashing

type perftKey struct {
	hash  uint64
	depth int
}

// PerftTable caches node counts by position hash and remaining depth.
type PerftTable struct {
	entries    map[perftKey]uint64
	maxEntries int // 0 disables storing
	hits       int
	misses     int
}

// NewPerftTable creates a table holding at most maxEntries counts.
func NewPerftTable(maxEntries int) *PerftTable {
	return &PerftTable{
		entries:    make(map[perftKey]uint64),
		maxEntries: maxEntries,
	}
}

// Lookup returns the cached count for a position at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[perftKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a node count. Once the table is full new entries are dropped.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[perftKey{hash, depth}] = nodes
}

// IsFull reports whether the table has reached its capacity.
func (t *PerftTable) IsFull() bool {
	return len(t.entries) >= t.maxEntries
}

// Len returns the number of cached counts.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *PerftTable) Misses() int {
	return t.misses
}

// Reset clears the table and its counters.
func (t *PerftTable) Reset() {
	t.entries = make(map[perftKey]uint64)
	t.hits = 0
	t.misses = 0
}
