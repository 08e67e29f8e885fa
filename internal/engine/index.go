package engine

// indexEntry locates exactly one log entry: its byte offset within the
// current log file and its total on-disk length (header + payload).
type indexEntry struct {
	offset int64
	length int64
}

// index is the in-memory key -> indexEntry mapping. It covers only keys
// whose latest command is a Set, carries no ordering guarantees, and is
// rebuilt from the log on every Open; it is never persisted.
type index struct {
	entries map[string]indexEntry
}

func newIndex() *index {
	return &index{entries: make(map[string]indexEntry)}
}

func (idx *index) get(key string) (indexEntry, bool) {
	e, ok := idx.entries[key]
	return e, ok
}

// set installs pos under key and reports the entry it displaced, if any.
func (idx *index) set(key string, pos indexEntry) (old indexEntry, displaced bool) {
	old, displaced = idx.entries[key]
	idx.entries[key] = pos
	return old, displaced
}

// remove drops key and reports the entry it removed, if any.
func (idx *index) remove(key string) (old indexEntry, removed bool) {
	old, removed = idx.entries[key]
	if removed {
		delete(idx.entries, key)
	}
	return old, removed
}

func (idx *index) len() int {
	return len(idx.entries)
}
