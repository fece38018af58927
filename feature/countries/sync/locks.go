package sync

import "sync"

// nameLocks serializes writers per business key. Two concurrent refresh runs
// can interleave batches, but for any single country name the read-check-write
// sequence holds the name's lock, so the existence check cannot race.
type nameLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newNameLocks() *nameLocks {
	return &nameLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for name and returns its release func.
func (n *nameLocks) lock(name string) func() {
	n.mu.Lock()
	l, ok := n.locks[name]
	if !ok {
		l = &sync.Mutex{}
		n.locks[name] = l
	}
	n.mu.Unlock()

	l.Lock()
	return l.Unlock
}
