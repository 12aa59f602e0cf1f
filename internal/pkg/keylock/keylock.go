package keylock

import "sync"

// KeyedMutex serializes critical sections per string key. Attendance
// mutations use it keyed by "employeeID:date" so two concurrent check-in
// attempts for the same employee on the same day cannot both pass the
// state-machine validation, while different employees (or different days)
// proceed in parallel.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*lockEntry)}
}

// Lock blocks until the key's lock is held and returns the unlock function.
// Entries are reference counted so the map does not grow unbounded.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
