package services

import "sync"

// userLocks serialises work per user. Entries are dropped once unused.
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*userLock)}
}

func (locks *userLocks) lock(userID uint) func() {
	locks.mu.Lock()
	entry, ok := locks.locks[userID]
	if !ok {
		entry = &userLock{}
		locks.locks[userID] = entry
	}
	entry.refs++
	locks.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		locks.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(locks.locks, userID)
		}
		locks.mu.Unlock()
	}
}
