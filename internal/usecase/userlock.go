package usecase

import "sync"

// userLocks hands out one mutex per user ID so that the balance
// check and the statement append run as a single unit for that user.
// Two concurrent withdrawals on the same user must not both pass the
// sufficiency check; operations on different users proceed in
// parallel. Locks are never removed: one mutex per active user is a
// negligible footprint for this service.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for userID, creating it on first use. The
// returned function releases it.
func (l *userLocks) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
