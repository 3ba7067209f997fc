package concurrency

import "sync"

// LockManager hands out per-player advisory locks. Interactive handlers
// take the lock blocking; background sweeps use TryLock and skip players
// that are busy.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager.
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given player ID, creating it on first use.
func (lm *LockManager) GetLock(playerID int64) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(playerID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryLock attempts to take the player's lock without blocking. The caller
// must Unlock the returned mutex when it reports true.
func (lm *LockManager) TryLock(playerID int64) (*sync.Mutex, bool) {
	lock := lm.GetLock(playerID)
	return lock, lock.TryLock()
}
