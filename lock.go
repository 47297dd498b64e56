// Advisory file locking for cross-handle coordination.
//
// A LineFile opened for reading holds a shared lock, one opened for writing
// holds an exclusive lock. Both are taken without blocking: a converter that
// tries to read a MIF file another process is still writing gets ErrLocked
// instead of a half-written file. Locks are released when the handle closes.
package mitab

import "os"

// LockMode selects shared (read) or exclusive (write) locking.
type LockMode int

const (
	LockShared LockMode = iota
	LockExclusive
)

// fileLock holds the flock taken on an open handle.
type fileLock struct {
	f *os.File
}

// acquire locks f in the given mode. The lock is returned only on success.
func acquire(f *os.File, mode LockMode) (*fileLock, error) {
	l := &fileLock{f: f}
	if err := l.lock(mode); err != nil {
		return nil, err
	}
	return l, nil
}

// release drops the lock. Safe on a nil receiver.
func (l *fileLock) release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.unlock()
	l.f = nil
	return err
}
