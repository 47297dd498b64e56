//go:build windows

package mitab

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// Lock the whole file: offset 0, length max_uint32:max_uint32.
const lockRange = 0xFFFFFFFF

func (l *fileLock) lock(mode LockMode) error {
	flags := uint32(windows.LOCKFILE_FAIL_IMMEDIATELY)
	if mode == LockExclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}

	var overlapped windows.Overlapped
	err := windows.LockFileEx(windows.Handle(l.f.Fd()), flags, 0, lockRange, lockRange, &overlapped)
	if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
		return fmt.Errorf("%w: %s", ErrLocked, l.f.Name())
	}
	return err
}

func (l *fileLock) unlock() error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(l.f.Fd()), 0, lockRange, lockRange, &overlapped)
}
