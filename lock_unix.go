//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package mitab

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func (l *fileLock) lock(mode LockMode) error {
	op := unix.LOCK_SH
	if mode == LockExclusive {
		op = unix.LOCK_EX
	}
	err := unix.Flock(int(l.f.Fd()), op|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		return fmt.Errorf("%w: %s", ErrLocked, l.f.Name())
	}
	return err
}

func (l *fileLock) unlock() error {
	return unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
}
