//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly) && !windows

package mitab

// Platforms without flock or LockFileEx run unlocked.

func (l *fileLock) lock(mode LockMode) error { return nil }

func (l *fileLock) unlock() error { return nil }
