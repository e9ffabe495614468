package organizer

import (
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created in the destination root while a run is moving files.
const LockFileName = ".mediaorg.lock"

// acquireLock takes an exclusive, non-blocking lock on the destination. A second
// run against the same destination fails instead of racing the first one's
// collision checks.
func acquireLock(destination string) (*flock.Flock, error) {
	lockPath := filepath.Join(destination, LockFileName)
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrLocked, "lock", "acquire", lockPath, err)
	}
	if !ok {
		return nil, Wrap(ErrLocked, "lock", "acquire", "another run holds "+lockPath, nil)
	}
	return lock, nil
}
