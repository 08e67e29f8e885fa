package engine

import "github.com/gofrs/flock"

// lockFileName is the zero-byte advisory lock file used to enforce the
// single-writer invariant the rest of this package assumes. Its presence on
// disk is not meaningful on its own; only its lock state is.
const lockFileName = "data.log.lock"

// acquireLock takes a non-blocking, exclusive advisory lock on the given
// path. It returns ErrLockHeld, rather than blocking, when another process
// already owns it.
func acquireLock(path string) (*flock.Flock, error) {
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrLockHeld
	}
	return fl, nil
}
