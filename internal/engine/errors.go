package engine

import "errors"

// Sentinel errors returned by the engine's public operations. Callers should
// use errors.Is against these rather than matching on message text.
var (
	// ErrKeyNotFound is returned by Remove when the key has no live binding.
	// Get never returns it; a missing key there is reported through its bool
	// return instead. The message text ("Key not found") is part of the CLI's
	// externally-visible output and intentionally matches what `rusk get`
	// prints for an absent key.
	ErrKeyNotFound = errors.New("Key not found")

	// ErrUnexpectedCommand is returned by Get when the index points at a log
	// entry that decodes to a Remove rather than a Set. It signals that the
	// in-memory index and the on-disk log have diverged and is never expected
	// in a healthy store.
	ErrUnexpectedCommand = errors.New("rusk: unexpected command at indexed offset")

	// ErrLockHeld is returned by Open when another process already holds the
	// single-writer lock on the store directory.
	ErrLockHeld = errors.New("rusk: store is locked by another process")

	// ErrStoreClosed is returned by any operation attempted on a Store after
	// Close has been called.
	ErrStoreClosed = errors.New("rusk: operation on closed store")
)
