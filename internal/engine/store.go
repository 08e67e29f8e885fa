// Package engine implements the Bitcask-style storage engine at the heart of
// rusk: an append-only command log on disk, an in-memory key -> offset index
// rebuilt by replaying that log on Open, and a compactor that rewrites the
// log to reclaim space while preserving every live binding.
package engine

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

const logFileName = "data.log"

// Store is a single-process, single-writer, embedded key-value store backed
// by one append-only log file. All operations on a given Store are totally
// ordered by the order of calls; there is no concurrent-access contract.
type Store struct {
	path    string
	options Options

	index       *index
	writer      *logWriter
	lock        *flock.Flock
	currentPos  int64
	uncompacted int64

	log    *zap.SugaredLogger
	closed atomic.Bool
}

// Open opens (creating if necessary) the store directory at path, acquires
// the single-writer lock, replays data.log to rebuild the index, and returns
// a Store ready for operations.
func Open(path string, opts ...Option) (*Store, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, err
	}

	lock, err := acquireLock(filepath.Join(path, lockFileName))
	if err != nil {
		return nil, err
	}

	logPath := filepath.Join(path, logFileName)

	replayed, err := replayLog(logPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	writer, err := openLogWriter(logPath, replayed.currentPos)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	s := &Store{
		path:        path,
		options:     options,
		index:       replayed.idx,
		writer:      writer,
		lock:        lock,
		currentPos:  replayed.currentPos,
		uncompacted: replayed.uncompacted,
		log:         options.Logger,
	}

	s.log.Infow(
		"store opened",
		"path", path,
		"recoveredKeys", s.index.len(),
		"recoveredBytes", s.currentPos,
		"recoveredUncompacted", s.uncompacted,
	)

	return s, nil
}

// Set binds key to value, durably. If key already had a binding, the old
// record becomes dead space counted toward the next compaction.
func (s *Store) Set(key, value string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	payload, err := encodeCommand(newSetCommand(key, value))
	if err != nil {
		return err
	}

	length, err := s.writer.append(payload, s.options.SyncOnWrite)
	if err != nil {
		return err
	}

	pos := indexEntry{offset: s.currentPos, length: length}
	s.currentPos += length

	if old, displaced := s.index.set(key, pos); displaced {
		s.uncompacted += old.length
	}

	return s.maybeCompact()
}

// Get returns the value bound to key. The bool is false when key has no
// binding; that is not an error. An error is returned only when the store
// is closed (ErrStoreClosed), the index and the on-disk log have diverged
// (ErrUnexpectedCommand), or an I/O or decode failure occurs while reading
// the record.
func (s *Store) Get(key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, ErrStoreClosed
	}

	pos, ok := s.index.get(key)
	if !ok {
		return "", false, nil
	}

	payload, err := readEntryAt(filepath.Join(s.path, logFileName), pos.offset)
	if err != nil {
		return "", false, err
	}

	cmd, err := decodeCommand(payload)
	if err != nil {
		return "", false, err
	}

	if cmd.Type != commandSet {
		return "", false, ErrUnexpectedCommand
	}
	return cmd.Value, true, nil
}

// Remove deletes key's binding, durably. It fails with ErrKeyNotFound, and
// writes nothing to the log, when key has no live binding.
func (s *Store) Remove(key string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	old, ok := s.index.get(key)
	if !ok {
		return ErrKeyNotFound
	}

	payload, err := encodeCommand(newRemoveCommand(key))
	if err != nil {
		return err
	}

	length, err := s.writer.append(payload, s.options.SyncOnWrite)
	if err != nil {
		return err
	}
	s.currentPos += length

	s.index.remove(key)
	s.uncompacted += old.length
	s.uncompacted += length

	return s.maybeCompact()
}

// Compact explicitly rewrites the log to contain only live entries. It is a
// no-op from the caller's point of view on every subsequent Get or Remove:
// every key resolves to the same value it did beforehand.
func (s *Store) Compact() error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	return s.compact()
}

func (s *Store) maybeCompact() error {
	if s.uncompacted > s.options.CompactionThreshold {
		return s.compact()
	}
	return nil
}

// Close releases the store's writer and lock handles. The log file persists.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrStoreClosed
	}

	writerErr := s.writer.close()
	lockErr := s.lock.Unlock()

	s.log.Infow("store closed", "path", s.path)

	if writerErr != nil {
		return writerErr
	}
	return lockErr
}
