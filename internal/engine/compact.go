package engine

import (
	"os"
	"path/filepath"
)

const compactFileName = "data.compact"

// compact rewrites the log to contain only the entries the current index
// points at, atomically swaps it in for data.log, and rebases the index and
// current_pos onto the new file. It is invoked explicitly via Store.Compact
// or implicitly once uncompacted exceeds the configured threshold.
func (s *Store) compact() error {
	compactPath := filepath.Join(s.path, compactFileName)
	logPath := filepath.Join(s.path, logFileName)

	before := s.currentPos
	beforeUncompacted := s.uncompacted

	compactFile, err := os.OpenFile(compactPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	newIdx := newIndex()
	var newPos int64

	for key, pos := range s.index.entries {
		raw, err := readRawEntryAt(logPath, pos.offset, pos.length)
		if err != nil {
			compactFile.Close()
			return err
		}
		if _, err := compactFile.Write(raw); err != nil {
			compactFile.Close()
			return err
		}
		newIdx.set(key, indexEntry{offset: newPos, length: pos.length})
		newPos += pos.length
	}

	if err := compactFile.Sync(); err != nil {
		compactFile.Close()
		return err
	}
	if err := compactFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(compactPath, logPath); err != nil {
		return err
	}

	if err := s.writer.reopen(logPath); err != nil {
		return err
	}

	s.index = newIdx
	s.currentPos = newPos
	s.uncompacted = 0

	s.log.Infow(
		"compaction complete",
		"path", s.path,
		"keysRetained", newIdx.len(),
		"sizeBefore", before,
		"sizeAfter", newPos,
		"bytesReclaimed", beforeUncompacted,
	)
	return nil
}
