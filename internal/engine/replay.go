package engine

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// replayResult is what a fresh scan of the log produces: a rebuilt index, the
// byte count consumed (the new current_pos), and the dead-byte tally that
// seeds uncompacted.
type replayResult struct {
	idx         *index
	currentPos  int64
	uncompacted int64
}

// replayLog scans path from offset 0 to its end, decoding one entry per
// iteration and folding it into the returned index and uncompacted counter.
// If the file is absent or empty, it returns an empty result. A header read
// that hits premature EOF stops the scan cleanly at the last well-formed
// entry boundary; a payload that cannot be fully read or fails to decode
// fails the whole replay, since that indicates a corrupt file rather than a
// clean truncation point.
func replayLog(path string) (replayResult, error) {
	result := replayResult{idx: newIndex()}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return replayResult{}, err
	}
	defer f.Close()

	var pos int64
	for {
		var hdr [lengthHeaderSize]byte
		if _, err := io.ReadFull(f, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return replayResult{}, err
		}
		n := binary.BigEndian.Uint32(hdr[:])

		payload := make([]byte, n)
		if _, err := io.ReadFull(f, payload); err != nil {
			return replayResult{}, err
		}

		cmd, err := decodeCommand(payload)
		if err != nil {
			return replayResult{}, err
		}

		entryLen := int64(lengthHeaderSize) + int64(n)

		switch cmd.Type {
		case commandSet:
			if old, displaced := result.idx.set(cmd.Key, indexEntry{offset: pos, length: entryLen}); displaced {
				result.uncompacted += old.length
			}
		case commandRemove:
			if old, removed := result.idx.remove(cmd.Key); removed {
				result.uncompacted += old.length
			}
			// A Remove entry is itself dead space: it holds no live value.
			// This is charged unconditionally, even for a Remove of a key
			// with no prior live binding in this scan.
			result.uncompacted += entryLen
		}

		pos += entryLen
	}

	result.currentPos = pos
	return result, nil
}
