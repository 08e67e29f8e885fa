package engine

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
)

// lengthHeaderSize is the width of the framing header in front of every
// entry's payload: a 4-byte big-endian unsigned length, bounding a single
// payload to 2^32-1 bytes.
const lengthHeaderSize = 4

// logWriter is the append-only half of Log I/O. It owns the one writer file
// handle a Store holds for its whole lifetime and keeps writes sequential and
// buffered; the read path (readEntryAt, readRawEntryAt) deliberately never
// shares this handle so a buffered write can never leave a cached read
// position stale.
type logWriter struct {
	file *os.File
	buf  *bufio.Writer
}

// openLogWriter opens path for appending, positioned at validPos. Replay
// treats the file as ending at the last well-formed entry boundary, which
// can fall short of the physical file size when a crash left a torn trailing
// header or payload; truncating here discards those torn bytes so the next
// append lands exactly at validPos instead of after them, keeping currentPos
// equal to the on-disk log length.
func openLogWriter(path string, validPos int64) (*logWriter, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(validPos); err != nil {
		f.Close()
		return nil, err
	}
	return &logWriter{file: f, buf: bufio.NewWriter(f)}, nil
}

// append writes one framed entry for payload and reports its on-disk length
// (header + payload). It flushes the buffer so the bytes reach the OS; when
// sync is true it additionally fsyncs the file.
func (w *logWriter) append(payload []byte, sync bool) (length int64, err error) {
	var hdr [lengthHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(payload)))

	if _, err := w.buf.Write(hdr[:]); err != nil {
		return 0, err
	}
	if _, err := w.buf.Write(payload); err != nil {
		return 0, err
	}
	if err := w.buf.Flush(); err != nil {
		return 0, err
	}
	if sync {
		if err := w.file.Sync(); err != nil {
			return 0, err
		}
	}

	return int64(lengthHeaderSize + len(payload)), nil
}

// reopen points the writer at a freshly rotated log file, positioned for
// further appends. Used after compaction swaps data.compact over data.log.
func (w *logWriter) reopen(path string) error {
	if err := w.file.Close(); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	w.file = f
	w.buf = bufio.NewWriter(f)
	return nil
}

func (w *logWriter) close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// readEntryAt opens a fresh read handle, seeks to offset, reads exactly one
// framed entry, and returns its raw payload bytes (callers decode them with
// decodeCommand). Read handles are never cached or reused across
// calls, keeping the read path independent of the writer's buffered state.
func readEntryAt(path string, offset int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	var hdr [lengthHeaderSize]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(hdr[:])

	payload := make([]byte, n)
	if _, err := io.ReadFull(f, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// readRawEntryAt returns the exact on-disk bytes (header and payload,
// unchanged) of the entry at offset with the given total length. The
// compactor uses this to copy live entries into data.compact verbatim,
// without re-encoding them.
func readRawEntryAt(path string, offset, length int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, err
	}
	return raw, nil
}
