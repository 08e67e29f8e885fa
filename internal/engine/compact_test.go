package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactPreservesView(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, WithCompactionThreshold(1<<30)) // disable the automatic trigger
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Set("c", "3"))

	require.NoError(t, s.Compact())

	assert.Equal(t, int64(0), s.uncompacted)

	_, ok, err := s.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := s.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", value)

	value, ok, err = s.Get("c")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3", value)
}

func TestCompactDropsTombstones(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, WithCompactionThreshold(1<<30))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Compact())

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestAutomaticCompactionTrigger(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, WithCompactionThreshold(2048))
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 500; i++ {
		require.NoError(t, s.Set("k", fmt.Sprintf("%d", i)))
	}

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "499", value)

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	// Bounded by a single live Set entry plus whatever was appended after the
	// last automatic compaction; nowhere near 500 full entries.
	assert.Less(t, info.Size(), int64(2048))
}

func TestCompactThenReopenSurvives(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, WithCompactionThreshold(1<<30))
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Compact())
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	_, ok, err := s2.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := s2.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestCrashBeforeRenameIsRecoverable(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, WithCompactionThreshold(1<<30))
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Close())

	// Simulate a crash that staged data.compact but never renamed it over
	// data.log: next open must behave as if compaction had never happened.
	require.NoError(t, os.WriteFile(filepath.Join(dir, compactFileName), []byte("partial garbage"), 0o644))

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	value, ok, err := s2.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", value)

	value, ok, err = s2.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", value)
}
