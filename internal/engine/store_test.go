package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenGet(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("a", "1"))

	value, ok, err := s.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok, err = s.Get("b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOverwriteSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v1"))
	require.NoError(t, s.Set("k", "v2"))

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", value)
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	value, ok, err = s2.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestRemoveSemantics(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Remove("k"))

	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	err = s.Remove("k")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestDurabilityAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Remove("a"))
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

func TestRemoveMissingKeyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	err = s.Remove("ghost")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, int64(0), s.currentPos)
}

func TestSecondOpenWithoutCloseIsLocked(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = Open(dir)
	assert.True(t, errors.Is(err, ErrLockHeld))
}

func TestOperationsAfterCloseFail(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Set("a", "1")
	assert.True(t, errors.Is(err, ErrStoreClosed))

	_, _, err = s.Get("a")
	assert.True(t, errors.Is(err, ErrStoreClosed))

	err = s.Remove("a")
	assert.True(t, errors.Is(err, ErrStoreClosed))

	assert.True(t, errors.Is(s.Close(), ErrStoreClosed))
}
