package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytkit/continuation"
)

func newStore(t *testing.T) (*WalkStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walks.json")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestOpenCreatesFile(t *testing.T) {
	_, path := newStore(t)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestPutGetRoundTrip(t *testing.T) {
	s, _ := newStore(t)

	state := continuation.NewState(continuation.Token{Family: continuation.FamilyPlaylist, Value: "CONT1"})
	state.Retrieved = 100
	state.Pages = 1

	w := &Walk{Name: "mix", Command: "playlist PL1", State: state}
	require.NoError(t, s.Put(w))
	assert.NotEmpty(t, w.ID)

	got, err := s.Get("mix")
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
	assert.Equal(t, "playlist PL1", got.Command)
	assert.Equal(t, "CONT1", got.State.Token.Value)
	assert.Equal(t, continuation.FamilyPlaylist, got.State.Token.Family)
	assert.Equal(t, 100, got.State.Retrieved)
	assert.True(t, got.State.HasMore())
}

func TestPutKeepsID(t *testing.T) {
	s, _ := newStore(t)

	first := &Walk{Name: "w", State: continuation.NewState(continuation.Token{Value: "A"})}
	require.NoError(t, s.Put(first))

	second := &Walk{Name: "w", State: continuation.NewState(continuation.Token{Value: "B"})}
	require.NoError(t, s.Put(second))
	assert.Equal(t, first.ID, second.ID)

	got, err := s.Get("w")
	require.NoError(t, err)
	assert.Equal(t, "B", got.State.Token.Value)
}

func TestPutRejectsInvalid(t *testing.T) {
	s, _ := newStore(t)

	assert.ErrorIs(t, s.Put(nil), ErrInvalidInput)
	assert.ErrorIs(t, s.Put(&Walk{Name: "x"}), ErrInvalidInput)
	assert.ErrorIs(t, s.Put(&Walk{State: continuation.NewState(continuation.Token{})}), ErrInvalidInput)
}

func TestGetDeleteMissing(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "nope", serr.Name)

	assert.ErrorIs(t, s.Delete("nope"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Put(&Walk{Name: "w", State: continuation.NewState(continuation.Token{Value: "A"})}))

	require.NoError(t, s.Delete("w"))
	_, err := s.Get("w")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSorted(t *testing.T) {
	s, _ := newStore(t)
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, s.Put(&Walk{Name: name, State: continuation.NewState(continuation.Token{Value: name})}))
	}

	walks := s.List()
	require.Len(t, walks, 3)
	assert.Equal(t, "a", walks[0].Name)
	assert.Equal(t, "b", walks[1].Name)
	assert.Equal(t, "c", walks[2].Name)
}

func TestPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walks.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(&Walk{Name: "w", State: continuation.NewState(continuation.Token{Value: "A"})}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("w")
	require.NoError(t, err)
	assert.Equal(t, "A", got.State.Token.Value)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrStorageCorrupt)

	// The lock is released on failure.
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0"}`), 0o600))
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Empty(t, s.List())
}

func TestFileLockExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walks.json")

	held := newFileLock(path)
	require.NoError(t, held.lock(time.Second))

	other := newFileLock(path)
	assert.ErrorIs(t, other.lock(50*time.Millisecond), ErrLockTimeout)

	require.NoError(t, held.unlock())
	require.NoError(t, other.lock(time.Second))
	require.NoError(t, other.unlock())
}

func TestWriteAtomicLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("ok"))
		return err
	}))
	assert.Error(t, writeAtomic(path, func(io.Writer) error { return assert.AnError }))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
