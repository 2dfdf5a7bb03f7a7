package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytkit/continuation"
	"ytkit/internal/storage"
	"ytkit/renderer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenRoundTrip(t *testing.T) {
	packed, err := execute(t, "token", "PL123", "250")
	require.NoError(t, err)
	token := strings.TrimSpace(packed)
	require.NotEmpty(t, token)

	decoded, err := execute(t, "token", token)
	require.NoError(t, err)
	assert.Contains(t, decoded, "VLPL123")
	assert.Contains(t, decoded, "offset")
	assert.Contains(t, decoded, "250")
}

func TestTokenRejectsBadInput(t *testing.T) {
	_, err := execute(t, "token", "PL123", "-5")
	assert.Error(t, err)

	_, err = execute(t, "token", "PL123", "ten")
	assert.Error(t, err)

	_, err = execute(t, "token", "!!!")
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"search", "browse", "playlist", "watch", "comments", "player", "token", "walks"} {
		assert.Contains(t, names, want)
	}
}

func TestPrintItems(t *testing.T) {
	items := []renderer.Container{
		{
			Category:        renderer.CategoryContainer,
			OriginalVariant: "itemSectionRenderer",
			Data: renderer.Section{ID: "s1", Items: []renderer.Container{
				{Category: renderer.CategoryVideo, OriginalVariant: "videoRenderer",
					Data: renderer.Video{ID: "abc", Title: "A video", ViewCountText: "12 views"}},
			}},
		},
		{Category: renderer.CategoryException, OriginalVariant: "brokenRenderer",
			Data: renderer.Exception{Message: "boom", Variant: "brokenRenderer"}},
	}

	var out bytes.Buffer
	printItems(&out, items)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "itemSectionRenderer")
	assert.True(t, strings.HasPrefix(lines[2], "  video"))
	assert.Contains(t, lines[2], "12 views")
	assert.Contains(t, lines[3], "boom")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "a b", truncate("a\nb", 10))
	assert.Equal(t, "a · c", joinNonEmpty("a", "", "c"))
}

func TestSaveWalk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walks.json")
	store, err := storage.Open(path)
	require.NoError(t, err)

	state := continuation.NewState(continuation.Token{Family: continuation.FamilyPlaylist, Value: "CONT"})
	state.Pages = 2
	require.NoError(t, saveWalk(store, "mix", "playlist PL1", state))

	w, err := store.Get("mix")
	require.NoError(t, err)
	assert.Equal(t, "playlist PL1", w.Command)
	assert.Equal(t, 2, w.State.Pages)

	// A finished walk is forgotten, and forgetting twice is fine.
	done := continuation.NewState(continuation.Token{})
	require.NoError(t, saveWalk(store, "mix", "playlist PL1", done))
	require.NoError(t, saveWalk(store, "mix", "playlist PL1", done))
	_, err = store.Get("mix")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, saveWalk(store, "other", "search cats", state))
	require.NoError(t, store.Close())

	out, err := execute(t, "walks", "--state-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "other")
	assert.Contains(t, out, "search cats")

	_, err = execute(t, "walks", "--state-file", path, "--delete", "other")
	require.NoError(t, err)

	out, err = execute(t, "walks", "--state-file", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "search cats")

	_, err = execute(t, "walks", "--state-file", path, "--delete", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
