package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	return NewHistoryAt(filepath.Join(t.TempDir(), "history"))
}

func TestNavigation(t *testing.T) {
	h := newTestHistory(t)
	h.Add("first question")
	h.Add("second question")

	// Walking back saves the current input.
	entry, ok := h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "second question", entry)

	entry, ok = h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "first question", entry)

	// At the oldest entry we stay put.
	entry, ok = h.Previous("draft")
	require.False(t, ok)
	require.Equal(t, "first question", entry)

	// Walking forward restores the saved input at the end.
	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "second question", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "draft", entry)

	_, ok = h.Next()
	require.False(t, ok)
}

func TestAdd(t *testing.T) {
	h := newTestHistory(t)

	// Blank entries are ignored.
	h.Add("   ")
	_, ok := h.Previous("")
	require.False(t, ok)

	// Consecutive duplicates are collapsed.
	h.Add("same")
	h.Add("same")
	entry, ok := h.Previous("")
	require.True(t, ok)
	require.Equal(t, "same", entry)
	_, ok = h.Previous("")
	require.False(t, ok)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistoryAt(path)
	h.Add("multi\nline question")
	h.Add("second")

	reloaded := NewHistoryAt(path)
	entry, ok := reloaded.Previous("")
	require.True(t, ok)
	require.Equal(t, "second", entry)
	entry, ok = reloaded.Previous("")
	require.True(t, ok)
	require.Equal(t, "multi\nline question", entry)
}

func TestReset(t *testing.T) {
	h := newTestHistory(t)
	h.Add("question")

	_, ok := h.Previous("draft")
	require.True(t, ok)

	h.Reset()
	entry, ok := h.Previous("fresh")
	require.True(t, ok)
	require.Equal(t, "question", entry)
	require.Equal(t, "fresh", h.current)
}
