package conversation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malonaz/docchat/internal/api"
)

func newReadySession(t *testing.T) *Session {
	t.Helper()
	session := newSession("chat-1", "Chat 1", false)
	session.MarkDocumentsReady()
	return session
}

func TestBeginQuestion(t *testing.T) {
	t.Run("appends the user message before any round-trip", func(t *testing.T) {
		session := newReadySession(t)

		ok := session.BeginQuestion("What is the termination clause?")
		require.True(t, ok)
		require.True(t, session.Pending())

		messages := session.Messages()
		require.Len(t, messages, 1)
		require.Equal(t, SenderUser, messages[0].Sender)
		require.Equal(t, KindPlain, messages[0].Kind)
		require.Equal(t, "What is the termination clause?", messages[0].Text)
	})

	t.Run("trims the question", func(t *testing.T) {
		session := newReadySession(t)

		require.True(t, session.BeginQuestion("  hello \n"))
		require.Equal(t, "hello", session.Messages()[0].Text)
	})

	t.Run("rejects blank questions", func(t *testing.T) {
		session := newReadySession(t)

		require.False(t, session.BeginQuestion(""))
		require.False(t, session.BeginQuestion("   \n\t"))
		require.Empty(t, session.Messages())
		require.False(t, session.Pending())
	})

	t.Run("rejects questions while one is in flight", func(t *testing.T) {
		session := newReadySession(t)

		require.True(t, session.BeginQuestion("first"))
		require.False(t, session.BeginQuestion("second"))
		require.Len(t, session.Messages(), 1)
	})

	t.Run("rejects questions until documents are ready", func(t *testing.T) {
		session := newSession("chat-1", "Chat 1", false)

		require.False(t, session.BeginQuestion("anyone there?"))
		require.Empty(t, session.Messages())

		session.MarkDocumentsReady()
		require.True(t, session.BeginQuestion("anyone there?"))
	})
}

func TestResolveAnswer(t *testing.T) {
	t.Run("direct answer appends exactly one assistant message", func(t *testing.T) {
		session := newReadySession(t)
		require.True(t, session.BeginQuestion("What is the termination clause?"))

		session.ResolveAnswer(&api.DirectAnswer{Text: "Clause 5 covers termination."})

		require.False(t, session.Pending())
		messages := session.Messages()
		require.Len(t, messages, 2)
		require.Equal(t, SenderAssistant, messages[1].Sender)
		require.Equal(t, KindPlain, messages[1].Kind)
		require.Equal(t, "Clause 5 covers termination.", messages[1].Text)
		require.False(t, messages[1].IsError)
	})

	t.Run("deep-think answer appends exactly three messages in stage order", func(t *testing.T) {
		session := newReadySession(t)
		require.True(t, session.BeginQuestion("Summarize section 2"))

		session.ResolveAnswer(&api.DeepThinkAnswer{Initial: "A", Critique: "B", Final: "C"})

		require.False(t, session.Pending())
		messages := session.Messages()
		require.Len(t, messages, 4)
		require.Equal(t, KindInitial, messages[1].Kind)
		require.Equal(t, "A", messages[1].Text)
		require.Equal(t, KindCritique, messages[2].Kind)
		require.Equal(t, "B", messages[2].Text)
		require.Equal(t, KindFinal, messages[3].Kind)
		require.Equal(t, "C", messages[3].Text)
		for _, message := range messages[1:] {
			require.Equal(t, SenderAssistant, message.Sender)
		}
	})

	t.Run("nil answer settles as a failure", func(t *testing.T) {
		session := newReadySession(t)
		require.True(t, session.BeginQuestion("hello"))

		session.ResolveAnswer(nil)

		require.False(t, session.Pending())
		messages := session.Messages()
		require.Len(t, messages, 2)
		require.True(t, messages[1].IsError)
	})
}

func TestResolveFailure(t *testing.T) {
	session := newReadySession(t)
	require.True(t, session.BeginQuestion("hello"))

	session.ResolveFailure()

	require.False(t, session.Pending())
	messages := session.Messages()
	require.Len(t, messages, 2)
	require.Equal(t, SenderAssistant, messages[1].Sender)
	require.True(t, messages[1].IsError)
	require.Equal(t, ConnectivityErrorNotice, messages[1].Text)

	// The session stays usable.
	require.True(t, session.BeginQuestion("still there?"))
}

func TestSetDeepThink(t *testing.T) {
	session := newReadySession(t)
	require.False(t, session.DeepThink())

	session.SetDeepThink(true)
	require.True(t, session.DeepThink())

	// The mode persists across turns until changed.
	require.True(t, session.BeginQuestion("hello"))
	session.ResolveAnswer(&api.DirectAnswer{Text: "hi"})
	require.True(t, session.DeepThink())
}

func TestMessagesReturnsSnapshot(t *testing.T) {
	session := newReadySession(t)
	require.True(t, session.BeginQuestion("hello"))

	snapshot := session.Messages()
	session.ResolveAnswer(&api.DirectAnswer{Text: "hi"})

	require.Len(t, snapshot, 1)
	require.Len(t, session.Messages(), 2)
}
