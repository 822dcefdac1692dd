package chat

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/configuration"
	"github.com/malonaz/docchat/internal/conversation"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	config := &configuration.Config{
		Chat:   &configuration.ChatConfig{},
		Upload: &configuration.UploadConfig{},
	}
	client := api.NewClient("http://127.0.0.1:0", 0)
	registry := conversation.NewRegistry(client, false)
	return New(context.Background(), config, client, registry)
}

func TestSessionLifecycleMessages(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, viewNoSession, m.currentView())

	// A failed bootstrap leaves the no-session view with a visible error.
	m.Update(sessionCreateFailedMsg{err: errors.New("server unreachable")})
	require.False(t, m.loading)
	require.Equal(t, "server unreachable", m.errMessage)
	require.Equal(t, viewNoSession, m.currentView())

	// A successful create routes to the upload view.
	m.Update(sessionCreatedMsg{chatID: "chat-1"})
	require.Empty(t, m.errMessage)
	require.Equal(t, viewUpload, m.currentView())
	require.Equal(t, "chat-1", m.registry.Active().ID)
}

func TestUploadSettlement(t *testing.T) {
	m := newTestModel(t)
	m.Update(sessionCreatedMsg{chatID: "chat-1"})
	session := m.registry.Active()

	// A failed upload keeps the upload view active for a retry.
	m.Update(uploadSettledMsg{sessionID: session.ID, err: errors.New("unsupported file extension")})
	require.Equal(t, viewUpload, m.currentView())
	require.Equal(t, "unsupported file extension", m.errMessage)
	require.False(t, session.DocumentsReady())

	// Success flips documentsReady and reveals the conversation, log empty.
	m.Update(uploadSettledMsg{sessionID: session.ID, err: nil})
	require.Equal(t, viewConversation, m.currentView())
	require.True(t, session.DocumentsReady())
	require.Empty(t, m.errMessage)
	require.Empty(t, session.Messages())
}

func TestQuestionSettlesAgainstItsOwnSession(t *testing.T) {
	m := newTestModel(t)
	m.Update(sessionCreatedMsg{chatID: "chat-1"})
	first := m.registry.Active()
	first.MarkDocumentsReady()
	require.True(t, first.BeginQuestion("What is the termination clause?"))

	// The user switches away while the question is in flight.
	m.Update(sessionCreatedMsg{chatID: "chat-2"})
	second := m.registry.Active()
	require.NotEqual(t, first.ID, second.ID)

	m.Update(questionSettledMsg{
		sessionID: first.ID,
		answer:    &api.DirectAnswer{Text: "Clause 5 covers termination."},
	})

	require.False(t, first.Pending())
	messages := first.Messages()
	require.Len(t, messages, 2)
	require.Equal(t, "Clause 5 covers termination.", messages[1].Text)
	require.Empty(t, second.Messages())
	require.Same(t, second, m.registry.Active())
}

func TestQuestionFailureAppendsErrorMessage(t *testing.T) {
	m := newTestModel(t)
	m.Update(sessionCreatedMsg{chatID: "chat-1"})
	session := m.registry.Active()
	session.MarkDocumentsReady()
	require.True(t, session.BeginQuestion("hello"))

	m.Update(questionSettledMsg{sessionID: session.ID, err: errors.New("connection refused")})

	require.False(t, session.Pending())
	messages := session.Messages()
	require.Len(t, messages, 2)
	require.True(t, messages[1].IsError)
}

func TestModeToggleIgnoredWhilePending(t *testing.T) {
	m := newTestModel(t)
	m.Update(sessionCreatedMsg{chatID: "chat-1"})
	session := m.registry.Active()
	session.MarkDocumentsReady()

	toggle := tea.KeyMsg{Type: tea.KeyCtrlT}
	m.Update(toggle)
	require.True(t, session.DeepThink())

	require.True(t, session.BeginQuestion("hello"))
	m.Update(toggle)
	require.True(t, session.DeepThink(), "toggle must not apply to an in-flight question")

	session.ResolveAnswer(&api.DirectAnswer{Text: "hi"})
	m.Update(toggle)
	require.False(t, session.DeepThink())
}
