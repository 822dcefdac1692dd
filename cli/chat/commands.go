package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/file"
)

// Commands only perform network and disk I/O; every registry and session
// mutation happens in Update, on the event loop, when the result lands.

// sessionCreatedMsg carries a server-issued chat id.
type sessionCreatedMsg struct {
	chatID string
}

// sessionCreateFailedMsg reports a failed session bootstrap.
type sessionCreateFailedMsg struct {
	err error
}

// uploadSettledMsg reports the outcome of a document batch upload.
type uploadSettledMsg struct {
	sessionID string
	err       error
}

// questionSettledMsg reports the outcome of a question round-trip.
type questionSettledMsg struct {
	sessionID string
	answer    api.Answer
	err       error
}

func (m *Model) createSession() tea.Cmd {
	return func() tea.Msg {
		chatID, err := m.client.CreateChat(m.ctx)
		if err != nil {
			return sessionCreateFailedMsg{err: err}
		}
		return sessionCreatedMsg{chatID: chatID}
	}
}

func (m *Model) uploadDocuments(sessionID string, paths []string) tea.Cmd {
	return func() tea.Msg {
		files, err := file.Read(paths)
		if err != nil {
			return uploadSettledMsg{sessionID: sessionID, err: err}
		}
		err = m.client.UploadDocuments(m.ctx, sessionID, files)
		return uploadSettledMsg{sessionID: sessionID, err: err}
	}
}

func (m *Model) askQuestion(sessionID, question string, deepThink bool) tea.Cmd {
	return func() tea.Msg {
		request := &api.AskRequest{
			ChatID:    sessionID,
			Question:  question,
			DeepThink: deepThink,
		}
		answer, err := m.client.Ask(m.ctx, request)
		return questionSettledMsg{sessionID: sessionID, answer: answer, err: err}
	}
}
