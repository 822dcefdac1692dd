package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"github.com/malonaz/docchat/internal/conversation"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message.
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.recalculateLayout()
		m.refreshViewport()

	case sessionCreatedMsg:
		m.loading = false
		m.errMessage = ""
		session := m.registry.Register(msg.chatID)
		log.Info("session created", "chat_id", session.ID, "display_name", session.DisplayName)
		m.pathInput.Reset()
		m.pathInput.Focus()
		m.refreshViewport()
		return m, tea.Batch(cmds...)

	case sessionCreateFailedMsg:
		m.loading = false
		m.errMessage = msg.err.Error()
		log.Error("session creation failed", "error", msg.err)
		return m, tea.Batch(cmds...)

	case uploadSettledMsg:
		m.loading = false
		session, ok := m.registry.Get(msg.sessionID)
		if !ok {
			return m, tea.Batch(cmds...)
		}
		if msg.err != nil {
			// The session stays on the upload view so the user can retry.
			m.errMessage = msg.err.Error()
			log.Error("upload failed", "chat_id", session.ID, "error", msg.err)
			return m, tea.Batch(cmds...)
		}
		m.errMessage = ""
		session.MarkDocumentsReady()
		log.Info("documents ready", "chat_id", session.ID)
		m.refreshViewport()
		cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Documents uploaded!"))
		return m, tea.Batch(cmds...)

	case questionSettledMsg:
		// Settle against the session that asked, not the active one.
		session, ok := m.registry.Get(msg.sessionID)
		if !ok {
			return m, tea.Batch(cmds...)
		}
		if msg.err != nil {
			log.Error("question failed", "chat_id", session.ID, "error", msg.err)
			session.ResolveFailure()
		} else {
			session.ResolveAnswer(msg.answer)
		}
		if m.registry.Active() == session {
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.updateComponents(msg)...)
	return m, tea.Batch(cmds...)
}

// handleKey handles key presses. The bool reports whether the key was fully
// consumed; unconsumed keys fall through to the focused input component.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit, true
	}

	session := m.registry.Active()

	switch msg.String() {
	case "ctrl+n":
		if !m.loading {
			m.loading = true
			return m, tea.Batch(m.createSession(), m.spinner.Tick), true
		}
		return m, nil, true

	case "tab":
		if next := m.registry.ActivateNext(); next != nil {
			m.errMessage = ""
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
		return m, nil, true

	case "ctrl+t":
		// Stored now, applied on the next submission. The toggle is a no-op
		// while a question is in flight.
		if session != nil && !session.Pending() {
			session.SetDeepThink(!session.DeepThink())
		}
		return m, nil, true
	}

	switch m.currentView() {
	case viewNoSession:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			return m, tea.Batch(m.createSession(), m.spinner.Tick), true
		}

	case viewUpload:
		if msg.Type == tea.KeyEnter && !m.loading {
			paths := strings.Fields(m.pathInput.Value())
			if len(paths) == 0 {
				return m, nil, true
			}
			m.loading = true
			return m, tea.Batch(m.uploadDocuments(session.ID, paths), m.spinner.Tick), true
		}

	case viewConversation:
		switch msg.String() {
		case "alt+p":
			if session.Pending() {
				return m, nil, true
			}
			if entry, ok := m.history.Previous(m.textarea.Value()); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return m, nil, true
		case "alt+n":
			if session.Pending() {
				return m, nil, true
			}
			if entry, ok := m.history.Next(); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return m, nil, true
		case "alt+w":
			if message := latestAssistantMessage(session); message != nil {
				clipboard.Write(clipboard.FmtText, []byte(message.Text))
				return m, m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"), true
			}
			return m, nil, true
		}

		if msg.Type == tea.KeyCtrlJ {
			text := strings.TrimSpace(m.textarea.Value())
			if session.BeginQuestion(text) {
				m.history.Add(text)
				m.historyNavigating = false
				m.textarea.Reset()
				m.recalculateLayout()
				m.refreshViewport()
				m.viewport.GotoBottom()
				return m, tea.Batch(
					m.askQuestion(session.ID, text, session.DeepThink()),
					m.spinner.Tick,
				), true
			}
			return m, nil, true
		}

		if m.historyNavigating {
			switch msg.Type {
			case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
				m.history.Reset()
				m.historyNavigating = false
			}
		}
	}

	return m, nil, false
}

// updateComponents routes the message to the input component owned by the
// current view, plus the viewport.
func (m *Model) updateComponents(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	switch m.currentView() {
	case viewUpload:
		if !m.loading {
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(msg)
			cmds = append(cmds, cmd)
		}

	case viewConversation:
		session := m.registry.Active()
		if !session.Pending() {
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
			m.adjustTextareaHeight()
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			// Only scroll on key presses while the textarea is idle.
			if session.Pending() {
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				cmds = append(cmds, cmd)
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

func latestAssistantMessage(session *conversation.Session) *conversation.Message {
	messages := session.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == conversation.SenderAssistant && !messages[i].IsError {
			return messages[i]
		}
	}
	return nil
}

// refreshViewport re-renders the active session's log into the viewport.
func (m *Model) refreshViewport() {
	session := m.registry.Active()
	if session == nil {
		return
	}
	m.viewport.SetContent(m.renderMessages(session))
}
