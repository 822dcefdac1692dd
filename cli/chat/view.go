package chat

import (
	"fmt"
	"strings"

	"github.com/malonaz/docchat/internal/conversation"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	switch m.currentView() {
	case viewNoSession:
		b.WriteString(m.renderNoSession())
	case viewUpload:
		b.WriteString(m.renderUpload())
	case viewConversation:
		b.WriteString(m.renderConversation())
	}

	if m.errMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.errMessage)))
	}

	return m.alert.Render(b.String())
}

func (m *Model) renderTitle() string {
	sessions := m.registry.Sessions()
	if len(sessions) == 0 {
		return titleStyle.Width(m.width).Render(" 📄 docchat ")
	}

	active := m.registry.Active()
	tabs := make([]string, 0, len(sessions))
	for _, session := range sessions {
		name := session.DisplayName
		if session == active {
			name = "[" + name + "]"
		}
		tabs = append(tabs, name)
	}

	mode := "💬 direct"
	if active != nil && active.DeepThink() {
		mode = "🧠 deep-think"
	}

	title := fmt.Sprintf(" 📄 docchat │ %s │ %s ", strings.Join(tabs, " "), mode)
	return titleStyle.Width(m.width).Render(title)
}

func (m *Model) renderNoSession() string {
	var b strings.Builder
	if m.loading {
		b.WriteString(fmt.Sprintf("%s Creating session...\n", m.spinner.View()))
	} else {
		b.WriteString(dimTextStyle.Render("No session available."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Press r to retry, Ctrl+C to quit"))
	}
	return b.String()
}

func (m *Model) renderUpload() string {
	session := m.registry.Active()

	var b strings.Builder
	b.WriteString(uploadHeaderStyle.Render(fmt.Sprintf("Upload documents to %s", session.DisplayName)))
	b.WriteString("\n\n")
	if m.loading {
		b.WriteString(fmt.Sprintf("%s Uploading...\n", m.spinner.View()))
		return b.String()
	}
	b.WriteString(inputStyle.Render(m.pathInput.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter to upload │ Ctrl+N new session │ Tab switch session"))
	return b.String()
}

func (m *Model) renderConversation() string {
	session := m.registry.Active()

	var b strings.Builder
	b.WriteString(viewportStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	if session.Pending() {
		b.WriteString(fmt.Sprintf("%s Thinking...\n", m.spinner.View()))
	} else {
		b.WriteString(inputStyle.Render(m.textarea.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Ctrl+J send │ Ctrl+T mode │ Ctrl+N new session │ Tab switch │ Alt+W copy answer"))
	}
	return b.String()
}

// renderMessages renders a session's log for the viewport.
func (m *Model) renderMessages(session *conversation.Session) string {
	var b strings.Builder
	for i, message := range session.Messages() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(message))
	}
	return b.String()
}

func (m *Model) renderMessage(message *conversation.Message) string {
	if message.Sender == conversation.SenderUser {
		return userMessageStyle.Render(message.Text)
	}

	var b strings.Builder
	if label := message.Kind.Label(); label != "" {
		b.WriteString(stageLabelStyle.Render(label))
		b.WriteString("\n")
	}

	// Displayable content is one or more paragraph fragments, never a single
	// unsplit string.
	text := strings.Join(message.Paragraphs(), "\n")
	if message.IsError {
		return b.String() + errorMessageStyle.Render("⚠ "+text)
	}
	return b.String() + assistantMessageStyle.Render(text)
}
