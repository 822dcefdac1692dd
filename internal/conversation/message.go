// Package conversation holds the client-side conversation state: sessions, their
// append-only message logs, and the registry that owns them.
package conversation

import (
	"strings"

	"github.com/google/uuid"
)

// Sender identifies which side of the conversation produced a message.
type Sender string

// Senders.
const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Kind distinguishes the three deep-think stages from a normal reply.
type Kind string

// Kinds.
const (
	KindPlain    Kind = "plain"
	KindInitial  Kind = "initial"
	KindCritique Kind = "critique"
	KindFinal    Kind = "final"
)

// Label returns the display label for a deep-think stage. Plain messages carry
// no label.
func (k Kind) Label() string {
	switch k {
	case KindInitial:
		return "Initial answer"
	case KindCritique:
		return "Analysis and improvement"
	case KindFinal:
		return "Final answer"
	}
	return ""
}

// Message is one turn in a session's log. The log is append-only: messages are
// never edited or removed.
type Message struct {
	ID      string
	Text    string
	Sender  Sender
	Kind    Kind
	IsError bool
}

// Paragraphs splits the message text on newline boundaries for rendering.
// This is a presentation transform: the raw text is stored untouched, and a
// message's displayable content is always one or more fragments.
func (m *Message) Paragraphs() []string {
	return strings.Split(m.Text, "\n")
}

func newMessage(text string, sender Sender, kind Kind) *Message {
	return &Message{
		ID:     uuid.New().String()[:8],
		Text:   text,
		Sender: sender,
		Kind:   kind,
	}
}
