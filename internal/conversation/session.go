package conversation

import (
	"strings"
	"time"

	"github.com/malonaz/docchat/internal/api"
)

// ConnectivityErrorNotice is the fixed message appended to the log when a
// question round-trip fails. The failure is local to the log entry: the
// session stays usable and nothing is retried.
const ConnectivityErrorNotice = "Error connecting to the server."

// Session is one document-bound conversation, identified by a server-issued
// id. It exclusively owns its message log; sessions live in memory for the
// process lifetime and are never persisted.
type Session struct {
	// ID is issued by the server at creation time and never changes.
	ID string
	// DisplayName is the client-side human label.
	DisplayName string
	// CreatedAt is the client-observed creation time.
	CreatedAt time.Time

	documentsReady bool
	deepThink      bool
	pending        bool
	messages       []*Message
}

func newSession(id, displayName string, deepThink bool) *Session {
	return &Session{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
		deepThink:   deepThink,
	}
}

// Messages returns a snapshot of the session's log, in append order.
func (s *Session) Messages() []*Message {
	messages := make([]*Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// DocumentsReady reports whether at least one upload has completed for this
// session. Questions are only accepted once it is true.
func (s *Session) DocumentsReady() bool {
	return s.documentsReady
}

// MarkDocumentsReady records a successful upload. The flag never reverts.
func (s *Session) MarkDocumentsReady() {
	s.documentsReady = true
}

// Pending reports whether a question is in flight for this session.
func (s *Session) Pending() bool {
	return s.pending
}

// DeepThink reports the session's current interaction mode.
func (s *Session) DeepThink() bool {
	return s.deepThink
}

// SetDeepThink stores the interaction mode. It takes effect on the next
// submission, never on an in-flight one.
func (s *Session) SetDeepThink(deepThink bool) {
	s.deepThink = deepThink
}

// BeginQuestion starts a question turn: it appends the user message to the log
// and flips the session to pending, before any network round-trip. It returns
// false without touching the log if the text is blank, a question is already
// in flight, or no documents have been uploaded yet.
func (s *Session) BeginQuestion(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || s.pending || !s.documentsReady {
		return false
	}
	s.messages = append(s.messages, newMessage(text, SenderUser, KindPlain))
	s.pending = true
	return true
}

// ResolveAnswer settles the in-flight question with a server answer, appending
// exactly one assistant message in direct mode and exactly three, in fixed
// stage order, in deep-think mode.
func (s *Session) ResolveAnswer(answer api.Answer) {
	switch answer := answer.(type) {
	case *api.DirectAnswer:
		s.messages = append(s.messages, newMessage(answer.Text, SenderAssistant, KindPlain))
	case *api.DeepThinkAnswer:
		s.messages = append(s.messages,
			newMessage(answer.Initial, SenderAssistant, KindInitial),
			newMessage(answer.Critique, SenderAssistant, KindCritique),
			newMessage(answer.Final, SenderAssistant, KindFinal),
		)
	default:
		s.appendErrorMessage()
	}
	s.pending = false
}

// ResolveFailure settles the in-flight question after a transport or decode
// failure, appending exactly one error message.
func (s *Session) ResolveFailure() {
	s.appendErrorMessage()
	s.pending = false
}

func (s *Session) appendErrorMessage() {
	message := newMessage(ConnectivityErrorNotice, SenderAssistant, KindPlain)
	message.IsError = true
	s.messages = append(s.messages, message)
}
