// Package chat implements the interactive docchat TUI: a session bar, an
// upload form for sessions without documents, and the conversation view.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/configuration"
	"github.com/malonaz/docchat/internal/conversation"
	"github.com/malonaz/docchat/internal/debug"
	"github.com/malonaz/docchat/internal/history"
)

var log = debug.GetLogger()

// view is derived from registry state, never stored.
type view int

const (
	// No session exists: the initial create failed and may be retried.
	viewNoSession view = iota
	// The active session has no ingested documents yet.
	viewUpload
	// The active session is ready for questions.
	viewConversation
)

// Model is the Bubble Tea model for the docchat shell.
type Model struct {
	// Core dependencies
	ctx      context.Context
	config   *configuration.Config
	client   *api.Client
	registry *conversation.Registry

	// UI components
	textarea  textarea.Model
	pathInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool
	// True while a session create or an upload is in flight. Questions have
	// their own per-session pending flag.
	loading bool
	// Top-level error line, latest wins.
	errMessage string

	// Alert notifications.
	alert bubbleup.AlertModel

	// Input history
	history           *history.History
	historyNavigating bool
}

// New creates a new shell model.
func New(
	ctx context.Context,
	config *configuration.Config,
	client *api.Client,
	registry *conversation.Registry,
) *Model {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about your documents... (Ctrl+J to send, Ctrl+T to toggle DeepThink)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(defaultInputWidth)
	ta.SetHeight(minTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	pi := textinput.New()
	pi.Placeholder = "Paths to documents, space separated (.docx .pdf .xlsx)"
	pi.Focus()
	pi.CharLimit = 0
	pi.Width = defaultInputWidth

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	alert := bubbleup.NewAlertModel(25, true, 1)

	return &Model{
		ctx:       ctx,
		config:    config,
		client:    client,
		registry:  registry,
		textarea:  ta,
		pathInput: pi,
		spinner:   sp,
		alert:     *alert,
		history:   history.NewHistory(),
		// Init kicks off the initial session creation.
		loading: true,
	}
}

// Init initializes the model and kicks off the initial session creation.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.createSession(),
	)
}

// currentView derives the view to show from session existence and from the
// active session's documents-ready flag.
func (m *Model) currentView() view {
	session := m.registry.Active()
	if session == nil {
		return viewNoSession
	}
	if !session.DocumentsReady() {
		return viewUpload
	}
	return viewConversation
}
