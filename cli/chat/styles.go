package chat

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	minTextareaHeight = 3
	maxTextareaHeight = 10
	defaultInputWidth = 80

	inputBorderHeight = 2
	headerHeight      = 2
	footerHeight      = 2
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#06B6D4") // Cyan
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	dimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	borderColor    = lipgloss.Color("#4B5563")

	// Title bar
	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textColor).
			Bold(true)

	// Messages
	userMessageStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1).
				MarginLeft(10)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(secondaryColor).
				Padding(0, 1)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(errorColor).
				Padding(0, 1)

	stageLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// Chrome
	viewportStyle = lipgloss.NewStyle()

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			PaddingLeft(1)

	uploadHeaderStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	dimTextStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
