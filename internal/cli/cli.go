package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	questionColor   = color.New(color.FgWhite)               // White for the user's question
	answerColor     = color.New(color.FgCyan)                // Cyan for assistant answers
	stageLabelColor = color.New(color.FgMagenta, color.Bold) // Bold magenta for deep-think stage labels
	titleColor      = color.New(color.FgMagenta, color.Bold) // Bold magenta for titles
	separatorColor  = color.New(color.FgHiBlack)             // Dark grey for separators
	fileColor       = color.New(color.FgRed)                 // Red for file operations
	successColor    = color.New(color.FgGreen)               // Green for success notices
	errorColor      = color.New(color.FgRed, color.Bold)     // Bold red for errors
	promptColor     = color.New(color.FgHiBlue)              // Bright blue for prompts

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", width-len(title)-len(separator1))
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	titleColor.Println(output)
}

// Question printed to cli.
func Question(text string, args ...any) {
	questionColor.Printf(text, args...)
}

// Answer printed to cli.
func Answer(text string, args ...any) {
	text = strings.ReplaceAll(text, "%", "%%")
	answerColor.Printf(text, args...)
}

// StageLabel printed to cli.
func StageLabel(text string, args ...any) {
	stageLabelColor.Printf(text, args...)
}

// FileInfo printed to cli.
func FileInfo(text string, args ...any) {
	fileColor.Printf(text, args...)
}

// Success printed to cli.
func Success(text string, args ...any) {
	successColor.Printf(text, args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}

// PromptUser for input.
func PromptUser() (string, error) {
	exit := false
	config := &readline.Config{
		Prompt:            promptColor.Sprint("> "),
		InterruptPrompt:   "^C",
		HistoryFile:       "/tmp/docchat.history",
		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			if r == '\x0A' { // Ctrl + J
				exit = true
			}
			return r, true
		},
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	var lines []string
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
		if err == readline.ErrInterrupt || exit {
			break
		}
		rl.SetPrompt("")
	}
	return strings.Join(lines, "\n"), nil
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	survey.AskOne(surveyQuestion, &confirm)
	return confirm
}
