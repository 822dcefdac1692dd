package chat

import "strings"

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	lineCount := strings.Count(m.textarea.Value(), "\n") + 1

	newHeight := lineCount
	if newHeight < minTextareaHeight {
		newHeight = minTextareaHeight
	}
	if newHeight > maxTextareaHeight {
		newHeight = maxTextareaHeight
	}

	if m.textarea.Height() != newHeight {
		m.textarea.SetHeight(newHeight)
		m.recalculateLayout()
	}
}

// recalculateLayout adjusts viewport and input dimensions to the window.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	inputWidth := m.width - inputStyle.GetHorizontalFrameSize()
	m.textarea.SetWidth(inputWidth)
	m.pathInput.Width = inputWidth

	viewportHeight := m.height - headerHeight - footerHeight - m.textarea.Height() - inputBorderHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = viewportHeight
}
