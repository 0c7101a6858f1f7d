package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gapcheck/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a list filter. It starts blurred;
// Focus activates it and Enter or Esc hands control back to the list.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a blurred filter input.
func NewFilterInput(placeholder string, charLimit int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return FilterInput{Model: ti}
}

// Focus activates the input.
func (f *FilterInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur deactivates the input, keeping its value.
func (f *FilterInput) Blur() {
	f.Model.Blur()
}

// Focused reports whether the input receives keys.
func (f FilterInput) Focused() bool {
	return f.Model.Focused()
}

// Update forwards messages to the text input while focused.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.Model.Focused() {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input, or nothing when blurred and empty.
func (f FilterInput) View() string {
	if !f.Model.Focused() && f.Model.Value() == "" {
		return ""
	}
	view := f.Model.View()
	if !f.Model.Focused() {
		view = lipgloss.NewStyle().Foreground(theme.TextDim).Render(view)
	}
	return view
}

// Value returns the filter text, trimmed and lower-cased.
func (f FilterInput) Value() string {
	return strings.ToLower(strings.TrimSpace(f.Model.Value()))
}

// Reset clears the filter text.
func (f *FilterInput) Reset() {
	f.Model.SetValue("")
}
